package helpers

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the error body for all failed API requests.
// The detail string is what clients and the frontend display.
// swagger:model ErrorResponse
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// MessageResponse is the success body for signup and unregister.
// swagger:model MessageResponse
type MessageResponse struct {
	Message string `json:"message"`
}

// WriteJSON sets Content-Type to application/json, writes statusCode, and
// encodes v as the response body.
func WriteJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteMessage writes a 200 response with a {"message": ...} body.
func WriteMessage(w http.ResponseWriter, message string) {
	WriteJSON(w, http.StatusOK, MessageResponse{Message: message})
}

// WriteError writes an error response with a {"detail": ...} body.
func WriteError(w http.ResponseWriter, statusCode int, detail string) {
	WriteJSON(w, statusCode, ErrorResponse{Detail: detail})
}
