package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"mergingtonactivities/internal/delivery/http/helpers"
	"mergingtonactivities/internal/domain"
)

// Error details on the wire. Clients match on these strings, so they are
// part of the API surface.
const (
	detailActivityNotFound = "Activity not found"
	detailAlreadySignedUp  = "Student is already signed up"
	detailNotSignedUp      = "Student is not signed up for this activity"
	detailActivityFull     = "Activity is full"
	detailEmailRequired    = "email is required"
)

type ActivityController struct {
	Logger  *slog.Logger
	Service domain.RosterService
}

func NewActivityController(logger *slog.Logger, svc domain.RosterService) *ActivityController {
	return &ActivityController{
		Logger:  logger,
		Service: svc,
	}
}

// ListActivities godoc
// @Summary List all activities
// @Description Returns every activity keyed by name, with description, schedule, max_participants, and the current participant list in signup order.
// @Tags activities
// @Produce json
// @Success 200 {object} map[string]domain.Activity
// @Router /activities [get]
func (c *ActivityController) ListActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := c.Service.ListActivities(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, activities)
}

// Signup godoc
// @Summary Sign a student up for an activity
// @Description Appends the student's email to the activity's roster. Duplicate signups are rejected.
// @Tags activities
// @Produce json
// @Param activityName path string true "Activity name"
// @Param email query string true "Student email"
// @Success 200 {object} helpers.MessageResponse
// @Failure 400 {object} helpers.ErrorResponse "Already signed up, activity full, or email missing"
// @Failure 404 {object} helpers.ErrorResponse "Activity not found"
// @Router /activities/{activityName}/signup [post]
func (c *ActivityController) Signup(w http.ResponseWriter, r *http.Request) {
	activityName := r.PathValue("activityName")
	email := strings.TrimSpace(r.URL.Query().Get("email"))
	if email == "" {
		helpers.WriteError(w, http.StatusBadRequest, detailEmailRequired)
		return
	}

	message, err := c.Service.Signup(r.Context(), activityName, email)
	if err != nil {
		c.writeRosterError(w, r, err)
		return
	}
	helpers.WriteMessage(w, message)
}

// Unregister godoc
// @Summary Unregister a student from an activity
// @Description Removes the student's email from the activity's roster.
// @Tags activities
// @Produce json
// @Param activityName path string true "Activity name"
// @Param email query string true "Student email"
// @Success 200 {object} helpers.MessageResponse
// @Failure 400 {object} helpers.ErrorResponse "Not signed up or email missing"
// @Failure 404 {object} helpers.ErrorResponse "Activity not found"
// @Router /activities/{activityName}/unregister [delete]
func (c *ActivityController) Unregister(w http.ResponseWriter, r *http.Request) {
	activityName := r.PathValue("activityName")
	email := strings.TrimSpace(r.URL.Query().Get("email"))
	if email == "" {
		helpers.WriteError(w, http.StatusBadRequest, detailEmailRequired)
		return
	}

	message, err := c.Service.Unregister(r.Context(), activityName, email)
	if err != nil {
		c.writeRosterError(w, r, err)
		return
	}
	helpers.WriteMessage(w, message)
}

// writeRosterError maps domain errors to status codes and detail strings.
// Anything unrecognized is a 500 and gets logged.
func (c *ActivityController) writeRosterError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrActivityNotFound):
		helpers.WriteError(w, http.StatusNotFound, detailActivityNotFound)
	case errors.Is(err, domain.ErrAlreadySignedUp):
		helpers.WriteError(w, http.StatusBadRequest, detailAlreadySignedUp)
	case errors.Is(err, domain.ErrNotSignedUp):
		helpers.WriteError(w, http.StatusBadRequest, detailNotSignedUp)
	case errors.Is(err, domain.ErrActivityFull):
		helpers.WriteError(w, http.StatusBadRequest, detailActivityFull)
	default:
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "Internal server error")
	}
}
