package http

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"mergingtonactivities/internal/delivery/http/controllers"
	"mergingtonactivities/internal/delivery/http/helpers"
)

// NewRouter initializes the HTTP router with all application routes.
// staticDir is served under /static/; the root path issues a 307 to the
// frontend entry point.
func NewRouter(activityController *controllers.ActivityController, staticDir string) *http.ServeMux {
	mux := http.NewServeMux()

	// Frontend
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
	})
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))

	// API Routes
	mux.HandleFunc("GET /activities", activityController.ListActivities)
	mux.HandleFunc("POST /activities/{activityName}/signup", activityController.Signup)
	mux.HandleFunc("DELETE /activities/{activityName}/unregister", activityController.Unregister)

	// Operational endpoints
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		helpers.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.Handle("GET /metrics", promhttp.Handler())

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
