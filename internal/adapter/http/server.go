// Package adapthttp implements the HTTP adapter for the application.
package adapthttp

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"exercisetracker/internal/app"
)

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	users     *app.UserService
	exercises *app.ExerciseService
	webDir    string
}

// New creates a Server wired to the given application services.
func New(us *app.UserService, es *app.ExerciseService, webDir string) *Server {
	return &Server{users: us, exercises: es, webDir: webDir}
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(loggingMiddleware)
	r.Use(recoverMiddleware)
	r.Use(corsMiddleware)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, map[string]any{"ok": true})
		})

		r.Post("/users", s.handleCreateUser)
		r.Get("/users", s.handleListUsers)
		r.Post("/users/{id}/exercises", s.handleAddExercise)
		r.Get("/users/{id}/logs", s.handleLogs)
	})

	r.Handle("/*", staticFromDisk(s.webDir))

	return r
}
