package adapthttp

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"exercisetracker/internal/app"
	"exercisetracker/internal/domain"
)

// exerciseResponse echoes the new entry's fields alongside the owning
// user's identity; the id is the user's, not the entry's.
type exerciseResponse struct {
	Username    string `json:"username"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
	ID          string `json:"id"`
}

type logEntry struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

type logResponse struct {
	Username string     `json:"username"`
	ID       string     `json:"id"`
	Count    int        `json:"count"`
	Log      []logEntry `json:"log"`
}

func (s *Server) handleAddExercise(w http.ResponseWriter, r *http.Request) {
	body, err := parseBody(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	user, entry, err := s.exercises.Add(r.Context(),
		chi.URLParam(r, "id"), body["description"], body["duration"], body["date"])
	switch {
	case errors.Is(err, app.ErrUserNotFound):
		writeError(w, http.StatusNotFound, err)
		return
	case errors.Is(err, app.ErrInvalidDate),
		errors.Is(err, app.ErrInvalidDuration),
		errors.Is(err, app.ErrDescriptionRequired):
		writeError(w, http.StatusBadRequest, err)
		return
	case err != nil:
		writeServerError(w)
		return
	}

	writeJSON(w, http.StatusOK, exerciseResponse{
		Username:    user.Username,
		Description: entry.Description,
		Duration:    entry.Duration,
		Date:        domain.FormatDay(entry.Date),
		ID:          user.ID,
	})
}

func (s *Server) handleLogs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit := intQuery(r, "limit", 0)

	user, entries, err := s.exercises.Log(r.Context(),
		chi.URLParam(r, "id"), q.Get("from"), q.Get("to"), limit)
	if errors.Is(err, app.ErrUserNotFound) {
		writeError(w, http.StatusNotFound, err)
		return
	}
	if err != nil {
		writeServerError(w)
		return
	}

	log := make([]logEntry, 0, len(entries))
	for _, e := range entries {
		log = append(log, logEntry{
			Description: e.Description,
			Duration:    e.Duration,
			Date:        domain.FormatDay(e.Date),
		})
	}

	writeJSON(w, http.StatusOK, logResponse{
		Username: user.Username,
		ID:       user.ID,
		Count:    len(log),
		Log:      log,
	})
}
