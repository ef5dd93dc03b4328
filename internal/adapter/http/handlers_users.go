package adapthttp

import (
	"errors"
	"net/http"

	"exercisetracker/internal/app"
)

// userResponse is the directory projection: exactly username and id.
type userResponse struct {
	Username string `json:"username"`
	ID       string `json:"id"`
}

func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	body, err := parseBody(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	user, err := s.users.Create(r.Context(), body["username"])
	if errors.Is(err, app.ErrUsernameRequired) {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err != nil {
		writeServerError(w)
		return
	}

	writeJSON(w, http.StatusOK, userResponse{Username: user.Username, ID: user.ID})
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.users.List(r.Context())
	if err != nil {
		writeServerError(w)
		return
	}

	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, userResponse{Username: u.Username, ID: u.ID})
	}
	writeJSON(w, http.StatusOK, out)
}
