package routes

import (
	"errors"
	"net/http"

	appmw "github.com/briangreenhill/courtside/internal/http/middleware"
	"github.com/briangreenhill/courtside/internal/users"
	"github.com/briangreenhill/courtside/supabase"
)

type meResponse struct {
	User    *supabase.User `json:"user"`
	Profile *users.Profile `json:"profile,omitempty"`
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	user, ok := appmw.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, r, http.StatusUnauthorized, errorBody{Error: "Invalid token"})
		return
	}

	resp := meResponse{User: user}
	if s.Profiles != nil {
		profile, err := s.Profiles.GetProfile(r.Context(), user.ID)
		switch {
		case errors.Is(err, users.ErrNotFound):
			// signed up but no profile row yet
		case err != nil:
			writeFailure(w, r, "Failed to load profile", err)
			return
		default:
			resp.Profile = profile
		}
	}
	writeData(w, r, resp)
}
