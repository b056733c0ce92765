package routes

import (
	"net/http"
	"time"
)

func (s *Server) handleGames(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if _, err := time.Parse(time.DateOnly, date); err != nil {
		writeValidation(w, r, &ValidationError{
			Field:   "date",
			Summary: "Game date is required",
			Message: "Please provide a date as YYYY-MM-DD",
		})
		return
	}

	games, err := s.Stats.GetGames(r.Context(), date)
	if err != nil {
		writeFailure(w, r, "Failed to fetch games", err)
		return
	}
	writeList(w, r, games)
}
