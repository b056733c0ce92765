package routes

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

func (s *Server) handleSearchPlayers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if strings.TrimSpace(query) == "" {
		writeValidation(w, r, &ValidationError{
			Field:   "query",
			Summary: "Search query is required",
			Message: "Please provide a search query",
		})
		return
	}

	players, err := s.Stats.SearchPlayers(r.Context(), query)
	if err != nil {
		writeFailure(w, r, "Failed to search players", err)
		return
	}
	writeList(w, r, players)
}

func (s *Server) handlePlayerStats(w http.ResponseWriter, r *http.Request) {
	playerID := chi.URLParam(r, "playerID")

	stats, err := s.Stats.GetPlayerStats(r.Context(), playerID)
	if err != nil {
		writeFailure(w, r, "Failed to fetch player stats", err)
		return
	}
	writeData(w, r, stats)
}
