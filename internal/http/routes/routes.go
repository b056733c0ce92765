package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	appmw "github.com/briangreenhill/courtside/internal/http/middleware"
	"github.com/briangreenhill/courtside/internal/users"
	"github.com/briangreenhill/courtside/nba"
)

// StatsService is the read-through stats client the handlers call.
type StatsService interface {
	SearchPlayers(ctx context.Context, query string) ([]nba.Player, error)
	GetPlayerStats(ctx context.Context, playerID string) (*nba.PlayerStats, error)
	GetGames(ctx context.Context, date string) ([]nba.Game, error)
}

// ProfileStore looks up app profiles for signed-in users.
type ProfileStore interface {
	GetProfile(ctx context.Context, id uuid.UUID) (*users.Profile, error)
}

type Server struct {
	Router   *chi.Mux
	Stats    StatsService
	Auth     appmw.TokenVerifier // nil disables /api/users
	Profiles ProfileStore        // optional
}

type ServerOptions struct {
	Logger   zerolog.Logger
	Stats    StatsService
	Auth     appmw.TokenVerifier
	Profiles ProfileStore
}

func New(opts ServerOptions) *Server {
	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(hlog.NewHandler(opts.Logger))
	r.Use(hlog.RequestIDHandler("req_id", "X-Request-Id"))
	r.Use(hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Info().
			Str("method", r.Method).
			Stringer("url", r.URL).
			Int("status", status).
			Int("size", size).
			Dur("duration", duration).
			Msg("request")
	}))
	r.Use(chimw.Recoverer)

	s := &Server{Router: r, Stats: opts.Stats, Auth: opts.Auth, Profiles: opts.Profiles}

	r.Get("/health", s.handleHealth)

	r.Route("/api/players", func(pr chi.Router) {
		pr.Get("/search", s.handleSearchPlayers)
		pr.Get("/{playerID}", s.handlePlayerStats)
	})
	r.Get("/api/games", s.handleGames)

	if s.Auth != nil {
		r.Group(func(ar chi.Router) {
			ar.Use(appmw.RequireAuth(s.Auth))
			ar.Get("/api/users/me", s.handleMe)
		})
	}

	return s
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "healthy"})
}
