// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/briangreenhill/courtside/cache"
	"github.com/briangreenhill/courtside/internal/config"
	"github.com/briangreenhill/courtside/internal/http/routes"
	"github.com/briangreenhill/courtside/internal/users"
	"github.com/briangreenhill/courtside/nba"
	"github.com/briangreenhill/courtside/supabase"
)

func main() {
	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("load config")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		logger = logger.Level(lvl)
	} else {
		logger.Warn().Str("level", cfg.LogLevel).Msg("unknown LOG_LEVEL, keeping default")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, cfg, logger)
	stop()
	if err != nil {
		logger.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}

// run serves until ctx is cancelled or the listener fails. Everything it
// opens is closed before it returns.
func run(ctx context.Context, cfg *config.Config, logger zerolog.Logger) error {
	upstreamHTTP := &http.Client{Timeout: cfg.UpstreamTimeout}

	// Cache + stats client
	store := cache.NewMemory(cfg.Cache.TTL, cfg.Cache.CleanupInterval)
	stats, err := nba.New(store,
		nba.WithHTTPClient(upstreamHTTP),
		nba.WithBaseURL(cfg.NBA.BaseURL),
		nba.WithAPIKey(cfg.NBA.APIKey),
		nba.WithSeason(cfg.NBA.Season),
		nba.WithTTL(cfg.Cache.TTL),
	)
	if err != nil {
		return fmt.Errorf("nba client: %w", err)
	}

	opts := routes.ServerOptions{Logger: logger, Stats: stats}

	// Supabase auth
	if cfg.HasSupabase() {
		sb, err := supabase.New(cfg.Supabase.URL, cfg.Supabase.ServiceRoleKey, supabase.WithHTTPClient(upstreamHTTP))
		if err != nil {
			return fmt.Errorf("supabase client: %w", err)
		}
		opts.Auth = sb
	} else {
		logger.Warn().Msg("SUPABASE_URL not set, /api/users disabled")
	}

	// DB
	if cfg.HasDatabase() {
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("db pool: %w", err)
		}
		defer pool.Close()
		opts.Profiles = users.NewStore(pool)
	}

	s := routes.New(opts)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           s.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("shutdown")
		}
	}()

	logger.Info().
		Str("port", cfg.Port).
		Int("season", cfg.NBA.Season).
		Dur("cache_ttl", cfg.Cache.TTL).
		Msg("server is running")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen: %w", err)
	}
	return nil
}
