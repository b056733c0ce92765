// Package config handles application configuration from environment variables
package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all application configuration
type Config struct {
	Port        string `env:"PORT" envDefault:"3001"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	DatabaseURL string `env:"DATABASE_URL"`

	NBA      NBAConfig      `envPrefix:"NBA_"`
	Cache    CacheConfig    `envPrefix:"CACHE_"`
	Supabase SupabaseConfig `envPrefix:"SUPABASE_"`

	// UpstreamTimeout bounds outbound calls; zero leaves the transport default
	UpstreamTimeout time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"0s"`
}

// NBAConfig holds stats service settings
type NBAConfig struct {
	BaseURL string `env:"API_BASE_URL" envDefault:"https://api.balldontlie.io"`
	APIKey  string `env:"API_KEY"`
	Season  int    `env:"SEASON" envDefault:"2023"`
}

// CacheConfig holds in-memory cache settings
type CacheConfig struct {
	TTL             time.Duration `env:"TTL" envDefault:"1h"`
	CleanupInterval time.Duration `env:"CLEANUP_INTERVAL" envDefault:"2m"`
}

// SupabaseConfig holds Supabase project credentials
type SupabaseConfig struct {
	URL            string `env:"URL"`
	ServiceRoleKey string `env:"SERVICE_ROLE_KEY"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	return load(env.Options{})
}

// LoadFrom reads configuration from environ instead of the process environment
func LoadFrom(environ map[string]string) (*Config, error) {
	return load(env.Options{Environment: environ})
}

func load(opts env.Options) (*Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](opts)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// HasSupabase returns true if Supabase auth can be used
func (c *Config) HasSupabase() bool {
	return c.Supabase.URL != "" && c.Supabase.ServiceRoleKey != ""
}

// HasDatabase returns true if a Postgres connection string is set
func (c *Config) HasDatabase() bool {
	return c.DatabaseURL != ""
}

// Validate checks values env parsing can't
func (c *Config) Validate() error {
	u, err := url.Parse(c.NBA.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("NBA_API_BASE_URL must be an absolute URL, got %q", c.NBA.BaseURL)
	}
	if c.NBA.Season < 1946 || c.NBA.Season > 2100 {
		return fmt.Errorf("NBA_SEASON must be a season start year, got %d", c.NBA.Season)
	}
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive, got %s", c.Cache.TTL)
	}
	if c.Cache.CleanupInterval <= 0 {
		return fmt.Errorf("CACHE_CLEANUP_INTERVAL must be positive, got %s", c.Cache.CleanupInterval)
	}
	if (c.Supabase.URL == "") != (c.Supabase.ServiceRoleKey == "") {
		return fmt.Errorf("SUPABASE_URL and SUPABASE_SERVICE_ROLE_KEY must be set together")
	}
	return nil
}
