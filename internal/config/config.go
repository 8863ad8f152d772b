// Package config loads the service configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Stat document and directory backends
const (
	SourceFile     = "file"
	SourceHTTP     = "http"
	SourcePostgres = "postgres"
)

type Config struct {
	// Server
	Port int    `env:"PORT" envDefault:"8080" validate:"min=1,max=65535"`
	Env  string `env:"ENV" envDefault:"development"`

	// CORS
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`

	// Stat documents
	StatsSource  string `env:"STATS_SOURCE" envDefault:"file" validate:"oneof=file http"`
	StatsDir     string `env:"STATS_DIR" envDefault:"./world/stats"`
	StatsBaseURL string `env:"STATS_BASE_URL" validate:"omitempty,url"`

	// Player directory
	DirectorySource string `env:"DIRECTORY_SOURCE" envDefault:"file" validate:"oneof=file http postgres"`
	DirectoryPath   string `env:"DIRECTORY_PATH" envDefault:"./usercache.json"`
	DirectoryURL    string `env:"DIRECTORY_URL" validate:"omitempty,url"`
	PostgresURL     string `env:"POSTGRES_URL"`

	// Optional document cache
	RedisURL string        `env:"REDIS_URL"`
	CacheTTL time.Duration `env:"CACHE_TTL" envDefault:"5m"`

	// Fetching
	FetchWorkers       int           `env:"FETCH_WORKERS" envDefault:"8" validate:"min=1"`
	FetchRatePerSecond float64       `env:"FETCH_RATE_PER_SECOND" envDefault:"0" validate:"min=0"`
	FetchBurst         int           `env:"FETCH_BURST" envDefault:"16" validate:"min=1"`
	FetchTimeout       time.Duration `env:"FETCH_TIMEOUT" envDefault:"10s"`

	LeaderboardSize int `env:"LEADERBOARD_SIZE" envDefault:"10" validate:"min=1,max=100"`
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load loads configuration from environment variables, after reading a
// .env file if one exists. It returns an error if the configuration is
// incomplete for the selected backends.
func Load() (*Config, error) {
	cfg, err := Parse()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse reads the environment like Load but leaves validation to the
// caller, for callers that override fields first.
func Parse() (*Config, error) {
	_ = godotenv.Load() // optional

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

var validate = validator.New()

// Validate checks field ranges and the settings each backend requires.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	var errs []error
	if c.StatsSource == SourceHTTP && c.StatsBaseURL == "" {
		errs = append(errs, missing("STATS_BASE_URL", "STATS_SOURCE=http"))
	}
	switch c.DirectorySource {
	case SourceHTTP:
		if c.DirectoryURL == "" {
			errs = append(errs, missing("DIRECTORY_URL", "DIRECTORY_SOURCE=http"))
		}
	case SourcePostgres:
		if c.PostgresURL == "" {
			errs = append(errs, missing("POSTGRES_URL", "DIRECTORY_SOURCE=postgres"))
		}
	}

	origins := c.AllowedOrigins[:0]
	for _, o := range c.AllowedOrigins {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	c.AllowedOrigins = origins

	return errors.Join(errs...)
}

func missing(key, when string) error {
	return fmt.Errorf("missing required environment variable: %s (required by %s)", key, when)
}
