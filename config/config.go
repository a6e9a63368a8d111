package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// SecretKey signs and encrypts the session cookie that carries the
	// anti-forgery token. Required.
	SecretKey string `env:"SECRET_KEY,required,notEmpty"`
	// APIToken is the TMDB read access token sent as a bearer credential on
	// every search request. Required.
	APIToken string `env:"API_TOKEN,required,notEmpty"`
	// DatabaseDialect selects the ent dialect: "sqlite3" or "postgres".
	DatabaseDialect string `env:"DATABASE_DIALECT" envDefault:"sqlite3"`
	// DatabaseURL is the DSN handed to the selected driver.
	DatabaseURL string `env:"DATABASE_URL" envDefault:"file:movielist.db?_pragma=foreign_keys(1)"`
	// ListenAddr is the address the HTTP server binds to.
	ListenAddr string `env:"LISTEN_ADDR" envDefault:":5000"`
	// TMDBBaseURL is the root of the TMDB v3 API.
	TMDBBaseURL string `env:"TMDB_BASE_URL" envDefault:"https://api.themoviedb.org/3"`
	// TMDBImageBaseURL is the CDN prefix poster paths are appended to.
	TMDBImageBaseURL string `env:"TMDB_IMAGE_BASE_URL" envDefault:"https://media.themoviedb.org/t/p/w600_and_h900_face"`
	// SearchTimeout bounds a single outbound search request.
	SearchTimeout time.Duration `env:"SEARCH_TIMEOUT" envDefault:"10s"`
	// SecureCookies marks the session cookie Secure. Enable behind HTTPS.
	SecureCookies bool `env:"SECURE_COOKIES" envDefault:"false"`
	// Debug enables debug-level logs and gin's debug mode.
	Debug bool `env:"DEBUG" envDefault:"false"`
	// ShutdownTimeout is the maximum duration to wait for in-flight requests
	// to complete during graceful shutdown.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`
}

// Load parses configuration from environment variables.
// Returns an error if a required value is missing or a value cannot be parsed
// into the expected type.
func Load() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	switch cfg.DatabaseDialect {
	case "sqlite3", "postgres":
	default:
		return Config{}, fmt.Errorf("config: unsupported DATABASE_DIALECT %q", cfg.DatabaseDialect)
	}
	return cfg, nil
}
