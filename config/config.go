package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const devSessionSecret = "rsvpportal-dev-secret-change-me"

// Config holds all configuration for the portal.
type Config struct {
	Environment string
	Port        string
	LogLevel    string

	// APIURL is the base URL of the remote RSVP API.
	APIURL     string
	APITimeout time.Duration

	SessionSecret string
	SessionTTL    time.Duration

	CacheTTL   time.Duration
	CacheStore string
	CacheDSN   string

	CORSAllowedOrigins []string
}

// IsProduction reports whether GO_ENV is production.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Load loads configuration from environment variables.
// Outside production it first loads a .env file if one exists.
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// In production the environment is provided by the platform.
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:   env,
		Port:          getenv("PORT", "8080"),
		LogLevel:      getenv("LOG_LEVEL", "info"),
		APIURL:        getenv("API_URL", "http://localhost:5000/api"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		CacheStore:    strings.ToLower(getenv("CACHE_STORE", "bolt")),
		CacheDSN:      os.Getenv("CACHE_DSN"),
	}

	var errs []error
	var err error
	if cfg.APITimeout, err = duration("API_TIMEOUT", 0); err != nil {
		errs = append(errs, err)
	}
	if cfg.SessionTTL, err = duration("SESSION_TTL", 7*24*time.Hour); err != nil {
		errs = append(errs, err)
	}
	if cfg.CacheTTL, err = duration("CACHE_TTL", 5*time.Minute); err != nil {
		errs = append(errs, err)
	}

	if cfg.SessionSecret == "" {
		if cfg.IsProduction() {
			errs = append(errs, errors.New("SESSION_SECRET is required in production"))
		}
		cfg.SessionSecret = devSessionSecret
	}

	switch cfg.CacheStore {
	case "bolt", "postgres", "sqlite", "memory":
	default:
		errs = append(errs, fmt.Errorf("unknown CACHE_STORE %q", cfg.CacheStore))
	}

	for _, o := range strings.Split(os.Getenv("CORS_ALLOWED_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
		}
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func duration(key string, fallback time.Duration) (time.Duration, error) {
	s := strings.TrimSpace(os.Getenv(key))
	if s == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, s, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid %s %q: must not be negative", key, s)
	}
	return d, nil
}
