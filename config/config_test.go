package config

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnv(t *testing.T, kv map[string]string) {
	t.Helper()
	for _, k := range []string{"GO_ENV", "PORT", "LOG_LEVEL", "API_URL", "API_TIMEOUT", "SESSION_SECRET",
		"SESSION_TTL", "CACHE_TTL", "CACHE_STORE", "CACHE_DSN", "CORS_ALLOWED_ORIGINS"} {
		t.Setenv(k, "")
	}
	// production skips the .env lookup in the package directory
	t.Setenv("GO_ENV", "production")
	t.Setenv("SESSION_SECRET", "s3cret")
	for k, v := range kv {
		t.Setenv(k, v)
	}
}

func TestLoad_defaults(t *testing.T) {
	setEnv(t, nil)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "http://localhost:5000/api", cfg.APIURL)
	assert.Equal(t, time.Duration(0), cfg.APITimeout)
	assert.Equal(t, 168*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Equal(t, "bolt", cfg.CacheStore)
	assert.Empty(t, cfg.CORSAllowedOrigins)
}

func TestLoad_overrides(t *testing.T) {
	setEnv(t, map[string]string{
		"PORT":                 "9090",
		"API_URL":              "https://api.example.com/api",
		"API_TIMEOUT":          "15s",
		"SESSION_TTL":          "12h",
		"CACHE_TTL":            "30s",
		"CACHE_STORE":          "SQLite",
		"CACHE_DSN":            "/tmp/cache.sqlite",
		"CORS_ALLOWED_ORIGINS": "http://localhost:3000, https://portal.example.com ,",
	})

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 15*time.Second, cfg.APITimeout)
	assert.Equal(t, 12*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
	assert.Equal(t, "sqlite", cfg.CacheStore)
	assert.Equal(t, "/tmp/cache.sqlite", cfg.CacheDSN)
	assert.Equal(t, []string{"http://localhost:3000", "https://portal.example.com"}, cfg.CORSAllowedOrigins)
}

func TestLoad_errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"bad duration", map[string]string{"CACHE_TTL": "five minutes"}, "invalid CACHE_TTL"},
		{"negative duration", map[string]string{"SESSION_TTL": "-1h"}, "must not be negative"},
		{"unknown store", map[string]string{"CACHE_STORE": "redis"}, `unknown CACHE_STORE "redis"`},
		{"production without secret", map[string]string{"SESSION_SECRET": ""}, "SESSION_SECRET is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnv(t, tt.env)

			_, err := Load()

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&Config{Environment: "production", LogLevel: "warn"}, &buf)

	logger.Info("dropped")
	logger.Warn("kept", "k", "v")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "kept", rec["msg"])
	assert.Equal(t, "v", rec["k"])
}
