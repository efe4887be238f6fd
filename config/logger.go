package config

import (
	"io"
	"log/slog"
	"strings"
)

// NewLogger returns a slog.Logger for cfg writing to w.
// Production uses a JSON handler; otherwise a text handler.
// LogLevel may be debug, info, warn or error (default info).
func NewLogger(cfg *Config, w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.IsProduction() {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
