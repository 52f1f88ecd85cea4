// Package logger builds the *slog.Logger every demo uses.
//
// Logs always go to the writer passed in (stderr in the commands), never
// to stdout: stdout carries the demo's own output and must stay exactly
// as the record types print it.
package logger

import (
	"io"
	"log/slog"
	"strings"

	"github.com/aanand-mishra/constructor-demos/internal/config"
)

// New returns a logger configured for cfg.Env.
//
// Development (dev): human-readable text output at DEBUG level.
// Staging (staging): JSON output at DEBUG level.
// Production (prod): JSON output at INFO level.
//
// A non-empty cfg.LogLevel replaces the per-environment level.
func New(cfg *config.Config, w io.Writer) *slog.Logger {
	var (
		level slog.Level
		json  bool
	)

	switch cfg.Env {
	case "prod":
		level, json = slog.LevelInfo, true
	case "staging":
		level, json = slog.LevelDebug, true
	default: // "dev" and anything unrecognised
		level, json = slog.LevelDebug, false
	}

	if cfg.LogLevel != "" {
		level = parseLevel(cfg.LogLevel, level)
	}

	opts := &slog.HandlerOptions{Level: level}
	if json {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string, fallback slog.Level) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return fallback
	}
	return l
}
