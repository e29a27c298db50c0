package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/scanreview-backend/internal/config"
)

// NewLogger builds the process logger on stderr and installs it as the slog
// default. Every record carries the service name and build version.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := newLogger(os.Stderr, cfg)
	slog.SetDefault(logger)
	return logger
}

// newLogger picks a JSON handler for "json" and a text handler with source
// locations for anything else.
func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	text := !strings.EqualFold(cfg.Format, "json")
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: text,
	}

	var h slog.Handler = slog.NewJSONHandler(w, opts)
	if text {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h).With(
		slog.String("service", serviceName),
		slog.String("version", Version),
	)
}

func parseLevel(s string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
