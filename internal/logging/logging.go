// Package logging builds the slog loggers used by the shell.
package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/jmgilman/go/nsfs/internal/config"
)

// New returns a logger writing to w at the level and format named in cfg.
// Unknown levels fall back to warn and unknown formats to text; the config
// schema rejects both before they get here.
func New(cfg config.Log, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case config.FormatJSON:
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// ParseLevel maps a level name to its slog level.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
