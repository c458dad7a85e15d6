package logging

import (
	"log/slog"
	"os"
	"strings"
)

// NewLogger creates the process logger. Level comes from GAVEL_LOG_LEVEL;
// the handler writes to stderr so command output stays clean on stdout.
func NewLogger() *slog.Logger {
	level := slog.LevelWarn

	switch strings.ToLower(os.Getenv("GAVEL_LOG_LEVEL")) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		// unknown or unset value, keep default
	}

	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Drop the timestamp for cleaner interactive output.
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}

	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
