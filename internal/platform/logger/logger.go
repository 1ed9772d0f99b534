package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/phrazzld/puzzles/internal/config"
)

// ParseLevel converts a configured level name to a slog.Level
// (case-insensitive). The second result is false for unknown names, in which
// case the level is info.
func ParseLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// New creates a JSON logger writing to out at the given level.
func New(out io.Writer, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: level,
	}
	return slog.New(slog.NewJSONHandler(out, opts))
}

// Setup initializes and configures the application's logging system based on
// the provided configuration. It creates a structured JSON logger on stderr
// with the configured level and sets it as the default logger.
//
// Stdout is left to the puzzle answers.
func Setup(cfg config.LogConfig) (*slog.Logger, error) {
	level, ok := ParseLevel(cfg.Level)

	logger := New(os.Stderr, level)
	if !ok {
		logger.Warn("invalid log level configured, using default level",
			"configured_level", cfg.Level,
			"default_level", "info")
	}

	// Set this logger as the default for the application
	// This allows using the slog package functions directly (slog.Info, slog.Error, etc.)
	slog.SetDefault(logger)

	return logger, nil
}
