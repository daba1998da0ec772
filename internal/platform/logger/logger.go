package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/phrazzld/user-api/internal/config"
)

// Setup initializes the application's logging system from the server
// configuration. It creates a structured JSON logger writing to stdout, sets
// it as the default logger and returns it.
func Setup(cfg config.ServerConfig) (*slog.Logger, error) {
	logger := New(os.Stdout, cfg.LogLevel)
	slog.SetDefault(logger)
	return logger, nil
}

// New creates a JSON logger writing to out at the given level.
// An unrecognised level falls back to info, and the fallback is logged.
func New(out io.Writer, level string) *slog.Logger {
	parsed, ok := ParseLevel(level)

	handler := slog.NewJSONHandler(out, &slog.HandlerOptions{Level: parsed})
	logger := slog.New(handler)

	if !ok {
		logger.Warn("invalid log level configured, using default level",
			"configured_level", level,
			"default_level", "info")
	}
	return logger
}

// ParseLevel converts a case-insensitive level name into a slog.Level.
// It reports false, along with slog.LevelInfo, for unknown names.
func ParseLevel(level string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(level)) {
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
