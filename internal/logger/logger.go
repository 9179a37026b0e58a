package logger

import (
	"log/slog"
	"os"
	"strings"
)

// New creates a preconfigured slog.Logger. The minimum level comes from the
// LOG_LEVEL environment variable and defaults to info.
func New() *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: levelFromEnv()})
	return slog.New(handler)
}

func levelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
