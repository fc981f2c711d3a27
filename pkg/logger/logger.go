package logger

import (
	"log/slog"
	"os"
)

var Log *slog.Logger

// Init installs the process-wide JSON logger. LOG_LEVEL
// (debug|info|warn|error) controls verbosity, defaulting to info.
func Init() {
	level := slog.LevelInfo
	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		if err := level.UnmarshalText([]byte(raw)); err != nil {
			level = slog.LevelInfo
		}
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})
	Log = slog.New(handler).With("service", "contentgen-api")
}
