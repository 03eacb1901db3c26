package logger

import (
	"log/slog"
	"os"
	"strings"
)

// Config holds the settings needed to initialize the logging system.
// It is deliberately small so packages can depend on the logger without
// pulling in the full application configuration.
type Config struct {
	// Level is one of "debug", "info", "warn", "error" (case-insensitive).
	Level string
}

// Setup initializes and configures the application's logging system based on
// the provided configuration. It creates a structured JSON logger with the
// appropriate log level and sets it as the default logger for the application.
//
// Returns the configured logger. An unrecognized level falls back to info
// with a warning rather than failing startup.
func Setup(cfg Config) *slog.Logger {
	// Parse the log level from configuration (case-insensitive)
	var level slog.Level
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info", "":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo

		// Use a temporary text logger to surface the misconfiguration;
		// the JSON logger is not set up yet.
		tmpLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		tmpLogger.Warn("invalid log level configured, using default level",
			"configured_level", cfg.Level,
			"default_level", "info")
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewJSONHandler(os.Stdout, opts)
	logger := slog.New(handler)

	// Set this logger as the default for the application.
	// This allows using the slog package functions directly
	// (slog.Info, slog.Error, etc.).
	slog.SetDefault(logger)

	return logger
}
