package logger

import (
	"io"
	"log/slog"
)

// Setup configures the global slog logger based on environment.
// The server logs to stdout; boardctl passes stderr so command output stays clean.
func Setup(env string, w io.Writer) *slog.Logger {
	var handler slog.Handler
	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}

	switch env {
	case "production", "prod":
		// Production: JSON format, info level
		handler = slog.NewJSONHandler(w, opts)
	case "local", "dev", "development":
		// Development: Text format, debug level
		opts.Level = slog.LevelDebug
		handler = slog.NewTextHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	logger.Debug("Logger 초기화", "env", env, "level", opts.Level.Level().String())
	return logger
}
