package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"stringlang/internal/handler/http/requestid"
)

// ParseLevel maps a LOG_LEVEL value to a slog level.
//
// Accepted values (case-insensitive): "debug", "info", "warn", "warning",
// "error". Anything else, including an empty string, is info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger returns the process logger, writing to stdout.
//
// Environment variables:
//   - LOG_LEVEL: debug, info, warn or error (default: info)
//   - LOG_FORMAT: "text" for human-readable output; anything else is JSON
//
// Example:
//
//	logger := logging.NewLogger()
//	slog.SetDefault(logger)
//	logger.Info("starting", slog.String("version", version))
func NewLogger() *slog.Logger {
	if strings.EqualFold(os.Getenv("LOG_FORMAT"), "text") {
		return NewTextLogger()
	}
	return New(os.Stdout, "json", ParseLevel(os.Getenv("LOG_LEVEL")))
}

// NewTextLogger returns a human-readable logger for local runs.
func NewTextLogger() *slog.Logger {
	return New(os.Stdout, "text", ParseLevel(os.Getenv("LOG_LEVEL")))
}

// New builds a logger for w.
//
// Parameters:
//   - w: Destination, such as os.Stdout or a bytes.Buffer in tests
//   - format: "text" or "json"
//   - level: Minimum level; at debug, source locations are attached
//
// Returns:
//   - *slog.Logger: The configured logger
func New(w io.Writer, format string, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level <= slog.LevelDebug,
	}
	if format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// WithRequestID adds the request ID stored in ctx, if any.
//
// Example:
//
//	logger := logging.WithRequestID(r.Context(), slog.Default())
//	logger.Info("analysis stored", slog.String("id", id.String()))
//	// {"level":"INFO","msg":"analysis stored","request_id":"9f1c...","id":"..."}
func WithRequestID(ctx context.Context, logger *slog.Logger) *slog.Logger {
	reqID := requestid.FromContext(ctx)
	if reqID == "" {
		return logger
	}
	return logger.With("request_id", reqID)
}

// WithFields adds each key/value pair of fields to the logger.
func WithFields(logger *slog.Logger, fields map[string]any) *slog.Logger {
	args := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}
	return logger.With(args...)
}

// FromContext returns the logger stored by WithLogger, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerContextKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey, logger)
}

type contextKey string

const loggerContextKey contextKey = "logger"
