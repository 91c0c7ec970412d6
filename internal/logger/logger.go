package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

type ctxKey string

const runIDKey ctxKey = ContextKeyRunID

// InitLogger installs the default logger writing to stderr.
// Stdout is left for simulation output.
func InitLogger(config Config) {
	InitLoggerWithWriter(config, os.Stderr)
}

// InitLoggerWithWriter installs the default logger writing to w
func InitLoggerWithWriter(config Config, w io.Writer) {
	opts := &slog.HandlerOptions{
		Level:     config.LogLevel(),
		AddSource: config.AddSource,
	}

	var handler slog.Handler
	if config.IsJSON() {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	handler = handler.WithAttrs(config.BaseAttributes())
	slog.SetDefault(slog.New(handler))
}

// GenerateRunID creates a new UUID identifying one simulation run.
func GenerateRunID() string {
	return uuid.NewString()
}

// WithRunID returns a new context containing the run ID.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runIDKey, runID)
}

// GetRunID returns the run ID stored in ctx, or "" when absent.
func GetRunID(ctx context.Context) string {
	if id, ok := ctx.Value(runIDKey).(string); ok {
		return id
	}
	return ""
}

// FromContext returns a logger that includes the run_id attribute when present.
func FromContext(ctx context.Context) *slog.Logger {
	if id := GetRunID(ctx); id != "" {
		return slog.Default().With(AttrKeyRunID, id)
	}
	return slog.Default()
}
