package contextutil

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type contextKey string

const (
	loggerKey contextKey = "logger"
	runIDKey  contextKey = "run_id"
)

// LoggerFromContext extracts a logger from context if available, otherwise returns the default logger.
// This helper can be used by any package that needs to extract a logger from context.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	if ctxLogger := ctx.Value(loggerKey); ctxLogger != nil {
		if l, ok := ctxLogger.(*slog.Logger); ok {
			return l
		}
	}
	return slog.Default()
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// WithRunID tags ctx with a fresh run ID and attaches a logger that includes it.
func WithRunID(ctx context.Context, base *slog.Logger) context.Context {
	if base == nil {
		base = slog.Default()
	}
	id := uuid.New().String()
	ctx = context.WithValue(ctx, runIDKey, id)
	return WithLogger(ctx, base.With("run_id", id))
}

// RunIDFromContext returns the run ID stored by WithRunID, or "" if none.
func RunIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(runIDKey).(string)
	return id
}
