package logging

import (
	"context"

	"github.com/charmbracelet/log"
)

type ctxKey int

// loggerKey carries the run's logger through cobra's command context.
const loggerKey ctxKey = 0

// WithLogger attaches a logger to ctx. The CLI entry point does this
// once so every command sees the same logger.
func WithLogger(ctx context.Context, logger *log.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext returns the logger attached to ctx, falling back to the
// process-wide default.
func FromContext(ctx context.Context) *log.Logger {
	if ctx == nil {
		return Default()
	}
	if logger, ok := ctx.Value(loggerKey).(*log.Logger); ok && logger != nil {
		return logger
	}
	return Default()
}
