package logging

import (
	"context"
	"log/slog"
)

// ctxKey is the private type used for the logger context key.
type ctxKey struct{}

// NewContext returns a copy of ctx carrying the given logger.
func NewContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// FromContext returns the logger stored in ctx, or slog.Default()
// when none was stored.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
