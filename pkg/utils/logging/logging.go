// Package logging carries a *slog.Logger in a context.Context.
package logging

import (
	"context"
	"log/slog"

	"github.com/go-logr/logr"
)

// With returns a copy of ctx carrying logger
func With(ctx context.Context, logger *slog.Logger) context.Context {
	return logr.NewContextWithSlogLogger(ctx, logger)
}

// From returns the logger carried by ctx, or slog.Default() if there is none
func From(ctx context.Context) *slog.Logger {
	if logger := logr.FromContextAsSlogLogger(ctx); logger != nil {
		return logger
	}
	return slog.Default()
}
