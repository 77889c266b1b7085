package logger

import (
	"context"
	"log/slog"
)

type runIDKey struct{}

// WithRunID returns a copy of ctx carrying the dispatch run id.
func WithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, runIDKey{}, id)
}

// RunIDFromContext returns the run id stored by WithRunID.
func RunIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(runIDKey{}).(string)
	return id, ok && id != ""
}

// RunIDExtractor adds a run_id attribute to every record logged with a run context.
func RunIDExtractor(ctx context.Context) (slog.Attr, bool) {
	if id, ok := RunIDFromContext(ctx); ok {
		return slog.String("run_id", id), true
	}
	return slog.Attr{}, false
}
