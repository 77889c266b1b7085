// Package logger provides the structured log sink used by the dispatcher.
//
// It wraps log/slog with context extractors (attributes pulled from the
// context on every call, such as the dispatch run id) and optional Sentry
// fan-out.
//
//	log := logger.New(logger.RunIDExtractor)
//	ctx := logger.WithRunID(context.Background(), "6f1c...")
//	log.InfoContext(ctx, "email sent", slog.String("name", "Tosh"))
//	// {"level":"INFO","msg":"email sent","name":"Tosh","run_id":"6f1c..."}
//
// NewWithSentry additionally ships warnings and errors to Sentry when
// SENTRY_DSN is set and falls back to stdout only when it is not. Call Flush
// before the process exits so queued events are delivered.
//
// NewNope returns a logger that discards everything; it is the dispatcher's
// default sink.
package logger
