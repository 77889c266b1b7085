package logger

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

const sentryFlushTimeout = 2 * time.Second

// SentryConfig holds Sentry integration configuration.
type SentryConfig struct {
	DSN         string `env:"SENTRY_DSN"`
	Environment string `env:"SENTRY_ENVIRONMENT" envDefault:"production"`
	Release     string `env:"SENTRY_RELEASE"`
	// MinLevel determines which log levels reach Sentry (slog.LevelWarn for warnings+errors).
	MinLevel slog.Level
	// Level is the stdout level.
	Level slog.Level
}

// levels returns the slog levels that become Sentry issues and Sentry log entries.
// Failed sends are logged at Error, so each one becomes an issue.
func (c SentryConfig) levels() (events, logs []slog.Level) {
	events = []slog.Level{slog.LevelError}
	if c.MinLevel >= slog.LevelError {
		return events, []slog.Level{slog.LevelError}
	}
	return events, []slog.Level{slog.LevelWarn, slog.LevelError}
}

// NewWithSentry creates a logger that sends logs to both stdout and Sentry.
// If DSN is empty or the SDK fails to start, only stdout logging is enabled.
// Context extractors are applied to logs sent to both destinations.
func NewWithSentry(cfg SentryConfig, extractors ...ContextExtractor) *slog.Logger {
	handler := jsonHandler(os.Stdout, cfg.Level)

	if cfg.DSN != "" {
		sh, err := newSentryHandler(cfg)
		if err != nil {
			slog.New(handler).Error("failed to initialize Sentry", slog.String("error", err.Error()))
		} else {
			handler = newMultiHandler(handler, sh)
		}
	}

	return slog.New(NewLogHandlerDecorator(handler, extractors...))
}

func newSentryHandler(cfg SentryConfig) (slog.Handler, error) {
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
		Release:     cfg.Release,
		EnableLogs:  true,
	}); err != nil {
		return nil, err
	}

	events, logs := cfg.levels()
	return sentryslog.Option{
		EventLevel: events,
		LogLevel:   logs,
	}.NewSentryHandler(context.Background()), nil
}

// Flush waits for buffered Sentry events to be delivered.
// It is a no-op when Sentry was never initialized.
func Flush() {
	if sentry.CurrentHub().Client() == nil {
		return
	}
	sentry.Flush(sentryFlushTimeout)
}
