package dispatch

import (
	"context"
	"log/slog"
	"time"

	"github.com/dmitrymomot/outreach/pkg/mailer"
)

// DefaultDelay is the pause between consecutive sends.
const DefaultDelay = time.Second

// SleepFunc suspends the run for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Option configures the dispatcher.
type Option func(*Dispatcher)

// WithDelay sets the pause between consecutive sends. Negative values are treated as zero.
func WithDelay(d time.Duration) Option {
	return func(dp *Dispatcher) {
		dp.delay = max(d, 0)
	}
}

// WithSenderIdentity sets the From identity used for every message.
// Empty leaves the choice to the sender.
func WithSenderIdentity(from string) Option {
	return func(dp *Dispatcher) {
		dp.from = from
	}
}

// WithTags attaches provider tags to every message.
func WithTags(tags mailer.Tags) Option {
	return func(dp *Dispatcher) {
		if len(tags) > 0 {
			dp.tags = tags
		}
	}
}

// WithLogger sets the log sink. Nil keeps the no-op default.
func WithLogger(l *slog.Logger) Option {
	return func(dp *Dispatcher) {
		if l != nil {
			dp.logger = l
		}
	}
}

// WithSendTimeout bounds each individual send. Zero disables the timeout.
func WithSendTimeout(d time.Duration) Option {
	return func(dp *Dispatcher) {
		dp.sendTimeout = max(d, 0)
	}
}

// WithSleeper replaces the pacing suspension.
func WithSleeper(fn SleepFunc) Option {
	return func(dp *Dispatcher) {
		if fn != nil {
			dp.sleep = fn
		}
	}
}

// WithSummary logs sent and failed counts once the run finishes.
func WithSummary() Option {
	return func(dp *Dispatcher) {
		dp.summary = true
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
