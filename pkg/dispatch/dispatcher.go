package dispatch

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/outreach/pkg/logger"
	"github.com/dmitrymomot/outreach/pkg/mailer"
)

// Dispatcher sends records one at a time, pausing between sends.
type Dispatcher struct {
	sender      mailer.Sender
	logger      *slog.Logger
	tags        mailer.Tags
	sleep       SleepFunc
	from        string
	delay       time.Duration
	sendTimeout time.Duration
	summary     bool
}

// New creates a dispatcher delivering through sender.
func New(sender mailer.Sender, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		sender: sender,
		logger: logger.NewNope(),
		sleep:  sleepContext,
		delay:  DefaultDelay,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run sends every record in order. A failed send is logged and the run moves on;
// nothing is retried and no error is returned. The run stops early only when ctx
// is canceled during the pause between records.
func (d *Dispatcher) Run(ctx context.Context, records []Record) {
	if len(records) == 0 {
		return
	}

	ctx = logger.WithRunID(ctx, uuid.NewString())

	var sent, failed int
	for i, rec := range records {
		if i > 0 {
			if err := d.sleep(ctx, d.delay); err != nil {
				d.logger.WarnContext(ctx, "dispatch interrupted",
					slog.Int("remaining", len(records)-i),
					slog.String("error", err.Error()),
				)
				break
			}
		}

		if d.send(ctx, i, rec) {
			sent++
		} else {
			failed++
		}
	}

	if d.summary {
		d.logger.InfoContext(ctx, "dispatch finished",
			slog.Int("sent", sent),
			slog.Int("failed", failed),
		)
	}
}

func (d *Dispatcher) send(ctx context.Context, index int, rec Record) bool {
	sendCtx := ctx
	if d.sendTimeout > 0 {
		var cancel context.CancelFunc
		sendCtx, cancel = context.WithTimeout(ctx, d.sendTimeout)
		defer cancel()
	}

	receipt, err := d.sender.Send(sendCtx, &mailer.Email{
		From:    d.from,
		To:      []string{rec.Email},
		Subject: rec.Subject,
		Text:    rec.Body,
		Tags:    d.tags,
	})
	if err != nil {
		d.logger.ErrorContext(ctx, "email send failed",
			slog.Int("index", index),
			slog.String("name", rec.Name),
			slog.String("error", err.Error()),
		)
		return false
	}

	d.logger.InfoContext(ctx, "email sent",
		slog.Int("index", index),
		slog.String("name", rec.Name),
		slog.String("response", responseJSON(receipt)),
	)
	return true
}

func responseJSON(r *mailer.Receipt) string {
	raw, err := json.Marshal(r)
	if err != nil {
		return fmt.Sprintf("%+v", r)
	}
	return string(raw)
}
