// Command outreach sends the built-in batch of outreach emails through Resend,
// one at a time with a fixed pause between sends.
//
// It takes no flags. Configuration comes from the environment and an optional
// .env file in the working directory; RESEND_API_KEY is required. The exit code
// is 0 whenever the batch runs, however many individual sends failed.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/outreach/internal/config"
	"github.com/dmitrymomot/outreach/internal/contacts"
	"github.com/dmitrymomot/outreach/pkg/dispatch"
	"github.com/dmitrymomot/outreach/pkg/logger"
	"github.com/dmitrymomot/outreach/pkg/mailer"
	"github.com/dmitrymomot/outreach/pkg/mailer/resend"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		logger.New().Error("failed to load configuration", slog.String("error", err.Error()))
		return 1
	}

	log := logger.NewWithSentry(cfg.Sentry, logger.RunIDExtractor).With(slog.String("app", "outreach"))
	defer logger.Flush()

	records, err := contacts.Default()
	if err != nil {
		log.Error("failed to load contacts", slog.String("error", err.Error()))
		return 1
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	newDispatcher(cfg, resend.New(cfg.Resend), log).Run(ctx, records)

	return 0
}

func newDispatcher(cfg config.Config, sender mailer.Sender, log *slog.Logger) *dispatch.Dispatcher {
	opts := append([]dispatch.Option{
		dispatch.WithLogger(log),
		dispatch.WithSenderIdentity(cfg.Resend.Identity()),
	}, cfg.Dispatch.Options()...)

	return dispatch.New(sender, opts...)
}
