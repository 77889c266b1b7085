package dispatch

import (
	"time"

	"github.com/dmitrymomot/outreach/pkg/mailer"
)

// Config holds dispatcher configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	Delay       time.Duration `env:"DISPATCH_DELAY" envDefault:"1s"`
	SendTimeout time.Duration `env:"DISPATCH_SEND_TIMEOUT" envDefault:"0s"`
	Summary     bool          `env:"DISPATCH_SUMMARY" envDefault:"false"`
	Tags        []string      `env:"DISPATCH_TAGS" envDefault:"outreach" envSeparator:","`
}

// Options converts the config into dispatcher options.
func (c Config) Options() []Option {
	opts := []Option{
		WithDelay(c.Delay),
		WithSendTimeout(c.SendTimeout),
	}
	if len(c.Tags) > 0 {
		opts = append(opts, WithTags(mailer.SimpleTags(c.Tags...)))
	}
	if c.Summary {
		opts = append(opts, WithSummary())
	}
	return opts
}
