// Package config loads process configuration from the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/outreach/pkg/dispatch"
	"github.com/dmitrymomot/outreach/pkg/logger"
	"github.com/dmitrymomot/outreach/pkg/mailer/resend"
)

// DefaultEnvFile is read when Load is called without file names.
const DefaultEnvFile = ".env"

// ErrParse indicates the environment could not be parsed into Config,
// including a missing or empty RESEND_API_KEY.
var ErrParse = errors.New("failed to parse configuration")

// Config is the application configuration.
type Config struct {
	Resend   resend.Config
	Sentry   logger.SentryConfig
	Dispatch dispatch.Config
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load exports the given dotenv files (DefaultEnvFile when none are given)
// into the process environment and parses it. Missing files are skipped and
// variables already set, even to an empty value, are never overridden.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{DefaultEnvFile}
	}

	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrParse, err)
	}

	cfg.Sentry.Level = logger.ParseLevel(cfg.LogLevel)
	cfg.Sentry.MinLevel = slog.LevelWarn

	return cfg, nil
}
