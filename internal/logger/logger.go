// Package logger configures the application's logging.
//
// It builds the zerolog root logger from config: console output for
// local development, JSON lines otherwise. Request-scoped child
// loggers are derived from this root by the middleware layer.
package logger

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/oakhollow/squirreld/internal/config"
)

// New constructs the root application logger.
//
// Every line carries service and environment fields so log aggregation
// can distinguish deployments.
func New(cfg *config.Config) *zerolog.Logger {
	var logger zerolog.Logger

	if cfg.Log.Format == "console" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		logger = zerolog.New(os.Stderr)
	}

	logger = logger.Level(cfg.Log.GetLevel()).With().
		Timestamp().
		Str("service", cfg.Log.ServiceName).
		Str("env", cfg.Log.Environment).
		Logger()

	return &logger
}
