// Package config manages environment variables.
//
// It reads variables from the process environment (optionally seeded
// from a `.env` file), loads them into structured Go types, and
// validates that required values are present so they can be reused
// across the application runtime.
package config

import (
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: loads a `.env` file into the process env, if
	// one exists, before any env var is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
)

// Config is the root configuration object for the application.
//
// Env vars are read with the SQUIRREL_ prefix and mapped into nested
// struct fields via "." notation, e.g. SQUIRREL_SERVER.PORT ->
// server.port -> Config.Server.Port.
//
// Log is a pointer because it is optional; defaults are injected at
// load time when it is missing.
type Config struct {
	Primary  Primary        `koanf:"primary" validate:"required"`
	Server   ServerConfig   `koanf:"server" validate:"required"`
	Database DatabaseConfig `koanf:"database" validate:"required"`
	Log      *LogConfig     `koanf:"log"`
}

// Primary holds top-level information about the runtime environment,
// used to tag logs and switch behavior (console vs JSON output).
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are stored as seconds and converted when the server is built.
type ServerConfig struct {
	Host         string `koanf:"host"`
	Port         string `koanf:"port" validate:"required"`
	ReadTimeout  int    `koanf:"read_timeout" validate:"required"`
	WriteTimeout int    `koanf:"write_timeout" validate:"required"`
	IdleTimeout  int    `koanf:"idle_timeout" validate:"required"`

	// RateLimit is the per-client request rate (requests/second)
	// enforced by the rate limiter middleware. Zero disables it.
	RateLimit float64 `koanf:"rate_limit"`
}

// DatabaseConfig contains the SQLite storage location. The file is
// created on first open if it does not exist.
type DatabaseConfig struct {
	Path string `koanf:"path" validate:"required"`
}

// New loads configuration from environment variables, unmarshals it
// into Config, validates it, and applies defaults for optional blocks.
//
// Invalid or missing required configuration is fatal: the service
// should refuse to start rather than run half-configured.
func New() (*Config, error) {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	k := koanf.New(".")

	err := k.Load(env.Provider("SQUIRREL_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "SQUIRREL_"))
	}), nil)
	if err != nil {
		logger.Fatal().Err(err).Msg("Could not load initial env variables.")
	}

	mainConfig := &Config{}

	err = k.Unmarshal("", mainConfig)
	if err != nil {
		logger.Fatal().Err(err).Msg("Could not unmarshal main config.")
	}

	validate := validator.New()

	err = validate.Struct(mainConfig)
	if err != nil {
		logger.Fatal().Err(err).Msg("Config validation failed.")
	}

	if mainConfig.Log == nil {
		mainConfig.Log = DefaultLogConfig()
	}

	// Service name and environment are not user-configurable; force them
	// so every log line carries consistent identity fields.
	mainConfig.Log.ServiceName = "squirreld"
	mainConfig.Log.Environment = mainConfig.Primary.Env

	if err := mainConfig.Log.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid log config")
	}

	return mainConfig, nil
}
