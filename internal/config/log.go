package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// LogConfig controls the application logger.
type LogConfig struct {
	// Level is a zerolog level name: trace, debug, info, warn, error.
	Level string `koanf:"level"`

	// Format selects the output encoding: "console" for the
	// human-readable writer, "json" for machine-readable lines.
	Format string `koanf:"format"`

	// ServiceName and Environment are injected from the primary config
	// at load time and attached to every log line.
	ServiceName string `koanf:"-"`
	Environment string `koanf:"-"`
}

// DefaultLogConfig returns the logging defaults used when no log block
// is configured: info-level JSON output.
func DefaultLogConfig() *LogConfig {
	return &LogConfig{
		Level:  "info",
		Format: "json",
	}
}

// Validate checks that the configured level and format are usable.
func (c *LogConfig) Validate() error {
	if _, err := zerolog.ParseLevel(c.Level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Level, err)
	}

	switch c.Format {
	case "console", "json":
		return nil
	default:
		return fmt.Errorf("invalid log format %q (want console or json)", c.Format)
	}
}

// GetLevel parses the configured level. Validate must have passed.
func (c *LogConfig) GetLevel() zerolog.Level {
	level, _ := zerolog.ParseLevel(c.Level)
	return level
}
