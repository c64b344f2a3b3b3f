// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every variable name, e.g. TEXTQUEST_SEED.
const Prefix = "TEXTQUEST"

// Accepted range for SpeedModifier.
const (
	MinSpeedModifier = 0.1
	MaxSpeedModifier = 10.0
)

// Config holds everything the binary reads from the environment.
type Config struct {
	// Seed for the game's random source. 0 picks a time-based seed.
	Seed int64 `envconfig:"SEED" default:"0"`

	// Starting difficulty: 0 easy, 1 normal, 2 hard.
	Difficulty    int     `envconfig:"DIFFICULTY" default:"1"`
	SpeedModifier float64 `envconfig:"SPEED_MODIFIER" default:"1.0"`
	Cheats        bool    `envconfig:"CHEATS" default:"false"`

	TickInterval  time.Duration `envconfig:"TICK_INTERVAL" default:"100ms"`
	EventInterval time.Duration `envconfig:"EVENT_INTERVAL" default:"2s"`

	// The terminal belongs to the UI, so logs go to a file by default.
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	LogEncoding string `envconfig:"LOG_ENCODING" default:"json"`
	LogOutput   string `envconfig:"LOG_OUTPUT" default:"textquest.log"`

	TelemetryEnabled bool `envconfig:"TELEMETRY_ENABLED" default:"false"`
}

// Load reads the configuration from TEXTQUEST_* variables and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges envconfig can't express.
func (c *Config) Validate() error {
	if c.Difficulty < 0 || c.Difficulty > 2 {
		return fmt.Errorf("%s_DIFFICULTY must be 0, 1 or 2, got %d", Prefix, c.Difficulty)
	}
	if c.SpeedModifier < MinSpeedModifier || c.SpeedModifier > MaxSpeedModifier {
		return fmt.Errorf("%s_SPEED_MODIFIER must be between %v and %v, got %v",
			Prefix, MinSpeedModifier, MaxSpeedModifier, c.SpeedModifier)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("%s_TICK_INTERVAL must be positive, got %v", Prefix, c.TickInterval)
	}
	if c.EventInterval <= 0 {
		return fmt.Errorf("%s_EVENT_INTERVAL must be positive, got %v", Prefix, c.EventInterval)
	}
	return nil
}
