// Package config reads runtime settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds settings that root flags may override.
type Config struct {
	Theme    string `env:"TADA_THEME" envDefault:"classic"`
	Locale   string `env:"TADA_LOCALE" envDefault:"ja"`
	Currency string `env:"TADA_CURRENCY" envDefault:"¥"`
	// DebugLog is a file path; empty disables debug logging.
	DebugLog string `env:"TADA_DEBUG_LOG"`
}

// Load parses Config from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
