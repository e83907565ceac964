// Package config loads fable settings from environment variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the environment-driven defaults for a generation session.
// CLI flags override these.
type Config struct {
	// Seed drives the session; 0 draws a crypto seed per run.
	Seed int64 `env:"FABLE_SEED"`

	// Locale selects the dataset, with fallback to the base locale.
	Locale string `env:"FABLE_LOCALE" envDefault:"en"`

	// Preset names the generation profile.
	Preset string `env:"FABLE_PRESET" envDefault:"demo"`

	// Count overrides the preset record count when positive.
	Count int `env:"FABLE_COUNT"`

	// DBPath, when set, writes records to a SQLite fixture file instead
	// of JSON lines.
	DBPath string `env:"FABLE_DB_PATH"`
}

// Load parses configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
