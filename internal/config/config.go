// Package config loads runtime configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds everything the process needs to wire the engine and stores.
type Config struct {
	DBPath       string `env:"NATIONCRAFT_DB" envDefault:"data/nationcraft.db"`
	APIPort      int    `env:"NATIONCRAFT_API_PORT" envDefault:"8080"`
	RandomOrgKey string `env:"RANDOM_ORG_KEY"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load parses configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
