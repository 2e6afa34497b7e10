package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Server holds server configuration sourced from the environment
type Server struct {
	Host string `env:"BROADSIDE_HOST" envDefault:""`
	Port int    `env:"BROADSIDE_PORT" envDefault:"8080"`

	// StorageType selects the storage backend ("memory" or "redis")
	StorageType string `env:"BROADSIDE_STORAGE" envDefault:"memory"`
	RedisURL    string `env:"BROADSIDE_REDIS_URL" envDefault:"redis://localhost:6379"`

	LogLevel string `env:"BROADSIDE_LOG_LEVEL" envDefault:"info"`
}

// Load parses server configuration from environment variables
func Load() (*Server, error) {
	var cfg Server
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}
