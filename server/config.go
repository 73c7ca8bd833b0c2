package server

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the server's environment-driven configuration.
type Config struct {
	Addr      string `env:"MANHUNT_ADDR" envDefault:"0.0.0.0:1235"`
	BoardFile string `env:"MANHUNT_BOARD" envDefault:"board.json"`
}

// ConfigFromEnv loads configuration from environment variables.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
