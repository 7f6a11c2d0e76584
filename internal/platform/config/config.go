// Package config loads process configuration from environment variables;
// CLI flags override the parsed values.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds process-level settings.
type Config struct {
	Addr        string `env:"SUDOKU_ADDR" envDefault:":8080"`
	LogLevel    string `env:"SUDOKU_LOG_LEVEL" envDefault:"info"`
	Solver      string `env:"SUDOKU_SOLVER" envDefault:"backtrack"`
	Storage     string `env:"SUDOKU_STORAGE" envDefault:"sqlite"`
	StoragePath string `env:"SUDOKU_STORAGE_PATH" envDefault:"./data"`
}

// Load parses configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
