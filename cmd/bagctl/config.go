package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/joshuapare/blockbag/pkg/types"
)

// config is read from the environment on every command.
type config struct {
	LogLevel      string `env:"BAGCTL_LOG_LEVEL" envDefault:"info"`
	LogFile       string `env:"BAGCTL_LOG_FILE"`
	InventorySize int    `env:"BAGCTL_INVENTORY_SIZE" envDefault:"36"`
	MaxStack      int    `env:"BAGCTL_MAX_STACK" envDefault:"64"`
}

func loadConfig() (config, error) {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if cfg.InventorySize <= 0 {
		return cfg, fmt.Errorf("BAGCTL_INVENTORY_SIZE must be positive, got %d", cfg.InventorySize)
	}
	if cfg.MaxStack <= 0 {
		return cfg, fmt.Errorf("BAGCTL_MAX_STACK must be positive, got %d", cfg.MaxStack)
	}
	return cfg, nil
}

// limits returns the stack limits configured for this run, falling back to
// the defaults when MaxStack is unset.
func (c config) limits() types.Limits {
	l := types.Limits{MaxStack: c.MaxStack}
	if !l.Valid() {
		return types.DefaultLimits()
	}
	return l
}
