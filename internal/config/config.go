package config

import (
	"log/slog"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/duel-engine/internal/domain/resource"
	duelerr "github.com/KirkDiggler/duel-engine/internal/errors"
)

// Config holds all configuration for the duel runner
type Config struct {
	ManaPolicy string `env:"DUEL_MANA_POLICY" envDefault:"ungated"`
	MaxTurns   int    `env:"DUEL_MAX_TURNS"   envDefault:"200"`
	LogLevel   string `env:"DUEL_LOG_LEVEL"   envDefault:"info"`
	RosterPath string `env:"DUEL_ROSTER_PATH"` // Optional: overrides the embedded roster

	policy resource.Policy
	level  slog.Level
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, duelerr.WrapWithCode(err, duelerr.CodeValidation, "parse env")
	}

	policy, err := resource.ParsePolicy(cfg.ManaPolicy)
	if err != nil {
		return nil, duelerr.WrapWithCode(err, duelerr.CodeValidation, "DUEL_MANA_POLICY")
	}
	cfg.policy = policy

	if err := cfg.level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return nil, duelerr.WrapWithCode(err, duelerr.CodeValidation, "DUEL_LOG_LEVEL")
	}

	if cfg.MaxTurns < 0 {
		return nil, duelerr.Validationf("DUEL_MAX_TURNS must not be negative, got %d", cfg.MaxTurns)
	}

	return cfg, nil
}

// Policy is the parsed mana policy
func (c *Config) Policy() resource.Policy {
	return c.policy
}

// SlogLevel is the parsed log level
func (c *Config) SlogLevel() slog.Level {
	return c.level
}
