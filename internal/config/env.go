package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Env holds overrides read from the process environment.
// Empty values leave the stored preference in effect.
type Env struct {
	Theme      string         `env:"PRIMECALC_THEME"`
	Language   string         `env:"PRIMECALC_LANGUAGE"`
	PrimeDelay *time.Duration `env:"PRIMECALC_PRIME_DELAY"`
	Store      string         `env:"PRIMECALC_STORE"`
	DBPath     string         `env:"PRIMECALC_DB_PATH"`
	FPS        int            `env:"PRIMECALC_FPS"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadEnv reads the PRIMECALC_* overrides
func LoadEnv() (Env, error) {
	var cfg Env
	if err := ParseEnv(&cfg); err != nil {
		return Env{}, err
	}
	return cfg, nil
}
