package picolog

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// envConfig is the environment-variable surface: parse, then validate,
// wrapping any failure in ErrInvalidConfig.
type envConfig struct {
	Level            string `env:"PICOLOG_LEVEL" envDefault:"WARNING"`
	MaxSubscribers   int    `env:"PICOLOG_MAX_SUBSCRIBERS" envDefault:"6"`
	MaxMessageLength int    `env:"PICOLOG_MAX_MESSAGE_LENGTH" envDefault:"120"`
	NoConsole        bool   `env:"PICOLOG_NO_CONSOLE" envDefault:"false"`
}

// FromEnv returns a Builder configured from the PICOLOG_* environment
// variables. Counts must be positive and PICOLOG_LEVEL must name a valid
// level; anything else fails with ErrInvalidConfig.
func FromEnv() (*Builder, error) {
	var cfg envConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, err.Error())
	}
	threshold, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	if cfg.MaxSubscribers <= 0 {
		return nil, fmt.Errorf("%w: PICOLOG_MAX_SUBSCRIBERS must be positive, got %d", ErrInvalidConfig, cfg.MaxSubscribers)
	}
	if cfg.MaxMessageLength <= 0 {
		return nil, fmt.Errorf("%w: PICOLOG_MAX_MESSAGE_LENGTH must be positive, got %d", ErrInvalidConfig, cfg.MaxMessageLength)
	}
	b := NewBuilder().
		WithCapacity(cfg.MaxSubscribers).
		WithMaxMessageLength(cfg.MaxMessageLength).
		WithThreshold(threshold)
	if cfg.NoConsole {
		b.WithoutConsole()
	}
	return b, nil
}
