package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if SENTIA_CONFIG is set
//  3. env (prefix SENTIA_)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("SENTIA_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
		}
	}

	// Environment variables: SENTIA_ADDR, SENTIA_HISTORY_SIZE, ...
	// Map env keys like SENTIA_HISTORY_SIZE -> history_size (flat keys).
	envProvider := env.Provider("SENTIA_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "sentia_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.MaxHistoryLimit < 1:
		return fmt.Errorf("%w: max_history_limit must be positive", ErrInvalidConfig)
	case c.MaxCompareBatch < 1:
		return fmt.Errorf("%w: max_compare_batch must be positive", ErrInvalidConfig)
	case c.HistorySize < 0:
		return fmt.Errorf("%w: history_size must not be negative", ErrInvalidConfig)
	}
	return nil
}
