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
//  2. file (YAML) if CARNET_CONFIG is set
//  3. env (prefix CARNET_)
func Load(ctx context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("CARNET_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: CARNET_ADDR, CARNET_MAX_RECORDS, ...
	// Underscores are preserved so env keys map 1:1 onto koanf tags.
	envProvider := env.Provider("CARNET_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "carnet_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Unmarshal into a copy.
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	switch {
	case cfg.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case cfg.MaxRecords < 1:
		return fmt.Errorf("%w: max_records must be positive", ErrInvalidConfig)
	case cfg.ConfidenceLevel <= 0 || cfg.ConfidenceLevel >= 1:
		return fmt.Errorf("%w: confidence_level must be in (0, 1)", ErrInvalidConfig)
	case cfg.DecayThresholdPct >= 0:
		return fmt.Errorf("%w: decay_threshold_pct must be negative", ErrInvalidConfig)
	case cfg.WindowDays < 1:
		return fmt.Errorf("%w: window_days must be positive", ErrInvalidConfig)
	case cfg.GPAHorizonDays < 1:
		return fmt.Errorf("%w: gpa_horizon_days must be positive", ErrInvalidConfig)
	}
	return nil
}
