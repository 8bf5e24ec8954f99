package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// envOverrides are optional ALLOCATOR_* environment variables. noinit keeps unset
// pointers nil so the YAML values are kept
type envOverrides struct {
	IDColumn         *string  `env:"ALLOCATOR_ID_COLUMN,noinit"`
	Budget           *float64 `env:"ALLOCATOR_BUDGET,noinit"`
	Mode             *string  `env:"ALLOCATOR_MODE,noinit"`
	Recipients       *int     `env:"ALLOCATOR_RECIPIENTS,noinit"`
	OptimalThreshold *float64 `env:"ALLOCATOR_OPTIMAL_THRESHOLD,noinit"`
	SpreadsheetID    *string  `env:"ALLOCATOR_SPREADSHEET_ID,noinit"`
	SheetRange       *string  `env:"ALLOCATOR_SHEET_RANGE,noinit"`
}

// ApplyEnv overlays ALLOCATOR_* environment variables onto cfg
func ApplyEnv(cfg *Config) error {
	var overrides envOverrides
	if err := envconfig.Process(context.Background(), &overrides); err != nil {
		return fmt.Errorf("failed to process environment overrides: %w", err)
	}

	if overrides.IDColumn != nil {
		cfg.IDColumn = *overrides.IDColumn
	}
	if overrides.Budget != nil {
		cfg.Budget = *overrides.Budget
	}
	if overrides.Mode != nil {
		cfg.Mode = *overrides.Mode
	}
	if overrides.Recipients != nil {
		cfg.Recipients = *overrides.Recipients
	}
	if overrides.OptimalThreshold != nil {
		cfg.OptimalThreshold = *overrides.OptimalThreshold
	}

	if overrides.SpreadsheetID != nil || overrides.SheetRange != nil {
		if cfg.Sheet == nil {
			cfg.Sheet = &SheetConfig{}
		}
		if overrides.SpreadsheetID != nil {
			cfg.Sheet.SpreadsheetID = *overrides.SpreadsheetID
		}
		if overrides.SheetRange != nil {
			cfg.Sheet.Range = *overrides.SheetRange
		}
	}

	return nil
}
