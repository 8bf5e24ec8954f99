package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/jakechorley/scholarship-allocator/pkg/core/allocator"
)

const (
	configFileName = "allocator_config"

	// DefaultBudget is the total budget used when the config does not set one
	DefaultBudget = 1_000_000_000

	// DefaultCustomRecipients is the recipient count for custom mode when none is configured,
	// capped at the number of candidates
	DefaultCustomRecipients = 5
)

// CriterionConfig configures one scoring criterion
type CriterionConfig struct {
	Name   string `yaml:"name" validate:"required"`
	Weight int    `yaml:"weight" validate:"min=1,max=5"`
	Kind   string `yaml:"kind" validate:"required,oneof=Benefit Cost benefit cost"`
}

// SheetConfig points at a Google Sheets range holding the candidate table
type SheetConfig struct {
	SpreadsheetID string `yaml:"spreadsheetID" validate:"required"`
	Range         string `yaml:"range" validate:"required"`

	// ResultsSpreadsheetID receives published allocations; defaults to SpreadsheetID
	ResultsSpreadsheetID string `yaml:"resultsSpreadsheetID,omitempty"`
}

// Config represents the application configuration
type Config struct {
	IDColumn         string            `yaml:"idColumn" validate:"required"`
	Criteria         []CriterionConfig `yaml:"criteria" validate:"required,min=1,unique=Name,dive"`
	Budget           float64           `yaml:"budget" validate:"gte=0,lte=9007199254740992"`
	Mode             string            `yaml:"mode" validate:"oneof=all optimal custom"`
	Recipients       int               `yaml:"recipients,omitempty" validate:"omitempty,min=1"`
	OptimalThreshold float64           `yaml:"optimalThreshold" validate:"gt=0,lte=1"`
	Sheet            *SheetConfig      `yaml:"sheet,omitempty"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Default returns a config with every optional field set to its default
func Default() *Config {
	return &Config{
		Budget:           DefaultBudget,
		Mode:             string(allocator.ModeAll),
		OptimalThreshold: allocator.OptimalMassThreshold,
	}
}

// Load loads and validates the configuration for the given environment.
// It looks for allocator_config.<env>.yaml (or allocator_config.yaml when env is empty)
// in the current directory first, then in the user's home directory
func Load(env string) (*Config, error) {
	configPath, err := findFile(configFileName, env, ".yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads the configuration from a specific path, applies defaults and
// ALLOCATOR_* environment overrides, and validates the result
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate validates the configuration struct and the cross-field rules
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	for i, c := range cfg.Criteria {
		if c.Name == cfg.IDColumn {
			return fmt.Errorf("config validation failed: criteria[%d] uses the identifier column %q", i, c.Name)
		}
	}

	return nil
}

// AllocatorCriteria converts the configured criteria for the scorer
func (c *Config) AllocatorCriteria() ([]allocator.Criterion, error) {
	criteria := make([]allocator.Criterion, len(c.Criteria))
	for i, cc := range c.Criteria {
		kind, err := allocator.ParseKind(cc.Kind)
		if err != nil {
			return nil, fmt.Errorf("criteria[%d]: %w", i, err)
		}
		criteria[i] = allocator.Criterion{Name: cc.Name, Weight: cc.Weight, Kind: kind}
	}
	return criteria, nil
}

// CriterionNames returns the configured criterion column names in order
func (c *Config) CriterionNames() []string {
	names := make([]string, len(c.Criteria))
	for i, cc := range c.Criteria {
		names[i] = cc.Name
	}
	return names
}

// AllocationMode returns the configured mode
func (c *Config) AllocationMode() allocator.Mode {
	return allocator.Mode(c.Mode)
}

// ResultsSpreadsheet returns where published allocations are written
func (s *SheetConfig) ResultsSpreadsheet() string {
	if s.ResultsSpreadsheetID != "" {
		return s.ResultsSpreadsheetID
	}
	return s.SpreadsheetID
}

// findFile searches for <base>[.<env>]<ext> in the current directory and home directory
func findFile(base, env, ext string) (string, error) {
	fileName := base + ext
	if env != "" {
		fileName = base + "." + env + ext
	}

	// Check current directory
	if _, err := os.Stat(fileName); err == nil {
		return fileName, nil
	}

	// Check home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homePath := filepath.Join(homeDir, fileName)
	if _, err := os.Stat(homePath); err == nil {
		return homePath, nil
	}

	return "", fmt.Errorf("%s not found in current directory or home directory", fileName)
}
