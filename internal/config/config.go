// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"boq-cost/core/types"
	"boq-cost/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Catalog contains master price list settings
	Catalog CatalogConfig `json:"catalog"`

	// Markup contains markup table settings
	Markup MarkupConfig `json:"markup"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Trades contains per-trade overrides
	Trades map[string]TradeConfig `json:"trades,omitempty"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// CatalogConfig contains master price list settings
type CatalogConfig struct {
	// Path is the JSON price list file
	Path string `json:"path"`
}

// MarkupConfig contains markup table settings
type MarkupConfig struct {
	// Rates maps a markup percentage to its multiplier increment,
	// e.g. 30 -> 0.30. Percentages not listed fall back to 1.00.
	Rates map[int]decimal.Decimal `json:"rates,omitempty"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format
	DefaultFormat string `json:"default_format"`

	// SavePriced writes the costed workbook back out
	SavePriced bool `json:"save_priced"`

	// PricedSuffix is appended to the input filename when saving
	PricedSuffix string `json:"priced_suffix"`
}

// TradeConfig overrides per-trade processing settings
type TradeConfig struct {
	// Sheet is the worksheet name; empty uses the first sheet
	Sheet string `json:"sheet,omitempty"`

	// Columns replaces the trade's built-in column map for workbooks
	// with a shifted layout
	Columns *types.ColumnMap `json:"columns,omitempty"`

	// MarkupPercentages replaces the trade's default markup columns
	MarkupPercentages []int `json:"markup_percentages,omitempty"`

	// AllowNameOnly enables name-only fuzzy matching for rows
	// without a usable code
	AllowNameOnly bool `json:"allow_name_only,omitempty"`
}

// Default returns a default configuration
func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	catalogPath := filepath.Join(homeDir, ".boq-cost", "catalog.json")

	return &Config{
		Version: "1.0",
		Catalog: CatalogConfig{
			Path: catalogPath,
		},
		Markup: MarkupConfig{},
		Output: OutputConfig{
			DefaultFormat: "cli",
			SavePriced:    true,
			PricedSuffix:  "_priced",
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Trade returns the overrides for a trade, or a zero value
func (c *Config) Trade(name string) TradeConfig {
	if c.Trades == nil {
		return TradeConfig{}
	}
	return c.Trades[name]
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
