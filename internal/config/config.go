package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/spendview-dev/spendview/internal/statement"
)

// Config represents the top-level spendview.yaml configuration.
type Config struct {
	Data    DataConfig    `yaml:"data"`
	Import  ImportConfig  `yaml:"import"`
	Reports ReportsConfig `yaml:"reports"`
}

// DataConfig locates the document store.
type DataConfig struct {
	Dir    string `yaml:"dir"`
	AppKey string `yaml:"app_key"` // key for the persisted document blob
}

// ImportConfig controls statement parsing behavior.
type ImportConfig struct {
	// DateFallback is what happens to rows whose date does not parse:
	// "skip" drops them, "today" keeps them dated with the current date.
	DateFallback string `yaml:"date_fallback"`
}

// ReportsConfig holds report defaults.
type ReportsConfig struct {
	TopMerchants int `yaml:"top_merchants"`
}

// DatePolicy converts the configured fallback into a builder policy.
func (c ImportConfig) DatePolicy() statement.DatePolicy {
	if c.DateFallback == string(statement.DateToday) {
		return statement.DateToday
	}
	return statement.DateSkip
}

// Load reads a spendview.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new data directory.
func Default(dataDir string) *Config {
	return &Config{
		Data: DataConfig{
			Dir:    dataDir,
			AppKey: "spendview",
		},
		Import: ImportConfig{
			DateFallback: string(statement.DateSkip),
		},
		Reports: ReportsConfig{
			TopMerchants: 10,
		},
	}
}
