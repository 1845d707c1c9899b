// Package config loads savegrid settings from YAML, .env and the environment.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file read when no --config flag is given.
const DefaultPath = "savegrid.yaml"

// Environment variables that override file values.
const (
	EnvLocale    = "SAVEGRID_LOCALE"
	EnvOutputDir = "SAVEGRID_OUTPUT_DIR"
	EnvLogLevel  = "SAVEGRID_LOG_LEVEL"
	EnvColumns   = "SAVEGRID_COLUMNS"
)

// Config holds all savegrid settings.
type Config struct {
	Locale    string     `yaml:"locale"`
	LogLevel  string     `yaml:"log_level"`
	LogFormat string     `yaml:"log_format"`
	OutputDir string     `yaml:"output_dir"`
	Grid      GridConfig `yaml:"grid"`
	PDF       PDFConfig  `yaml:"pdf"`
}

// GridConfig holds the default generation primitives.
type GridConfig struct {
	PeriodUnit      string  `yaml:"period_unit"`
	PeriodCount     int     `yaml:"period_count"`
	AmountPerPeriod float64 `yaml:"amount_per_period"`
	Columns         int     `yaml:"columns"`
}

// PDFConfig holds paginated document settings.
type PDFConfig struct {
	PageSize       string  `yaml:"page_size"`
	PageWidth      float64 `yaml:"page_width,omitempty"`
	ColumnsPerPage int     `yaml:"columns_per_page,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Locale:    "en",
		LogLevel:  "info",
		LogFormat: "text",
		OutputDir: ".",
		Grid: GridConfig{
			PeriodUnit:      "day",
			PeriodCount:     1,
			AmountPerPeriod: 0,
			Columns:         7,
		},
		PDF: PDFConfig{
			PageSize: "a4",
		},
	}
}

// Load reads the config file, returning defaults if it doesn't exist, then
// applies .env and environment overrides.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	case !os.IsNotExist(err):
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	// A missing .env is normal; variables may come from the environment.
	_ = godotenv.Load()

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv(EnvLocale); v != "" {
		cfg.Locale = v
	}
	if v := os.Getenv(EnvOutputDir); v != "" {
		cfg.OutputDir = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(EnvColumns); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvColumns, err)
		}
		cfg.Grid.Columns = n
	}
	return nil
}

// Save writes the config to path as YAML.
func Save(cfg Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	header := []byte("# savegrid configuration\n# Environment variables SAVEGRID_LOCALE, SAVEGRID_OUTPUT_DIR,\n# SAVEGRID_LOG_LEVEL and SAVEGRID_COLUMNS override these values.\n\n")
	if err := os.WriteFile(path, append(header, data...), 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
