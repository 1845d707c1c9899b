package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvLocale, EnvOutputDir, EnvLogLevel, EnvColumns} {
		t.Setenv(key, "")
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_FileValues(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "savegrid.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
locale: es
grid:
  period_unit: week
  period_count: 52
  amount_per_period: 10
  columns: 4
pdf:
  page_size: letter
  columns_per_page: 4
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "es", cfg.Locale)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, GridConfig{PeriodUnit: "week", PeriodCount: 52, AmountPerPeriod: 10, Columns: 4}, cfg.Grid)
	assert.Equal(t, "letter", cfg.PDF.PageSize)
	assert.Equal(t, 4, cfg.PDF.ColumnsPerPage)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvLocale, "es")
	t.Setenv(EnvOutputDir, "/tmp/exports")
	t.Setenv(EnvColumns, "10")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "es", cfg.Locale)
	assert.Equal(t, "/tmp/exports", cfg.OutputDir)
	assert.Equal(t, 10, cfg.Grid.Columns)
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("grid: [unclosed"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)

	t.Setenv(EnvColumns, "seven")
	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "savegrid.yaml")
	cfg := DefaultConfig()
	cfg.Locale = "es"
	cfg.PDF.PageWidth = 180

	require.NoError(t, Save(cfg, path))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
