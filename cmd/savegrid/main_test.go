package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/savegrid-go/internal/config"
	"github.com/ukaji3/savegrid-go/pkg/savegrid"
)

// run executes the CLI with an isolated config file and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for _, key := range []string{config.EnvLocale, config.EnvOutputDir, config.EnvLogLevel, config.EnvColumns} {
		t.Setenv(key, "")
	}

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "savegrid.yaml")}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestGridCommand(t *testing.T) {
	out, err := run(t, "grid", "--unit", "day", "--periods", "10", "--amount", "5", "--columns", "7")
	require.NoError(t, err)

	assert.Contains(t, out, "Day 10:")
	assert.Contains(t, out, "Total Value: 275")
}

func TestGridCommand_SpanishJSON(t *testing.T) {
	out, err := run(t, "--locale", "es", "grid", "-u", "week", "-n", "3", "-a", "10000", "-c", "3", "--json")
	require.NoError(t, err)

	var doc struct {
		Total   float64 `json:"total"`
		Display struct {
			TotalLine string `json:"total_line"`
		} `json:"display"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, 60000.0, doc.Total)
	assert.Equal(t, "Valor Total: 60.000", doc.Display.TotalLine)
}

func TestGridCommand_RejectsInvalidInput(t *testing.T) {
	_, err := run(t, "grid", "--periods", "5", "--columns", "12")
	assert.True(t, errors.Is(err, savegrid.ErrInvalidInput))

	_, err = run(t, "grid", "--unit", "year")
	assert.True(t, errors.Is(err, savegrid.ErrInvalidInput))
}

func TestExportAndReadBack(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, "export", "xlsx", "-n", "10", "-a", "5", "-c", "7", "-o", dir)
	require.NoError(t, err)
	path := strings.TrimSpace(out)
	assert.Equal(t, filepath.Join(dir, "savings_data.xlsx"), path)

	out, err = run(t, "read", path)
	require.NoError(t, err)

	var sheet struct {
		Pairs []struct {
			Label string  `json:"label"`
			Value float64 `json:"value"`
		} `json:"pairs"`
		Total float64 `json:"total"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &sheet))
	require.Len(t, sheet.Pairs, 10)
	assert.Equal(t, "Day 1", sheet.Pairs[0].Label)
	assert.Equal(t, 50.0, sheet.Pairs[9].Value)
	assert.Equal(t, 275.0, sheet.Total)
}

func TestExportPDF(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, "export", "pdf", "-u", "month", "-n", "24", "-a", "100", "-c", "6", "-o", dir, "--page-size", "letter", "--filename", "plan.pdf")
	require.NoError(t, err)

	data, err := os.ReadFile(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
	assert.Equal(t, "plan.pdf", filepath.Base(strings.TrimSpace(out)))
}

func TestExport_NoData(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, "export", "pdf", "-n", "0", "-o", dir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, savegrid.ErrEmptyData))
	assert.Contains(t, err.Error(), "There is no data to export")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestExport_UnknownFormat(t *testing.T) {
	_, err := run(t, "export", "docx")
	assert.True(t, errors.Is(err, savegrid.ErrUnsupportedFormat))
}

func TestLocalesCommand(t *testing.T) {
	out, err := run(t, "locales")
	require.NoError(t, err)
	assert.Equal(t, "en\tEnglish\nes\tEspañol\n", out)
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "savegrid.yaml")

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", path, "config", "init"})
	require.NoError(t, cmd.Execute())

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig().Grid, cfg.Grid)

	cmd = newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", path, "config", "init"})
	assert.Error(t, cmd.Execute())
}
