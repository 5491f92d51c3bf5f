package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "Raw Data.xlsx", cfg.InputFile)
	assert.Equal(t, "Oracle_Import_{sheet}.xlsx", cfg.OutputNameFormat)
	assert.Equal(t, []string{"General", "Research"}, cfg.Sheets)
	assert.Equal(t, 3, cfg.PreviewRows)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.ArchiveOutputs)
}

func TestLoadOverridesAndKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
input_file: exports/sam.xlsx
preview_rows: 10
archive_outputs: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "exports/sam.xlsx", cfg.InputFile)
	assert.Equal(t, 10, cfg.PreviewRows)
	assert.True(t, cfg.ArchiveOutputs)
	assert.Equal(t, []string{"General", "Research"}, cfg.Sheets, "unset settings keep defaults")
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadRejectsUnknownLogLevel(t *testing.T) {
	path := writeConfig(t, "log_level: chatty\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log_level")
}

func TestLoadRejectsNameFormatWithoutSheetPlaceholder(t *testing.T) {
	path := writeConfig(t, "output_name_format: Oracle_Import.xlsx\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "{sheet}")
}

func TestLoadAllowsFixedNameForSingleSheet(t *testing.T) {
	path := writeConfig(t, `
output_name_format: Oracle_Import.xlsx
sheets: [General]
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"General"}, cfg.Sheets)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := writeConfig(t, "input_file: [unclosed\n")

	_, err := Load(path)
	require.Error(t, err)
}
