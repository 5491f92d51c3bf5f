// =============================================================================
// SAM to Oracle Converter - Configuration Module
// =============================================================================
//
// This module loads the application configuration from a YAML file. The
// converter runs fine without one: every setting has a default matching the
// standard SAM hand-off ("Raw Data.xlsx" next to the binary, outputs written
// beside it), and a missing config file simply yields the defaults.
//
// CONFIGURATION FILE (config.yaml):
//   input_file:          path to the SAM export workbook
//   output_dir:          directory for the Oracle import files
//   output_archive_dir:  directory for archived copies of outputs
//   output_name_format:  output file name, with {sheet}, {uuid} and
//                        {timestamp} placeholders
//   sheets:              sheet names to process, in order
//   preview_rows:        rows shown per sheet in the pre-run preview
//   log_level:           debug, info, warn, or error
//   archive_outputs:     copy written outputs into the archive directory
//
// =============================================================================

package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the application configuration.
type Config struct {
	// InputFile is the path to the SAM export workbook.
	// Default: "Raw Data.xlsx"
	InputFile string `yaml:"input_file"`

	// OutputDir is the directory where Oracle import files are written.
	// Default: "."
	OutputDir string `yaml:"output_dir"`

	// OutputArchiveDir is the directory for archived copies of outputs.
	// Only used when ArchiveOutputs is true.
	// Default: "./output_archive"
	OutputArchiveDir string `yaml:"output_archive_dir"`

	// OutputNameFormat is the output file name pattern. Placeholders:
	//   {sheet}     - the source sheet name
	//   {uuid}      - a random UUID
	//   {timestamp} - current timestamp (YYYYMMDD_HHMMSS)
	// Default: "Oracle_Import_{sheet}.xlsx"
	OutputNameFormat string `yaml:"output_name_format"`

	// Sheets are the workbook sheets to process, in order. Sheets absent
	// from the input workbook are skipped without error.
	// Default: ["General", "Research"]
	Sheets []string `yaml:"sheets"`

	// PreviewRows is the number of transformed rows shown per sheet in the
	// pre-run preview.
	// Default: 3
	PreviewRows int `yaml:"preview_rows"`

	// LogLevel controls logging verbosity: debug, info, warn, or error.
	// Default: "info"
	LogLevel string `yaml:"log_level"`

	// ArchiveOutputs copies written outputs into OutputArchiveDir.
	// Default: false
	ArchiveOutputs bool `yaml:"archive_outputs"`
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	return &Config{
		InputFile:        "Raw Data.xlsx",
		OutputDir:        ".",
		OutputArchiveDir: "./output_archive",
		OutputNameFormat: "Oracle_Import_{sheet}.xlsx",
		Sheets:           []string{"General", "Research"},
		PreviewRows:      3,
		LogLevel:         "info",
	}
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads the configuration from a YAML file. A missing file is not an
// error; the defaults are returned instead. Settings omitted from the file
// keep their defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// applyDefaults fills in settings the file left empty.
func applyDefaults(cfg *Config) {
	def := Default()
	if cfg.InputFile == "" {
		cfg.InputFile = def.InputFile
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = def.OutputDir
	}
	if cfg.OutputArchiveDir == "" {
		cfg.OutputArchiveDir = def.OutputArchiveDir
	}
	if cfg.OutputNameFormat == "" {
		cfg.OutputNameFormat = def.OutputNameFormat
	}
	if len(cfg.Sheets) == 0 {
		cfg.Sheets = def.Sheets
	}
	if cfg.PreviewRows == 0 {
		cfg.PreviewRows = def.PreviewRows
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = def.LogLevel
	}
}

// validate rejects configurations the converter cannot run with.
func validate(cfg *Config) error {
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", cfg.LogLevel)
	}

	if cfg.PreviewRows < 0 {
		return fmt.Errorf("preview_rows must not be negative")
	}

	// Without the {sheet} placeholder, a multi-sheet run would overwrite
	// one output with the other.
	if len(cfg.Sheets) > 1 && !strings.Contains(cfg.OutputNameFormat, "{sheet}") {
		return fmt.Errorf("output_name_format must contain {sheet} when processing multiple sheets")
	}

	return nil
}
