// =============================================================================
// SAM to Oracle Converter - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that all other commands are attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (sam2oracle)
//   ├── processCmd (sam2oracle process)
//   ├── previewCmd (sam2oracle preview)
//   ├── validateCmd (sam2oracle validate)
//   └── versionCmd (sam2oracle version)
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ginjaninja78/SAM-to-Oracle-conversion/internal/config"
	"github.com/ginjaninja78/SAM-to-Oracle-conversion/internal/logging"
)

// cfgFile holds the path to the configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose enables debug logging when set to true.
var verbose bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "sam2oracle",
	Short: "SAM to Oracle Converter - Transform SAM approval hierarchies into Oracle import files",
	Long: `SAM to Oracle Converter is a CLI tool that converts approval hierarchy
workbooks exported from the SAM HR/finance system into Oracle ERP import
workbooks.

The converter auto-detects the relevant columns in each sheet, normalizes
currency-formatted threshold values, and expands every approver row into one
import row per Oracle approval level band. Reviewers are carried over as
single rows without approval authority.

Key Features:
  - Column auto-detection tolerant of header drift between exports
  - Fixed seven-level approval band expansion
  - Per-row error recovery with a run summary of skipped rows
  - Independent processing of the General and Research sheets

Example Usage:
  sam2oracle process                      # Convert "Raw Data.xlsx" in place
  sam2oracle process --input export.xlsx  # Convert a specific workbook
  sam2oracle preview --rows 10            # Inspect the transformation first
  sam2oracle validate                     # Check column detection only`,

	// If no subcommand is provided, print the help message.
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// init sets up the global flags.
func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}

// setup loads the configuration and builds the application logger.
// inputOverride, when non-empty, replaces the configured input workbook.
func setup(inputOverride string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, zerolog.Nop(), fmt.Errorf("failed to load config: %w", err)
	}

	if inputOverride != "" {
		cfg.InputFile = inputOverride
	}

	log := logging.New(os.Stderr, cfg.LogLevel, verbose)
	return cfg, log, nil
}
