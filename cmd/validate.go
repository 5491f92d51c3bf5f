// =============================================================================
// SAM to Oracle Converter - Validate Command
// =============================================================================
//
// This file defines the 'validate' command, which checks that the converter
// can detect the required columns in each sheet of the input workbook. It
// processes nothing and writes nothing; the intended use is a quick sanity
// check after receiving a fresh SAM export.
//
// COMMAND USAGE:
//   sam2oracle validate [--input PATH]
//
// =============================================================================

package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/SAM-to-Oracle-conversion/internal/detector"
	"github.com/ginjaninja78/SAM-to-Oracle-conversion/internal/xlsxreader"
)

// validateInput is the input workbook path override.
var validateInput string

// validateCmd represents the 'validate' command.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check column detection without processing",
	Long: `The validate command opens the input workbook and runs column detection
over each configured sheet, printing the detected mapping or the missing
required columns. No rows are transformed and no files are written.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate()
	},
}

// init registers the validate command with the root command and sets up flags.
func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVar(
		&validateInput,
		"input",
		"",
		"Path to the input workbook (overrides the configured input_file)",
	)
}

// runValidate detects columns in each configured sheet and reports the result.
func runValidate() error {
	cfg, log, err := setup(validateInput)
	if err != nil {
		return err
	}

	wb, err := xlsxreader.Open(cfg.InputFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("input workbook not found: %s", cfg.InputFile)
		}
		return err
	}
	defer wb.Close()

	failures := 0
	for _, name := range cfg.Sheets {
		if !wb.HasSheet(name) {
			fmt.Printf("%s: absent from workbook, would be skipped\n\n", name)
			continue
		}

		data, err := wb.ReadSheet(name)
		if err != nil {
			log.Error().Str("sheet", name).Err(err).Msg("failed to read sheet")
			failures++
			continue
		}

		mapping, err := detector.Detect(data.Headers)
		if err != nil {
			fmt.Printf("%s: %v\n\n", name, err)
			failures++
			continue
		}

		fields := detector.Fields()
		names := make([]string, len(fields))
		headers := make([]string, len(fields))
		for i, field := range fields {
			names[i] = string(field)
			headers[i] = mapping.Header(field)
		}

		fmt.Printf("%s (%d data rows):\n", name, len(data.Rows))
		fmt.Println(renderMapping(names, headers))
		fmt.Println()
	}

	if failures > 0 {
		return fmt.Errorf("validation failed for %d sheet(s)", failures)
	}
	return nil
}
