// =============================================================================
// SAM to Oracle Converter - Preview Command
// =============================================================================
//
// This file defines the 'preview' command, which runs the transformation and
// renders the first rows of each converted sheet without writing any files.
//
// COMMAND USAGE:
//   sam2oracle preview [--input PATH] [--rows N]
//
// =============================================================================

package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/SAM-to-Oracle-conversion/internal/converter"
	"github.com/ginjaninja78/SAM-to-Oracle-conversion/internal/xlsxreader"
)

// previewInput is the input workbook path override.
var previewInput string

// previewCount overrides the configured preview row count when positive.
var previewCount int

// previewCmd represents the 'preview' command.
var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview the transformation without writing output files",
	Long: `The preview command runs the full transformation over the input workbook
and prints the first rows of each converted sheet as a table. Nothing is
written to disk, so it is safe to run against any export to inspect what
the conversion would produce.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runPreview()
	},
}

// init registers the preview command with the root command and sets up flags.
func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().StringVar(
		&previewInput,
		"input",
		"",
		"Path to the input workbook (overrides the configured input_file)",
	)

	previewCmd.Flags().IntVar(
		&previewCount,
		"rows",
		0,
		"Number of rows to preview per sheet (default from config)",
	)
}

// runPreview transforms the workbook and renders the preview tables.
func runPreview() error {
	cfg, log, err := setup(previewInput)
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

	summary := converter.New(log).ProcessWorkbook(wb, cfg.Sheets)

	rows := cfg.PreviewRows
	if previewCount > 0 {
		rows = previewCount
	}
	printPreview(summary, rows)
	fmt.Println(summary.Text())

	if summary.Failed() {
		return fmt.Errorf("preview completed with sheet failures")
	}
	return nil
}
