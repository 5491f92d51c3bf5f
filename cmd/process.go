// =============================================================================
// SAM to Oracle Converter - Process Command
// =============================================================================
//
// This file defines the 'process' command, which runs the full conversion:
// read the SAM export workbook, transform each configured sheet, and write
// one Oracle import workbook per successfully converted sheet.
//
// COMMAND USAGE:
//   sam2oracle process [flags]
//
// FLAGS:
//   --input        : Path to the input workbook (overrides the config)
//   --dry-run      : Run the transformation without writing output files
//   --no-preview   : Skip the pre-run preview
//   --preview-rows : Number of preview rows per sheet
//
// PROCESSING PIPELINE:
//   1. Load configuration
//   2. Open the input workbook (missing file aborts before processing)
//   3. Process each configured sheet independently
//   4. Print a short preview of the transformation
//   5. Write the Oracle import files and the run summary log
//   6. Exit non-zero when any sheet failed fatally
//
// =============================================================================

package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ginjaninja78/SAM-to-Oracle-conversion/internal/config"
	"github.com/ginjaninja78/SAM-to-Oracle-conversion/internal/converter"
	"github.com/ginjaninja78/SAM-to-Oracle-conversion/internal/xlsxreader"
	"github.com/ginjaninja78/SAM-to-Oracle-conversion/internal/xlsxwriter"
	"github.com/ginjaninja78/SAM-to-Oracle-conversion/pkg/utils"
)

// dryRun runs the transformation without writing output files.
var dryRun bool

// noPreview skips the pre-run preview.
var noPreview bool

// previewRows overrides the configured preview row count when positive.
var previewRows int

// processInput is the input workbook path override.
var processInput string

// processCmd represents the 'process' command.
var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Convert the SAM export workbook to Oracle import files",
	Long: `The process command reads the SAM export workbook, transforms the General
and Research sheets (when present), and writes one Oracle import workbook per
converted sheet.

Sheets are processed independently: a sheet whose required columns cannot be
detected is reported and skipped, while the other sheet still converts. Rows
with malformed threshold values or unrecognized roles are skipped and listed
in the run summary.

No output file is written for a sheet that fails; successfully converted
sheets are always written. The command exits non-zero when any sheet failed.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runProcess()
	},
}

// init registers the process command with the root command and sets up flags.
func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().StringVar(
		&processInput,
		"input",
		"",
		"Path to the input workbook (overrides the configured input_file)",
	)

	processCmd.Flags().BoolVar(
		&dryRun,
		"dry-run",
		false,
		"Run the transformation without writing output files",
	)

	processCmd.Flags().BoolVar(
		&noPreview,
		"no-preview",
		false,
		"Skip the pre-run preview",
	)

	processCmd.Flags().IntVar(
		&previewRows,
		"preview-rows",
		0,
		"Number of preview rows per sheet (default from config)",
	)
}

// runProcess orchestrates the full conversion run.
func runProcess() error {
	cfg, log, err := setup(processInput)
	if err != nil {
		return err
	}

	// A missing input workbook is fatal before any processing starts.
	wb, err := xlsxreader.Open(cfg.InputFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("input workbook not found: %s", cfg.InputFile)
		}
		return err
	}
	defer wb.Close()

	summary := converter.New(log).ProcessWorkbook(wb, cfg.Sheets)

	// Show the operator what the transformation produces before writing.
	if !noPreview {
		rows := cfg.PreviewRows
		if previewRows > 0 {
			rows = previewRows
		}
		printPreview(summary, rows)
	}

	if dryRun {
		log.Info().Msg("dry run: no output files written")
	} else if err := writeOutputs(cfg, log, summary); err != nil {
		return err
	}

	fmt.Println(summary.Text())

	if summary.Failed() {
		return fmt.Errorf("conversion completed with sheet failures")
	}
	return nil
}

// writeOutputs writes one Oracle import workbook per converted sheet plus
// the run summary log, and archives outputs when configured.
func writeOutputs(cfg *config.Config, log zerolog.Logger, summary *converter.RunSummary) error {
	fm := utils.NewFileManager(cfg.OutputDir, cfg.OutputArchiveDir, cfg.ArchiveOutputs)
	if err := fm.EnsureDirectories(); err != nil {
		return err
	}

	for _, sheet := range summary.Sheets {
		if !sheet.Present || sheet.Failed() {
			continue
		}

		name := utils.GenerateOutputFileName(cfg.OutputNameFormat, sheet.Sheet)
		path := filepath.Join(cfg.OutputDir, name)

		if err := xlsxwriter.Write(path, sheet.Rows); err != nil {
			return fmt.Errorf("sheet %s: %w", sheet.Sheet, err)
		}
		log.Info().Str("sheet", sheet.Sheet).Str("output", path).Msg("wrote Oracle import file")

		if cfg.ArchiveOutputs {
			archived, err := fm.ArchiveOutputFile(path)
			if err != nil {
				// Archival is best-effort; the import itself succeeded.
				log.Warn().Str("output", path).Err(err).Msg("failed to archive output")
				continue
			}
			log.Debug().Str("archive", archived).Msg("archived output")
		}
	}

	if logPath, err := fm.WriteSummaryLog(summary.Text()); err != nil {
		log.Warn().Err(err).Msg("failed to write summary log")
	} else {
		log.Debug().Str("summary_log", logPath).Msg("wrote summary log")
	}

	return nil
}

// printPreview prints the first rows of each converted sheet.
func printPreview(summary *converter.RunSummary, rows int) {
	for _, sheet := range summary.Sheets {
		if !sheet.Present || sheet.Failed() || len(sheet.Rows) == 0 {
			continue
		}
		fmt.Printf("\n%s (first %d of %d rows):\n", sheet.Sheet, min(rows, len(sheet.Rows)), len(sheet.Rows))
		fmt.Println(renderOutputRows(sheet.Rows, rows))
	}
	fmt.Println()
}
