// =============================================================================
// SAM to Oracle Converter - Sheet Processor
// =============================================================================
//
// This module orchestrates the conversion pipeline for a workbook. Each
// configured sheet is processed independently:
//
//   1. Detect semantic columns from the header row
//   2. Normalize each row's threshold values
//   3. Expand each row into Oracle import rows
//   4. Sort the output by cost center, Oracle ID, and level
//
// ERROR PROPAGATION:
//   - A sheet absent from the workbook is skipped without error.
//   - A sheet whose required columns cannot be detected fails fatally for
//     that sheet only; no partial output is produced for it, and the other
//     sheets still process. The run then reports partial failure.
//   - Malformed threshold values and unrecognized roles are recoverable:
//     the offending row is skipped, logged, and recorded in the run summary.
//
// Processing is single-threaded and stateless across rows. Each row's
// expansion is independent, so the loop below is naturally parallelizable,
// but SAM exports are a few hundred rows at most and do not warrant it.
//
// =============================================================================

package converter

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ginjaninja78/SAM-to-Oracle-conversion/internal/detector"
	"github.com/ginjaninja78/SAM-to-Oracle-conversion/internal/expander"
	"github.com/ginjaninja78/SAM-to-Oracle-conversion/internal/normalizer"
	"github.com/ginjaninja78/SAM-to-Oracle-conversion/internal/types"
	"github.com/ginjaninja78/SAM-to-Oracle-conversion/internal/xlsxreader"
)

// =============================================================================
// RESULT STRUCTURES
// =============================================================================

// SkipReason classifies why a row was skipped.
type SkipReason string

const (
	// SkipInvalidValue marks a row with a malformed threshold cell.
	SkipInvalidValue SkipReason = "invalid threshold value"

	// SkipUnrecognizedRole marks a row whose role is neither reviewer nor
	// approver.
	SkipUnrecognizedRole SkipReason = "unrecognized role"

	// SkipBlankIdentity marks a row with neither a cost center nor an
	// Oracle ID. SAM exports often carry such filler rows at the bottom.
	SkipBlankIdentity SkipReason = "blank cost center and oracle id"
)

// RowSkip records one skipped row for the run summary.
type RowSkip struct {
	Sheet     string
	RowNumber int
	Reason    SkipReason
	Detail    string
}

// SheetStats contains per-sheet processing statistics.
type SheetStats struct {
	// InputRows is the number of non-empty data rows read from the sheet.
	InputRows int

	// OutputRows is the number of Oracle import rows produced.
	OutputRows int

	// SkippedRows is the number of input rows skipped.
	SkippedRows int
}

// SheetResult is the outcome of processing one sheet.
type SheetResult struct {
	// Sheet is the sheet name.
	Sheet string

	// Present is false when the workbook has no such sheet. An absent
	// sheet is a normal condition, not a failure.
	Present bool

	// Err is the fatal sheet error, if any (missing required column,
	// unreadable sheet). A failed sheet produces no output rows.
	Err error

	// Mapping is the detected column mapping. Nil when detection failed.
	Mapping *detector.Mapping

	// Rows are the Oracle import rows, sorted by cost center, Oracle ID,
	// and level.
	Rows []types.OutputRow

	// Skips are the rows skipped during processing.
	Skips []RowSkip

	// Stats are the per-sheet statistics.
	Stats SheetStats
}

// Failed reports whether the sheet failed fatally.
func (r *SheetResult) Failed() bool {
	return r.Err != nil
}

// RunSummary aggregates the outcome of a whole conversion run.
type RunSummary struct {
	// RunID identifies this run in logs and summary files.
	RunID string

	// InputFile is the source workbook path.
	InputFile string

	// Sheets holds one result per configured sheet, in configuration order.
	Sheets []*SheetResult

	// Elapsed is the total processing time.
	Elapsed time.Duration
}

// Failed reports whether any sheet failed fatally.
func (s *RunSummary) Failed() bool {
	for _, sheet := range s.Sheets {
		if sheet.Failed() {
			return true
		}
	}
	return false
}

// SkippedRows returns the total number of skipped rows across sheets.
func (s *RunSummary) SkippedRows() int {
	total := 0
	for _, sheet := range s.Sheets {
		total += sheet.Stats.SkippedRows
	}
	return total
}

// =============================================================================
// PROCESSOR
// =============================================================================

// Processor runs the conversion pipeline.
type Processor struct {
	log zerolog.Logger
}

// New creates a Processor logging through the given logger.
func New(log zerolog.Logger) *Processor {
	return &Processor{log: log}
}

// ProcessWorkbook processes the configured sheets of an open workbook and
// returns the run summary. Sheets are processed in order, independently;
// one sheet's fatal error does not stop the others.
func (p *Processor) ProcessWorkbook(wb *xlsxreader.Workbook, sheets []string) *RunSummary {
	start := time.Now()
	summary := &RunSummary{
		RunID:     uuid.New().String(),
		InputFile: wb.Path(),
	}

	log := p.log.With().Str("run_id", summary.RunID).Logger()
	log.Info().Str("input", wb.Path()).Strs("sheets", sheets).Msg("starting conversion")

	for _, name := range sheets {
		if !wb.HasSheet(name) {
			log.Warn().Str("sheet", name).Msg("sheet not found in workbook, skipping")
			summary.Sheets = append(summary.Sheets, &SheetResult{Sheet: name})
			continue
		}

		data, err := wb.ReadSheet(name)
		if err != nil {
			log.Error().Str("sheet", name).Err(err).Msg("failed to read sheet")
			summary.Sheets = append(summary.Sheets, &SheetResult{
				Sheet:   name,
				Present: true,
				Err:     err,
			})
			continue
		}

		result := p.ProcessSheet(data)
		summary.Sheets = append(summary.Sheets, result)
	}

	summary.Elapsed = time.Since(start)
	log.Info().
		Dur("elapsed", summary.Elapsed).
		Int("skipped_rows", summary.SkippedRows()).
		Bool("failed", summary.Failed()).
		Msg("conversion finished")

	return summary
}

// ProcessSheet runs column detection, normalization, and expansion over one
// sheet's rows.
func (p *Processor) ProcessSheet(data *xlsxreader.SheetData) *SheetResult {
	result := &SheetResult{Sheet: data.Name, Present: true}
	log := p.log.With().Str("sheet", data.Name).Logger()

	mapping, err := detector.Detect(data.Headers)
	if err != nil {
		result.Err = fmt.Errorf("sheet %s: %w", data.Name, err)
		log.Error().Err(err).Msg("column detection failed")
		return result
	}
	result.Mapping = mapping

	log.Debug().
		Str("cost_center", mapping.CostCenter).
		Str("oracle_id", mapping.OracleID).
		Str("threshold_from", mapping.ThresholdFrom).
		Str("threshold_to", mapping.ThresholdTo).
		Str("role", mapping.Role).
		Msg("detected columns")

	for _, row := range data.Rows {
		result.Stats.InputRows++

		input, skip := p.buildInputRow(mapping, data.Name, row)
		if skip != nil {
			p.recordSkip(result, &log, *skip)
			continue
		}

		expanded, err := expander.Expand(input)
		if err != nil {
			var roleErr *expander.UnrecognizedRoleError
			if errors.As(err, &roleErr) {
				p.recordSkip(result, &log, RowSkip{
					Sheet:     data.Name,
					RowNumber: row.Number,
					Reason:    SkipUnrecognizedRole,
					Detail:    roleErr.Role,
				})
				continue
			}
			// Expand only returns role errors today; anything else would
			// be a programming error worth failing the sheet over.
			result.Err = fmt.Errorf("sheet %s row %d: %w", data.Name, row.Number, err)
			result.Rows = nil
			return result
		}

		result.Rows = append(result.Rows, expanded...)
	}

	sortRows(result.Rows)
	result.Stats.OutputRows = len(result.Rows)

	log.Info().
		Int("input_rows", result.Stats.InputRows).
		Int("output_rows", result.Stats.OutputRows).
		Int("skipped_rows", result.Stats.SkippedRows).
		Msg("sheet processed")

	return result
}

// buildInputRow assembles an InputRow from a sheet row, or returns the skip
// record that disqualifies it.
func (p *Processor) buildInputRow(mapping *detector.Mapping, sheet string, row xlsxreader.Row) (types.InputRow, *RowSkip) {
	costCenter := strings.TrimSpace(row.Cells[mapping.CostCenter])
	oracleID := strings.TrimSpace(row.Cells[mapping.OracleID])

	if costCenter == "" && oracleID == "" {
		return types.InputRow{}, &RowSkip{
			Sheet:     sheet,
			RowNumber: row.Number,
			Reason:    SkipBlankIdentity,
		}
	}

	from, err := normalizeCell(mapping.ThresholdFrom, row)
	if err != nil {
		return types.InputRow{}, invalidValueSkip(sheet, row.Number, err)
	}
	to, err := normalizeCell(mapping.ThresholdTo, row)
	if err != nil {
		return types.InputRow{}, invalidValueSkip(sheet, row.Number, err)
	}

	rawRole := row.Cells[mapping.Role]
	return types.InputRow{
		CostCenter:    costCenter,
		OracleID:      oracleID,
		ThresholdFrom: from,
		ThresholdTo:   to,
		Role:          types.ParseRole(rawRole),
		RawRole:       strings.TrimSpace(rawRole),
		RowNumber:     row.Number,
	}, nil
}

// normalizeCell normalizes one threshold cell. An unmapped threshold column
// counts as a fully-open bound.
func normalizeCell(header string, row xlsxreader.Row) (types.Threshold, error) {
	if header == "" {
		return types.ThresholdNone(), nil
	}
	return normalizer.Normalize(row.Cells[header])
}

// invalidValueSkip builds the skip record for a malformed threshold cell.
func invalidValueSkip(sheet string, rowNumber int, err error) *RowSkip {
	detail := ""
	var valueErr *normalizer.InvalidValueError
	if errors.As(err, &valueErr) {
		detail = valueErr.Value
	}
	return &RowSkip{
		Sheet:     sheet,
		RowNumber: rowNumber,
		Reason:    SkipInvalidValue,
		Detail:    detail,
	}
}

// recordSkip logs a skipped row and adds it to the sheet result.
func (p *Processor) recordSkip(result *SheetResult, log *zerolog.Logger, skip RowSkip) {
	result.Skips = append(result.Skips, skip)
	result.Stats.SkippedRows++

	event := log.Warn()
	if skip.Reason == SkipBlankIdentity {
		// Filler rows are routine; don't alarm the operator.
		event = log.Debug()
	}
	event.
		Int("row", skip.RowNumber).
		Str("reason", string(skip.Reason)).
		Str("detail", skip.Detail).
		Msg("row skipped")
}

// sortRows orders output rows by cost center, Oracle ID, and level, matching
// the layout Oracle operators expect when eyeballing the import.
func sortRows(rows []types.OutputRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].CostCenter != rows[j].CostCenter {
			return rows[i].CostCenter < rows[j].CostCenter
		}
		if rows[i].OracleID != rows[j].OracleID {
			return rows[i].OracleID < rows[j].OracleID
		}
		return rows[i].Level < rows[j].Level
	})
}
