// =============================================================================
// SAM to Oracle Converter - Run Summary Rendering
// =============================================================================
//
// Renders a RunSummary as the plain-text report printed at the end of a run
// and written to the summary log file.
//
// =============================================================================

package converter

import (
	"fmt"
	"strings"
)

// Text renders the run summary as a human-readable report.
func (s *RunSummary) Text() string {
	var b strings.Builder

	b.WriteString("=== Conversion Summary ===\n")
	fmt.Fprintf(&b, "Run ID:      %s\n", s.RunID)
	fmt.Fprintf(&b, "Input:       %s\n", s.InputFile)
	fmt.Fprintf(&b, "Elapsed:     %s\n", s.Elapsed)
	b.WriteString("\nSheets:\n")

	for _, sheet := range s.Sheets {
		switch {
		case !sheet.Present:
			fmt.Fprintf(&b, "  %-10s absent from workbook, skipped\n", sheet.Sheet+":")
		case sheet.Failed():
			fmt.Fprintf(&b, "  %-10s FAILED: %v\n", sheet.Sheet+":", sheet.Err)
		default:
			fmt.Fprintf(&b, "  %-10s %d input rows -> %d output rows (%d skipped)\n",
				sheet.Sheet+":",
				sheet.Stats.InputRows,
				sheet.Stats.OutputRows,
				sheet.Stats.SkippedRows,
			)
		}
	}

	if skips := s.allSkips(); len(skips) > 0 {
		b.WriteString("\nSkipped rows:\n")
		for _, skip := range skips {
			line := fmt.Sprintf("  %s row %d: %s", skip.Sheet, skip.RowNumber, skip.Reason)
			if skip.Detail != "" {
				line += fmt.Sprintf(" (%q)", skip.Detail)
			}
			b.WriteString(line + "\n")
		}
	}

	if s.Failed() {
		b.WriteString("\nResult: PARTIAL FAILURE - one or more sheets could not be converted\n")
	} else {
		b.WriteString("\nResult: SUCCESS\n")
	}

	return b.String()
}

// allSkips collects skip records across sheets in sheet order.
func (s *RunSummary) allSkips() []RowSkip {
	var skips []RowSkip
	for _, sheet := range s.Sheets {
		skips = append(skips, sheet.Skips...)
	}
	return skips
}
