// =============================================================================
// SAM to Oracle Converter - Row Expander
// =============================================================================
//
// This module contains the core transformation: expanding one SAM input row
// into the Oracle import rows that represent it. Oracle models approval
// authority as fixed level bands, so a single "CC001 / Approver / 1 to
// 99,999,999" row becomes seven rows, one per band.
//
// EXPANSION RULES:
//
//   Reviewer, dash-to-dash:
//     One output row with blank level and threshold cells. A reviewer's
//     presence is recorded without bounding authority.
//
//   Reviewer, explicit range:
//     One output row for the single band overlapping the range (the lowest
//     band when the range spans several), thresholds clamped to the
//     intersection of the range and the band.
//
//   Approver, dash-to-dash:
//     Treated as the maximal range [1, 99999999.99]: one output row per
//     band, each carrying that band's bounds verbatim.
//
//   Approver, explicit range [a, b]:
//     One output row per band overlapping [a, b], thresholds clamped to the
//     intersection. The emitted rows partition [a, b] within the full
//     approval range: no gaps, no overlaps.
//
//   Unrecognized role:
//     UnrecognizedRoleError; the sheet processor skips the row and logs it.
//
// The overlap test is inclusive on both bounds. Bands are constructed
// non-overlapping, so a value exactly on a band boundary belongs to exactly
// one band.
//
// Expansion is a pure function of the input row and the band table; it has
// no side effects and no shared state, so rows can be expanded in any order.
//
// =============================================================================

package expander

import (
	"fmt"

	"github.com/ginjaninja78/SAM-to-Oracle-conversion/internal/types"
)

// =============================================================================
// ERRORS
// =============================================================================

// UnrecognizedRoleError reports a row whose role cell is neither a reviewer
// nor an approver. Recoverable: the sheet processor skips the row.
type UnrecognizedRoleError struct {
	// RowNumber is the 1-based row number in the source sheet.
	RowNumber int

	// Role is the raw role cell value.
	Role string
}

// Error implements the error interface.
func (e *UnrecognizedRoleError) Error() string {
	return fmt.Sprintf("row %d: unrecognized role %q", e.RowNumber, e.Role)
}

// =============================================================================
// EXPANSION
// =============================================================================

// Expand converts one input row into its Oracle import rows.
//
// The returned slice is ordered by ascending level. A row whose explicit
// range falls entirely outside the full approval range expands to zero rows.
func Expand(row types.InputRow) ([]types.OutputRow, error) {
	switch row.Role {
	case types.RoleReviewer:
		return expandReviewer(row), nil
	case types.RoleApprover:
		return expandApprover(row), nil
	default:
		return nil, &UnrecognizedRoleError{RowNumber: row.RowNumber, Role: row.RawRole}
	}
}

// expandReviewer emits at most one row for a reviewer.
func expandReviewer(row types.InputRow) []types.OutputRow {
	// No explicit range: record the reviewer with blank level and thresholds.
	if row.ThresholdFrom.None && row.ThresholdTo.None {
		return []types.OutputRow{{
			CostCenter: row.CostCenter,
			Type:       types.EmployeeType,
			Role:       types.RoleReviewer,
			OracleID:   row.OracleID,
		}}
	}

	from, to := effectiveRange(row)
	for _, band := range types.LevelBands() {
		if band.Overlaps(from, to) {
			// The lowest overlapping band wins; reviewers map to one level.
			return []types.OutputRow{bandRow(row, band, from, to)}
		}
	}

	return nil
}

// fullAuthorityCeiling is the declared ceiling at or above which an explicit
// approver range counts as full authority. SAM editors write the maximum as
// a round 99,999,999 while Oracle's top band ends at 99,999,999.99; treating
// the declared range as maximal keeps the level 7 row on the band's bounds.
const fullAuthorityCeiling = 99999999

// expandApprover emits one row per band overlapping the approver's range.
func expandApprover(row types.InputRow) []types.OutputRow {
	from, to := effectiveRange(row)
	if from <= types.MinThreshold && to >= fullAuthorityCeiling {
		from, to = types.MinThreshold, types.MaxThreshold
	}

	var out []types.OutputRow
	for _, band := range types.LevelBands() {
		if band.Overlaps(from, to) {
			out = append(out, bandRow(row, band, from, to))
		}
	}
	return out
}

// effectiveRange resolves the declared range, widening sentinel NONE bounds
// to the full approval range.
func effectiveRange(row types.InputRow) (from, to float64) {
	from = types.MinThreshold
	if !row.ThresholdFrom.None {
		from = row.ThresholdFrom.Value
	}
	to = types.MaxThreshold
	if !row.ThresholdTo.None {
		to = row.ThresholdTo.Value
	}
	return from, to
}

// bandRow builds the output row for one band, clamping the declared range to
// the intersection with the band.
func bandRow(row types.InputRow, band types.LevelBand, from, to float64) types.OutputRow {
	return types.OutputRow{
		CostCenter:    row.CostCenter,
		Level:         band.Level,
		Type:          types.EmployeeType,
		Role:          row.Role,
		OracleID:      row.OracleID,
		ThresholdFrom: max(from, band.Lower),
		ThresholdTo:   min(to, band.Upper),
	}
}
