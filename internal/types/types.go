// =============================================================================
// SAM to Oracle Converter - Shared Types
// =============================================================================
//
// This package contains shared types used across multiple modules to avoid
// import cycles. Types defined here are used by:
//   - detector
//   - normalizer
//   - expander
//   - converter
//   - xlsxwriter
//
// It also owns the fixed approval level band table. The table is process-wide,
// read-only configuration: seven non-overlapping monetary intervals, each
// associated with an Oracle approval level.
//
// =============================================================================

package types

import "strings"

// =============================================================================
// ROLES
// =============================================================================

// Role is the normalized approval role of an input row.
type Role string

const (
	// RoleApprover has monetary approval authority bounded by a threshold range.
	RoleApprover Role = "APPROVER"

	// RoleReviewer has visibility but no monetary approval authority.
	RoleReviewer Role = "REVIEWER"

	// RoleUnknown marks a role value the converter does not recognize.
	// Rows with an unknown role are skipped, not processed.
	RoleUnknown Role = ""
)

// ParseRole normalizes a raw role cell value.
// Matching is case-insensitive and substring-based, so values like
// "Sr. Reviewer" or "approver (backup)" are recognized.
func ParseRole(raw string) Role {
	lower := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case strings.Contains(lower, "reviewer"):
		return RoleReviewer
	case strings.Contains(lower, "approver"):
		return RoleApprover
	default:
		return RoleUnknown
	}
}

// =============================================================================
// THRESHOLDS
// =============================================================================

// Threshold is a normalized threshold cell value.
// A dash or empty cell normalizes to the NONE sentinel (None=true), which
// means "unbounded" for approvers and "no explicit range" for reviewers.
type Threshold struct {
	// Value is the numeric threshold in decimal currency units.
	// Only meaningful when None is false.
	Value float64

	// None marks the sentinel NONE.
	None bool
}

// ThresholdNone returns the sentinel NONE threshold.
func ThresholdNone() Threshold {
	return Threshold{None: true}
}

// ThresholdOf returns an explicit numeric threshold.
func ThresholdOf(v float64) Threshold {
	return Threshold{Value: v}
}

// =============================================================================
// INPUT / OUTPUT ROWS
// =============================================================================

// InputRow is one row of a SAM approval hierarchy sheet after column
// detection and value normalization.
type InputRow struct {
	// CostCenter is the cost center code (e.g. "CC001").
	CostCenter string

	// OracleID is the employee's Oracle identifier.
	OracleID string

	// ThresholdFrom is the lower bound of the declared approval range.
	ThresholdFrom Threshold

	// ThresholdTo is the upper bound of the declared approval range.
	ThresholdTo Threshold

	// Role is the normalized role.
	Role Role

	// RawRole is the original role cell value, kept for error reporting.
	RawRole string

	// RowNumber is the 1-based row number in the source sheet.
	// Useful for error reporting.
	RowNumber int
}

// OutputRow is one row of the Oracle import file. Each OutputRow is a
// derived, immutable projection of one InputRow expansion.
type OutputRow struct {
	// CostCenter is carried over from the input row.
	CostCenter string

	// Level is the approval level (1-7).
	// A value of 0 means the Level cell is left blank; this only occurs for
	// reviewer rows without a band, whose threshold cells are blank as well.
	Level int

	// Type is the constant employee type, always "Employee".
	Type string

	// Role is the uppercased role (APPROVER or REVIEWER).
	Role Role

	// OracleID is carried over from the input row.
	OracleID string

	// ThresholdFrom is the lower bound of this row's range, clamped to the
	// intersection of the declared range and the level band.
	ThresholdFrom float64

	// ThresholdTo is the upper bound of this row's range, clamped likewise.
	ThresholdTo float64
}

// EmployeeType is the constant Type value for every output row.
const EmployeeType = "Employee"

// OutputColumns is the fixed column order of the Oracle import file.
var OutputColumns = []string{
	"Cost Center",
	"Level",
	"Type",
	"Role",
	"Oracle ID",
	"Threshold Amount From",
	"Threshold Amount To",
}

// =============================================================================
// APPROVAL LEVEL BANDS
// =============================================================================

// LevelBand is a fixed, non-overlapping monetary interval associated with an
// Oracle approval level. Bounds are inclusive.
type LevelBand struct {
	Level int
	Lower float64
	Upper float64
}

// MinThreshold and MaxThreshold bound the full approval range. An approver
// with dash-to-dash thresholds holds authority over [MinThreshold, MaxThreshold].
const (
	MinThreshold = 1.0
	MaxThreshold = 99999999.99
)

// levelBands is the static band table. The bands are adjacent in whole-cent
// terms: each upper bound ends at .99 and the next lower bound starts at the
// following whole unit, so a value on a boundary belongs to exactly one band.
var levelBands = [7]LevelBand{
	{Level: 1, Lower: 1, Upper: 1000.99},
	{Level: 2, Lower: 1001, Upper: 5000.99},
	{Level: 3, Lower: 5001, Upper: 10000.99},
	{Level: 4, Lower: 10001, Upper: 25000.99},
	{Level: 5, Lower: 25001, Upper: 100000.99},
	{Level: 6, Lower: 100001, Upper: 1000000.99},
	{Level: 7, Lower: 1000001, Upper: 99999999.99},
}

// LevelBands returns the approval level band table in ascending level order.
// The returned slice is a copy; callers may not mutate process-wide state.
func LevelBands() []LevelBand {
	bands := make([]LevelBand, len(levelBands))
	copy(bands, levelBands[:])
	return bands
}

// Contains reports whether v falls within the band's inclusive bounds.
func (b LevelBand) Contains(v float64) bool {
	return v >= b.Lower && v <= b.Upper
}

// Overlaps reports whether [from, to] overlaps the band's inclusive bounds.
func (b LevelBand) Overlaps(from, to float64) bool {
	return from <= b.Upper && to >= b.Lower
}
