// =============================================================================
// SAM to Oracle Converter - Column Detector
// =============================================================================
//
// This module auto-detects which columns of a SAM export sheet correspond to
// the semantic fields the converter needs. SAM exports are hand-maintained
// spreadsheets, so header spelling drifts between files ("Oracle ID",
// "Oracle ID (system)", "oracle id "). Detection is therefore keyword-based
// rather than exact-match.
//
// DETECTION ALGORITHM:
//   For each semantic field, the headers are scanned in sheet order and the
//   first header whose trimmed, lowercased text contains one of the field's
//   keywords wins. The keyword table is a fixed, ordered list evaluated
//   deterministically:
//
//   | Keyword          | Field          |
//   |------------------|----------------|
//   | "cost center"    | costCenter     |
//   | "oracle id"      | oracleId       |
//   | "threshold from" | thresholdFrom  |
//   | "threshold to"   | thresholdTo    |
//   | "role", "type"   | role           |
//
//   Cost center, Oracle ID, and role are required; a sheet without them
//   cannot be converted and fails with MissingColumnError. Threshold columns
//   are optional: a sheet without them is treated as declaring fully-open
//   ranges for every row.
//
// =============================================================================

package detector

import (
	"fmt"
	"strings"
)

// =============================================================================
// SEMANTIC FIELDS
// =============================================================================

// Field identifies a semantic column of a SAM sheet.
type Field string

const (
	FieldCostCenter    Field = "costCenter"
	FieldOracleID      Field = "oracleId"
	FieldThresholdFrom Field = "thresholdFrom"
	FieldThresholdTo   Field = "thresholdTo"
	FieldRole          Field = "role"
)

// fieldKeyword is one (keyword, field) pair of the detection table.
type fieldKeyword struct {
	keyword string
	field   Field
}

// fieldKeywords is the fixed detection table. Order matters: fields are
// resolved top to bottom, and the first matching header wins per field.
var fieldKeywords = []fieldKeyword{
	{"cost center", FieldCostCenter},
	{"oracle id", FieldOracleID},
	{"threshold from", FieldThresholdFrom},
	{"threshold to", FieldThresholdTo},
	{"role", FieldRole},
	{"type", FieldRole},
}

// requiredFields are the fields a sheet must provide to be convertible.
var requiredFields = []Field{FieldCostCenter, FieldOracleID, FieldRole}

// =============================================================================
// ERRORS
// =============================================================================

// MissingColumnError reports that a required semantic column could not be
// detected in a sheet's header row. It is fatal for the affected sheet.
type MissingColumnError struct {
	// Field is the semantic field that has no matching header.
	Field Field

	// Headers are the headers that were scanned, for troubleshooting.
	Headers []string
}

// Error implements the error interface.
func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("no column matches required field %q (headers: %s)",
		e.Field, strings.Join(e.Headers, ", "))
}

// =============================================================================
// MAPPING
// =============================================================================

// Mapping is the result of column detection: for each semantic field, the
// header string of the matching column. An empty string means the field is
// unmapped, which is only legal for the optional threshold fields.
type Mapping struct {
	CostCenter    string
	OracleID      string
	ThresholdFrom string
	ThresholdTo   string
	Role          string
}

// Header returns the detected header for a semantic field, or "" if the
// field is unmapped.
func (m *Mapping) Header(f Field) string {
	switch f {
	case FieldCostCenter:
		return m.CostCenter
	case FieldOracleID:
		return m.OracleID
	case FieldThresholdFrom:
		return m.ThresholdFrom
	case FieldThresholdTo:
		return m.ThresholdTo
	case FieldRole:
		return m.Role
	default:
		return ""
	}
}

// Fields returns the semantic fields in detection-table order.
// Used by the validate command to render the mapping.
func Fields() []Field {
	return []Field{
		FieldCostCenter,
		FieldOracleID,
		FieldThresholdFrom,
		FieldThresholdTo,
		FieldRole,
	}
}

// =============================================================================
// DETECTION
// =============================================================================

// Detect maps a sheet's header row to semantic fields.
//
// Headers are trimmed and lowercased before matching; matching is substring
// based. The first header matching a field's keyword wins, so a sheet with
// both a "Role" and a "Type" column resolves role to the "Role" column only
// if it appears first in the keyword table scan.
//
// Returns a MissingColumnError if any required field has no match.
func Detect(headers []string) (*Mapping, error) {
	mapping := &Mapping{}

	for _, fk := range fieldKeywords {
		// Skip fields already resolved by an earlier keyword.
		if mapping.Header(fk.field) != "" {
			continue
		}

		for _, header := range headers {
			if strings.Contains(strings.ToLower(strings.TrimSpace(header)), fk.keyword) {
				mapping.set(fk.field, header)
				break
			}
		}
	}

	for _, field := range requiredFields {
		if mapping.Header(field) == "" {
			return nil, &MissingColumnError{Field: field, Headers: headers}
		}
	}

	return mapping, nil
}

// set records the detected header for a field.
func (m *Mapping) set(f Field, header string) {
	switch f {
	case FieldCostCenter:
		m.CostCenter = header
	case FieldOracleID:
		m.OracleID = header
	case FieldThresholdFrom:
		m.ThresholdFrom = header
	case FieldThresholdTo:
		m.ThresholdTo = header
	case FieldRole:
		m.Role = header
	}
}
