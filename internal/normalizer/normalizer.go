// =============================================================================
// SAM to Oracle Converter - Value Normalizer
// =============================================================================
//
// This module converts raw threshold cells into numeric values or the
// sentinel NONE. SAM exports carry thresholds in whatever shape the last
// editor left them: plain numbers, currency-formatted strings
// ("$1,001.00", "25 000,  "), quoted values, or a bare dash meaning
// "no threshold".
//
// NORMALIZATION RULES:
//   - A dash or an empty cell normalizes to the sentinel NONE.
//   - Currency formatting (currency symbols, commas, spaces, quotes) is
//     stripped before parsing.
//   - Anything that still does not parse as a decimal fails with
//     InvalidValueError. The offending row is skipped and logged by the
//     sheet processor; the error is not fatal to the run.
//
// =============================================================================

package normalizer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ginjaninja78/SAM-to-Oracle-conversion/internal/types"
)

// =============================================================================
// ERRORS
// =============================================================================

// InvalidValueError reports a threshold cell that could not be parsed as a
// decimal after currency formatting was stripped. Recoverable: the sheet
// processor skips the row and continues.
type InvalidValueError struct {
	// Value is the raw cell content that failed to parse.
	Value string

	// Err is the underlying parse error.
	Err error
}

// Error implements the error interface.
func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid threshold value %q", e.Value)
}

// Unwrap exposes the underlying parse error.
func (e *InvalidValueError) Unwrap() error {
	return e.Err
}

// =============================================================================
// NORMALIZATION
// =============================================================================

// formattingReplacer strips the currency formatting seen in SAM exports.
var formattingReplacer = strings.NewReplacer(
	"$", "",
	"€", "",
	"£", "",
	",", "",
	" ", "",
	" ", "",
	"\"", "",
	"'", "",
)

// Normalize converts a raw threshold cell to a numeric threshold or the
// sentinel NONE.
func Normalize(raw string) (types.Threshold, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || trimmed == "-" {
		return types.ThresholdNone(), nil
	}

	cleaned := formattingReplacer.Replace(trimmed)
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return types.Threshold{}, &InvalidValueError{Value: raw, Err: err}
	}

	return types.ThresholdOf(value), nil
}
