package detector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectStandardHeaders(t *testing.T) {
	mapping, err := Detect([]string{
		"Cost Center", "Oracle ID", "Threshold From", "Threshold To", "Role",
	})
	require.NoError(t, err)

	assert.Equal(t, "Cost Center", mapping.CostCenter)
	assert.Equal(t, "Oracle ID", mapping.OracleID)
	assert.Equal(t, "Threshold From", mapping.ThresholdFrom)
	assert.Equal(t, "Threshold To", mapping.ThresholdTo)
	assert.Equal(t, "Role", mapping.Role)
}

func TestDetectIsCaseInsensitiveAndSubstringBased(t *testing.T) {
	mapping, err := Detect([]string{
		"  cost center code ", "Oracle ID (system)", "THRESHOLD FROM ($)", "Threshold To ($)", "Employee Role",
	})
	require.NoError(t, err)

	assert.Equal(t, "  cost center code ", mapping.CostCenter)
	assert.Equal(t, "Oracle ID (system)", mapping.OracleID)
	assert.Equal(t, "THRESHOLD FROM ($)", mapping.ThresholdFrom)
	assert.Equal(t, "Threshold To ($)", mapping.ThresholdTo)
	assert.Equal(t, "Employee Role", mapping.Role)
}

func TestDetectFirstMatchingHeaderWins(t *testing.T) {
	mapping, err := Detect([]string{
		"Cost Center", "Cost Center (old)", "Oracle ID", "Role",
	})
	require.NoError(t, err)
	assert.Equal(t, "Cost Center", mapping.CostCenter)
}

func TestDetectRoleFallsBackToTypeKeyword(t *testing.T) {
	mapping, err := Detect([]string{"Cost Center", "Oracle ID", "Employee Type"})
	require.NoError(t, err)
	assert.Equal(t, "Employee Type", mapping.Role)
}

func TestDetectThresholdColumnsAreOptional(t *testing.T) {
	mapping, err := Detect([]string{"Cost Center", "Oracle ID", "Role"})
	require.NoError(t, err)

	assert.Empty(t, mapping.ThresholdFrom)
	assert.Empty(t, mapping.ThresholdTo)
}

func TestDetectMissingRequiredColumnFails(t *testing.T) {
	_, err := Detect([]string{"Cost Center", "Oracle ID", "Threshold From", "Threshold To"})

	var missing *MissingColumnError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, FieldRole, missing.Field)
}

func TestDetectMissingOracleIDFails(t *testing.T) {
	_, err := Detect([]string{"Cost Center", "Role"})

	var missing *MissingColumnError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, FieldOracleID, missing.Field)
}
