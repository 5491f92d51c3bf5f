package expander

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/SAM-to-Oracle-conversion/internal/types"
)

func approverRow(from, to types.Threshold) types.InputRow {
	return types.InputRow{
		CostCenter:    "CC001",
		OracleID:      "12345",
		ThresholdFrom: from,
		ThresholdTo:   to,
		Role:          types.RoleApprover,
		RowNumber:     2,
	}
}

func reviewerRow(from, to types.Threshold) types.InputRow {
	row := approverRow(from, to)
	row.CostCenter = "CC002"
	row.OracleID = "67890"
	row.Role = types.RoleReviewer
	return row
}

func TestApproverDashToDashExpandsToAllBands(t *testing.T) {
	rows, err := Expand(approverRow(types.ThresholdNone(), types.ThresholdNone()))
	require.NoError(t, err)
	require.Len(t, rows, 7)

	for i, band := range types.LevelBands() {
		assert.Equal(t, band.Level, rows[i].Level)
		assert.Equal(t, band.Lower, rows[i].ThresholdFrom)
		assert.Equal(t, band.Upper, rows[i].ThresholdTo)
		assert.Equal(t, "CC001", rows[i].CostCenter)
		assert.Equal(t, "12345", rows[i].OracleID)
		assert.Equal(t, types.EmployeeType, rows[i].Type)
		assert.Equal(t, types.RoleApprover, rows[i].Role)
	}
}

func TestApproverDeclaredFullRangeInheritsBandBounds(t *testing.T) {
	// SAM editors write the maximum as a round 99,999,999; that still means
	// full authority, so level 7 ends at the band's 99,999,999.99.
	rows, err := Expand(approverRow(types.ThresholdOf(1), types.ThresholdOf(99999999)))
	require.NoError(t, err)
	require.Len(t, rows, 7)

	for i, band := range types.LevelBands() {
		assert.Equal(t, band.Level, rows[i].Level)
		assert.Equal(t, band.Lower, rows[i].ThresholdFrom)
		assert.Equal(t, band.Upper, rows[i].ThresholdTo)
	}
}

func TestApproverPartialRangeClampsToIntersection(t *testing.T) {
	rows, err := Expand(approverRow(types.ThresholdOf(500), types.ThresholdOf(30000)))
	require.NoError(t, err)
	require.Len(t, rows, 5)

	assert.Equal(t, 1, rows[0].Level)
	assert.Equal(t, 500.0, rows[0].ThresholdFrom)
	assert.Equal(t, 1000.99, rows[0].ThresholdTo)

	assert.Equal(t, 5, rows[4].Level)
	assert.Equal(t, 25001.0, rows[4].ThresholdFrom)
	assert.Equal(t, 30000.0, rows[4].ThresholdTo)
}

func TestApproverExpansionPartitionsRange(t *testing.T) {
	// The clamped rows must cover [a,b] with no gaps and no overlaps:
	// each row starts one cent after the previous one ends.
	rows, err := Expand(approverRow(types.ThresholdOf(750), types.ThresholdOf(250000)))
	require.NoError(t, err)
	require.NotEmpty(t, rows)

	assert.Equal(t, 750.0, rows[0].ThresholdFrom)
	assert.Equal(t, 250000.0, rows[len(rows)-1].ThresholdTo)

	for i := 1; i < len(rows); i++ {
		assert.InDelta(t, rows[i-1].ThresholdTo+0.01, rows[i].ThresholdFrom, 1e-6,
			"row %d must start one cent after row %d ends", i, i-1)
		assert.LessOrEqual(t, rows[i].ThresholdFrom, rows[i].ThresholdTo)
	}
}

func TestApproverRangeWithinSingleBand(t *testing.T) {
	rows, err := Expand(approverRow(types.ThresholdOf(1200), types.ThresholdOf(4000)))
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, 2, rows[0].Level)
	assert.Equal(t, 1200.0, rows[0].ThresholdFrom)
	assert.Equal(t, 4000.0, rows[0].ThresholdTo)
}

func TestApproverBoundaryValueBelongsToLowerBand(t *testing.T) {
	// 1000.99 is the inclusive upper bound of band 1; a range ending exactly
	// there must not spill into band 2.
	rows, err := Expand(approverRow(types.ThresholdOf(500), types.ThresholdOf(1000.99)))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 1, rows[0].Level)
}

func TestApproverRangeOutsideBandsExpandsToNothing(t *testing.T) {
	rows, err := Expand(approverRow(types.ThresholdOf(0.10), types.ThresholdOf(0.50)))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestApproverOpenLowerBoundWidensToMinimum(t *testing.T) {
	rows, err := Expand(approverRow(types.ThresholdNone(), types.ThresholdOf(4000)))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 1.0, rows[0].ThresholdFrom)
	assert.Equal(t, 4000.0, rows[1].ThresholdTo)
}

func TestReviewerDashToDashYieldsSingleBlankRow(t *testing.T) {
	rows, err := Expand(reviewerRow(types.ThresholdNone(), types.ThresholdNone()))
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "CC002", row.CostCenter)
	assert.Equal(t, 0, row.Level, "level must stay blank")
	assert.Equal(t, types.EmployeeType, row.Type)
	assert.Equal(t, types.RoleReviewer, row.Role)
	assert.Equal(t, "67890", row.OracleID)
	assert.Zero(t, row.ThresholdFrom)
	assert.Zero(t, row.ThresholdTo)
}

func TestReviewerExplicitRangeMapsToLowestOverlappingBand(t *testing.T) {
	rows, err := Expand(reviewerRow(types.ThresholdOf(2000), types.ThresholdOf(7000)))
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, 2, rows[0].Level)
	assert.Equal(t, 2000.0, rows[0].ThresholdFrom)
	assert.Equal(t, 5000.99, rows[0].ThresholdTo, "clamped to the band intersection")
	assert.Equal(t, types.RoleReviewer, rows[0].Role)
}

func TestUnrecognizedRoleFails(t *testing.T) {
	row := approverRow(types.ThresholdNone(), types.ThresholdNone())
	row.Role = types.RoleUnknown
	row.RawRole = "Observer"

	rows, err := Expand(row)
	assert.Nil(t, rows)

	var roleErr *UnrecognizedRoleError
	require.ErrorAs(t, err, &roleErr)
	assert.Equal(t, "Observer", roleErr.Role)
	assert.Equal(t, 2, roleErr.RowNumber)
}
