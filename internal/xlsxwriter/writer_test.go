package xlsxwriter

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/SAM-to-Oracle-conversion/internal/types"
)

func TestWriteProducesImportLayout(t *testing.T) {
	rows := []types.OutputRow{
		{
			CostCenter:    "CC001",
			Level:         1,
			Type:          types.EmployeeType,
			Role:          types.RoleApprover,
			OracleID:      "12345",
			ThresholdFrom: 1,
			ThresholdTo:   1000.99,
		},
		{
			CostCenter: "CC002",
			Type:       types.EmployeeType,
			Role:       types.RoleReviewer,
			OracleID:   "67890",
		},
	}

	path := filepath.Join(t.TempDir(), "Oracle_Import_General.xlsx")
	require.NoError(t, Write(path, rows))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows("Sheet1")
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, types.OutputColumns, got[0], "header must match the import layout exactly")

	assert.Equal(t, "CC001", got[1][0])
	assert.Equal(t, "1", got[1][1])
	assert.Equal(t, "Employee", got[1][2])
	assert.Equal(t, "APPROVER", got[1][3])
	assert.Equal(t, "12345", got[1][4])
	assert.Equal(t, "1", got[1][5])
	assert.Equal(t, "1000.99", got[1][6])

	// Reviewer row without a band: Level and threshold cells stay blank.
	// GetRows trims trailing empty cells, so the row ends at Oracle ID.
	require.GreaterOrEqual(t, len(got[2]), 5)
	assert.Equal(t, "CC002", got[2][0])
	assert.Equal(t, "", got[2][1])
	assert.Equal(t, "Employee", got[2][2])
	assert.Equal(t, "REVIEWER", got[2][3])
	assert.Equal(t, "67890", got[2][4])
}

func TestWriteEmptySheetStillCarriesHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Oracle_Import_Research.xlsx")
	require.NoError(t, Write(path, nil))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows("Sheet1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, types.OutputColumns, got[0])
}
