// =============================================================================
// SAM to Oracle Converter - Oracle Import Writer
// =============================================================================
//
// This module writes the Oracle ERP import workbook. The import format is
// rigid: exactly seven columns, in a fixed order, one sheet per file:
//
//   Cost Center | Level | Type | Role | Oracle ID | Threshold Amount From | Threshold Amount To
//
// Numeric cells (Level, thresholds) are written as numbers so Oracle's
// loader does not reject them as text. Reviewer rows without a band carry
// blank Level and threshold cells.
//
// =============================================================================

package xlsxwriter

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/SAM-to-Oracle-conversion/internal/types"
)

// importSheet is the sheet name inside every Oracle import file.
const importSheet = "Sheet1"

// Generate builds an Oracle import workbook in memory from output rows.
// The caller owns the returned file and must Close it.
func Generate(rows []types.OutputRow) (*excelize.File, error) {
	f := excelize.NewFile()

	header := make([]interface{}, len(types.OutputColumns))
	for i, col := range types.OutputColumns {
		header[i] = col
	}
	if err := f.SetSheetRow(importSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("failed to address row %d: %w", i+2, err)
		}
		if err := f.SetSheetRow(importSheet, cell, cellValues(row)); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	return f, nil
}

// Write generates the import workbook and saves it to path.
func Write(path string, rows []types.OutputRow) error {
	f, err := Generate(rows)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", path, err)
	}
	return nil
}

// cellValues lays out one output row in import column order.
// A zero level means a reviewer row without a band: Level and both threshold
// cells stay blank.
func cellValues(row types.OutputRow) *[]interface{} {
	values := make([]interface{}, len(types.OutputColumns))
	values[0] = row.CostCenter
	values[2] = row.Type
	values[3] = string(row.Role)
	values[4] = row.OracleID

	if row.Level != 0 {
		values[1] = row.Level
		values[5] = row.ThresholdFrom
		values[6] = row.ThresholdTo
	}

	return &values
}
