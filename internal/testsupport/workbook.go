// =============================================================================
// SAM to Oracle Converter - Test Support
// =============================================================================
//
// Helpers for building workbook fixtures in tests.
//
// =============================================================================

package testsupport

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// Sheet is one sheet of a workbook fixture.
type Sheet struct {
	// Name is the sheet name.
	Name string

	// Rows are the sheet's rows, header first. Cells may be strings or
	// numbers; excelize writes them with the matching cell type.
	Rows [][]interface{}
}

// WriteWorkbook builds an xlsx file from the given sheets and returns its
// path. The file is placed in dir, typically t.TempDir().
func WriteWorkbook(t *testing.T, dir string, sheets ...Sheet) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, sheet := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet.Name); err != nil {
				t.Fatalf("failed to rename default sheet: %v", err)
			}
		} else {
			if _, err := f.NewSheet(sheet.Name); err != nil {
				t.Fatalf("failed to add sheet %s: %v", sheet.Name, err)
			}
		}

		for r, row := range sheet.Rows {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			if err != nil {
				t.Fatalf("failed to address row %d: %v", r+1, err)
			}
			values := row
			if err := f.SetSheetRow(sheet.Name, cell, &values); err != nil {
				t.Fatalf("failed to write row %d of %s: %v", r+1, sheet.Name, err)
			}
		}
	}

	path := filepath.Join(dir, "fixture.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save workbook fixture: %v", err)
	}
	return path
}
