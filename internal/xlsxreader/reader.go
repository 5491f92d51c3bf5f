// =============================================================================
// SAM to Oracle Converter - Workbook Reader
// =============================================================================
//
// This module reads SAM export workbooks. Each sheet's first row is the
// header row; every following non-empty row becomes a header-keyed cell map,
// which is what the column detector and sheet processor operate on.
//
// SHEET HANDLING:
//   The converter processes the "General" and "Research" sheets when present.
//   A sheet that is entirely absent from the workbook is a normal condition
//   (the feature is optional, not the rows), so the reader exposes HasSheet
//   and leaves the skip decision to the caller.
//
// =============================================================================

package xlsxreader

import (
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"
)

// =============================================================================
// DATA STRUCTURES
// =============================================================================

// Row is one data row of a sheet.
type Row struct {
	// Number is the 1-based row number in the sheet, header row included.
	// Useful for error reporting.
	Number int

	// Cells maps the header string to the cell value in that column.
	// Cells missing from short rows are present with an empty value.
	Cells map[string]string
}

// SheetData is the parsed content of one sheet.
type SheetData struct {
	// Name is the sheet name.
	Name string

	// Headers are the first row's cells in column order, untrimmed.
	Headers []string

	// Rows are the non-empty data rows.
	Rows []Row
}

// Workbook is an open SAM export workbook.
type Workbook struct {
	path string
	file *excelize.File
}

// =============================================================================
// OPENING
// =============================================================================

// Open opens a workbook file.
//
// A missing file is reported with an error wrapping fs.ErrNotExist so the
// caller can distinguish "file not found" (fatal before processing) from a
// corrupt workbook.
func Open(path string) (*Workbook, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("input workbook %s: %w", path, fs.ErrNotExist)
		}
		return nil, fmt.Errorf("input workbook %s: %w", path, err)
	}

	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}

	return &Workbook{path: path, file: file}, nil
}

// Close releases the underlying file.
func (w *Workbook) Close() error {
	return w.file.Close()
}

// Path returns the workbook file path.
func (w *Workbook) Path() string {
	return w.path
}

// SheetNames returns the workbook's sheet names in workbook order.
func (w *Workbook) SheetNames() []string {
	return w.file.GetSheetList()
}

// HasSheet reports whether the workbook contains a sheet with the given name.
func (w *Workbook) HasSheet(name string) bool {
	for _, sheet := range w.file.GetSheetList() {
		if sheet == name {
			return true
		}
	}
	return false
}

// =============================================================================
// READING
// =============================================================================

// ReadSheet reads one sheet into headers and header-keyed rows.
//
// The first row is the header row. Rows whose cells are all empty are
// skipped. When two columns carry the same header, the first column wins;
// later duplicates are ignored, matching the first-match-wins rule of
// column detection.
func (w *Workbook) ReadSheet(name string) (*SheetData, error) {
	rows, err := w.file.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", name, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %s has no header row", name)
	}

	headers := rows[0]
	data := &SheetData{Name: name, Headers: headers}

	for i, raw := range rows[1:] {
		if isRowEmpty(raw) {
			continue
		}

		cells := make(map[string]string, len(headers))
		for j, header := range headers {
			if _, exists := cells[header]; exists {
				continue
			}
			if j < len(raw) {
				cells[header] = raw[j]
			} else {
				cells[header] = ""
			}
		}

		// +2: rows[1:] is 0-based and the header occupies sheet row 1.
		data.Rows = append(data.Rows, Row{Number: i + 2, Cells: cells})
	}

	return data, nil
}

// isRowEmpty reports whether every cell in the row is blank.
func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
