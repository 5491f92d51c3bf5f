// =============================================================================
// SAM to Oracle Converter - File Manager Utility
// =============================================================================
//
// This module provides file management utilities for the converter:
//   - Directory management
//   - Output file naming (placeholder expansion)
//   - Output archival (copying written imports for long-term storage)
//   - Run summary logs
//
// ARCHIVAL STRATEGY:
//   - Output files are copied (not moved) to the archive directory, so the
//     freshly written import stays where the Oracle operator expects it.
//   - Failed sheets produce no output and therefore nothing to archive.
//   - Summary logs are written to the output directory, one per run.
//
// =============================================================================

package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// FILE MANAGER
// =============================================================================

// FileManager handles file operations for the converter.
type FileManager struct {
	// OutputDir is the directory where output files are placed.
	OutputDir string

	// OutputArchiveDir is the directory for archived output files.
	OutputArchiveDir string

	// ArchiveOutputs determines whether written outputs are archived.
	ArchiveOutputs bool
}

// NewFileManager creates a FileManager for the given directories.
func NewFileManager(outputDir, outputArchiveDir string, archiveOutputs bool) *FileManager {
	return &FileManager{
		OutputDir:        outputDir,
		OutputArchiveDir: outputArchiveDir,
		ArchiveOutputs:   archiveOutputs,
	}
}

// EnsureDirectories creates the output directories if they don't exist.
func (fm *FileManager) EnsureDirectories() error {
	dirs := []string{fm.OutputDir}
	if fm.ArchiveOutputs {
		dirs = append(dirs, fm.OutputArchiveDir)
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// ArchiveOutputFile copies a written output file into the archive directory.
// Returns the archive path.
func (fm *FileManager) ArchiveOutputFile(filePath string) (string, error) {
	archivePath := filepath.Join(fm.OutputArchiveDir, filepath.Base(filePath))
	if err := copyFile(filePath, archivePath); err != nil {
		return "", fmt.Errorf("failed to archive output file: %w", err)
	}
	return archivePath, nil
}

// =============================================================================
// OUTPUT NAMING
// =============================================================================

// GenerateOutputFileName expands an output name format. Placeholders:
//   {sheet}     - the source sheet name, spaces replaced with underscores
//   {uuid}      - a random UUID
//   {timestamp} - current timestamp (YYYYMMDD_HHMMSS)
//
// The generated name always carries an .xlsx extension.
func GenerateOutputFileName(format, sheet string) string {
	name := format
	name = strings.ReplaceAll(name, "{sheet}", strings.ReplaceAll(sheet, " ", "_"))
	name = strings.ReplaceAll(name, "{uuid}", uuid.New().String())
	name = strings.ReplaceAll(name, "{timestamp}", time.Now().Format("20060102_150405"))

	if filepath.Ext(name) != ".xlsx" {
		name += ".xlsx"
	}

	return name
}

// =============================================================================
// SUMMARY LOGS
// =============================================================================

// WriteSummaryLog writes the run summary text to a timestamped log file in
// the output directory. Returns the log path.
func (fm *FileManager) WriteSummaryLog(summary string) (string, error) {
	name := fmt.Sprintf("conversion_summary_%s.log", time.Now().Format("20060102_150405"))
	path := filepath.Join(fm.OutputDir, name)

	if err := os.WriteFile(path, []byte(summary), 0644); err != nil {
		return "", fmt.Errorf("failed to write summary log: %w", err)
	}

	return path, nil
}

// =============================================================================
// HELPERS
// =============================================================================

// copyFile copies a file, preserving content but not metadata.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}

	return out.Sync()
}

// FileExists reports whether a path exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
