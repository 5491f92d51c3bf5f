// =============================================================================
// SAM to Oracle Converter - Main Entry Point
// =============================================================================
//
// This is the main entry point for the SAM to Oracle approval hierarchy
// converter CLI. It initializes the Cobra CLI framework and delegates command
// execution to the cmd package.
//
// USAGE:
//   sam2oracle process       - Convert the input workbook to Oracle import files
//   sam2oracle preview       - Preview the transformation without writing files
//   sam2oracle validate      - Check column detection without processing
//   sam2oracle version       - Display the application version
//
// ARCHITECTURE:
//   This application follows a modular design where:
//   - cmd/           : Contains all CLI command definitions (Cobra)
//   - internal/      : Contains core business logic (not for external import)
//   - pkg/           : Contains shared utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/SAM-to-Oracle-conversion/cmd"
)

// main is the entry point of the application.
// It simply calls the Execute function from the cmd package, which
// initializes and runs the Cobra CLI.
func main() {
	cmd.Execute()
}
