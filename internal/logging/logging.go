// =============================================================================
// SAM to Oracle Converter - Logging Setup
// =============================================================================
//
// This module configures the application logger. Interactive runs get the
// zerolog console writer; piped or redirected runs get plain JSON lines so
// the output stays machine-readable when the converter runs from a scheduler.
//
// =============================================================================

package logging

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// New builds the application logger writing to w at the given level.
// Unknown levels fall back to info; verbose forces debug.
func New(w *os.File, level string, verbose bool) zerolog.Logger {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil || parsed == zerolog.NoLevel {
		parsed = zerolog.InfoLevel
	}
	if verbose {
		parsed = zerolog.DebugLevel
	}

	var out io.Writer = w
	if isatty.IsTerminal(w.Fd()) || isatty.IsCygwinTerminal(w.Fd()) {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}

	return zerolog.New(out).Level(parsed).With().Timestamp().Logger()
}
