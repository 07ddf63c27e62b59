// Package logging provides a leveled console logger for the application.
package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Options holds configuration for the console logger.
type Options struct {
	Level           log.Level
	ReportTimestamp bool
	Prefix          string
}

// DefaultOptions returns the default logger options.
func DefaultOptions() Options {
	return Options{
		Level:           log.WarnLevel,
		ReportTimestamp: false,
		Prefix:          "pm",
	}
}

// New creates a logger writing to stderr. Verbose mode lowers the level
// so informational messages from the storage layer become visible.
func New(verbose bool) *log.Logger {
	opts := DefaultOptions()
	if verbose {
		opts.Level = log.DebugLevel
	}
	return NewWithWriter(os.Stderr, opts)
}

// NewWithWriter creates a logger writing to the given writer.
func NewWithWriter(w io.Writer, opts Options) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           opts.Level,
		ReportTimestamp: opts.ReportTimestamp,
		Prefix:          opts.Prefix,
	})
}
