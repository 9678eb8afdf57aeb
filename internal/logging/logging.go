// Package logging provides the structured logger shared by the CLI and the pipeline.
package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// New creates a [log.Logger] writing to w with timestamps enabled. Verbose lowers
// the level to debug and adds caller reporting. A nil w writes to stderr.
func New(w io.Writer, verbose bool) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		ReportCaller:    verbose,
		Prefix:          "resume-drafter",
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.InfoLevel)
	}
	return logger
}

// Discard returns a logger that drops every entry
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

// With creates a child [log.Logger] with the key-value pairs added to all entries
func With(l *log.Logger, kv ...any) *log.Logger {
	if l == nil {
		l = Discard()
	}
	return l.With(kv...)
}
