package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/jonathan/resume-drafter/internal/experience"
	"github.com/jonathan/resume-drafter/internal/keywords"
	"github.com/jonathan/resume-drafter/internal/logging"
	"github.com/jonathan/resume-drafter/internal/observability"
	"github.com/jonathan/resume-drafter/internal/types"
)

// loadTables returns the default keyword tables extended by --keywords or RESUME_KEYWORDS
func loadTables(path string) (*keywords.Tables, error) {
	if path == "" {
		path = os.Getenv("RESUME_KEYWORDS")
	}
	tables, err := keywords.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load keyword tables: %w", err)
	}
	return tables, nil
}

// loadCheckedForm reads a form file and validates its fields. Validation
// failures are logged as warnings; only an unreadable form is an error.
func loadCheckedForm(path string, logger *log.Logger) (*types.FormState, error) {
	form, err := experience.LoadForm(path)
	if err != nil {
		return nil, err
	}
	if err := experience.CheckForm(form); err != nil && logger != nil {
		logger.Warn("form has invalid fields, continuing", "file", path, "err", err)
	}
	return form, nil
}

// writeJSON writes v as indented JSON to path, or to stdout when path is empty
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	data = append(data, '\n')

	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

func newLogger() *log.Logger {
	return logging.New(os.Stderr, verbose)
}

// printer writes verbose boxes to stderr so stdout stays machine-readable
func printer() *observability.Printer {
	return observability.NewPrinter(os.Stderr)
}
