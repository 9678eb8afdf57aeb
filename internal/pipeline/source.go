package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// DraftSource produces a raw generated draft payload for a prompt. Implementations
// must honor ctx cancellation.
type DraftSource interface {
	Generate(ctx context.Context, prompt string) ([]byte, error)
}

// SourceError represents a failure of a DraftSource
type SourceError struct {
	Source    string
	Message   string
	Cause     error
	Retryable bool
}

func (e *SourceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("draft source error for %s: %s: %v", e.Source, e.Message, e.Cause)
	}
	return fmt.Sprintf("draft source error for %s: %s", e.Source, e.Message)
}

func (e *SourceError) Unwrap() error {
	return e.Cause
}

// FileSource reads a previously generated draft from disk and ignores the prompt
type FileSource struct {
	Path string
}

// Generate returns the file contents
func (f FileSource) Generate(ctx context.Context, _ string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, &SourceError{
			Source:    f.Path,
			Message:   "failed to read draft file",
			Cause:     err,
			Retryable: !errors.Is(err, fs.ErrNotExist),
		}
	}
	return data, nil
}

// SourceFunc adapts a function to a DraftSource
type SourceFunc func(ctx context.Context, prompt string) ([]byte, error)

// Generate calls f
func (f SourceFunc) Generate(ctx context.Context, prompt string) ([]byte, error) {
	return f(ctx, prompt)
}
