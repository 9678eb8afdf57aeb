package pipeline

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-drafter/internal/types"
)

// BatchItem is one named form to draft
type BatchItem struct {
	Name string
	Form types.FormState
}

// BatchResult pairs an item name with its run outcome
type BatchResult struct {
	Name   string
	Result *Result
}

// RunBatch drafts every item with at most limit runs in flight. Results keep the
// order of items. The first failed run cancels the rest.
func RunBatch(ctx context.Context, items []BatchItem, opts RunOptions, limit int) ([]BatchResult, error) {
	if limit <= 0 {
		limit = 1
	}
	results := make([]BatchResult, len(items))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, item := range items {
		g.Go(func() error {
			res, err := Run(gCtx, item.Form, opts)
			if err != nil {
				return fmt.Errorf("draft %s failed: %w", item.Name, err)
			}
			results[i] = BatchResult{Name: item.Name, Result: res}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
