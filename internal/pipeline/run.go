// Package pipeline provides the high-level orchestration for the draft generation process.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-drafter/internal/drafting"
	"github.com/jonathan/resume-drafter/internal/keywords"
	"github.com/jonathan/resume-drafter/internal/logging"
	"github.com/jonathan/resume-drafter/internal/parsing"
	"github.com/jonathan/resume-drafter/internal/prompts"
	"github.com/jonathan/resume-drafter/internal/schemas"
	"github.com/jonathan/resume-drafter/internal/types"
)

// Origin names where the final draft came from
type Origin string

const (
	// OriginLocal marks a draft synthesized without an external payload
	OriginLocal Origin = "local"
	// OriginExternal marks a draft reconciled from an external payload
	OriginExternal Origin = "external"
)

const (
	defaultTimeout = 30 * time.Second
	defaultBackoff = 250 * time.Millisecond
)

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	Drafting drafting.Options
	// Source is the optional generation collaborator; nil drafts locally
	Source DraftSource
	// Timeout bounds each call to Source; zero means 30s
	Timeout time.Duration
	// Retries is the number of extra attempts after a failed call
	Retries int
	// Backoff is the pause before the first retry, doubled for each further retry; zero means 250ms
	Backoff time.Duration
	Logger  *log.Logger
}

// Result is the outcome of one pipeline run
type Result struct {
	RunID    string
	Draft    types.GeneratedDraft
	Parsed   types.ParsedResumeSections
	Prompt   string
	Origin   Origin
	Attempts int
	// SourceErr is the last error from Source when the run fell back to the local draft
	SourceErr error
}

// Run drafts a résumé for one form. When a Source is configured it is called
// while the local draft is synthesized; a payload that decodes and validates is
// reconciled with the form, anything else falls back to the local draft.
// Run only fails when ctx is done before a draft exists.
func Run(ctx context.Context, form types.FormState, opts RunOptions) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	opts.Drafting = withTables(opts.Drafting)

	res := &Result{RunID: uuid.NewString(), Origin: OriginLocal}
	logger := logging.With(opts.Logger, "run", res.RunID[:8])

	if text := form.Attachments.ExistingResumeText; strings.TrimSpace(text) != "" {
		res.Parsed = parsing.ExtractFromResumeText(text, opts.Drafting.Tables)
		opts.Drafting.Parsed = &res.Parsed
		logger.Debug("parsed resume text",
			"experience", len(res.Parsed.Experience),
			"projects", len(res.Parsed.Projects),
			"education", len(res.Parsed.Education))
	}

	var local types.GeneratedDraft
	var external *types.GeneratedDraft

	g, gCtx := errgroup.WithContext(ctx)

	if opts.Source != nil {
		res.Prompt = prompts.BuildDraftPrompt(form, res.Parsed)
		g.Go(func() error {
			draft, attempts, err := fetchDraft(gCtx, opts, res.Prompt, logger)
			res.Attempts = attempts
			if err != nil {
				res.SourceErr = err
				logger.Warn("external draft unavailable, using local draft", "attempts", attempts, "err", err)
				return nil
			}
			external = draft
			return nil
		})
	}

	g.Go(func() error {
		local = drafting.Local(form, opts.Drafting)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	res.Draft = local
	if external != nil {
		res.Draft = drafting.Reconcile(form, *external, opts.Drafting)
		res.Origin = OriginExternal
	}
	logger.Info("draft ready",
		"origin", res.Origin,
		"experience", len(res.Draft.Sections.Experience),
		"skills", len(res.Draft.Sections.Skills))
	return res, nil
}

// fetchDraft calls the source until a payload decodes, retrying retryable failures
func fetchDraft(ctx context.Context, opts RunOptions, prompt string, logger *log.Logger) (*types.GeneratedDraft, int, error) {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	backoff := opts.Backoff
	if backoff <= 0 {
		backoff = defaultBackoff
	}

	var lastErr error
	attempts := 0
	for attempt := 0; attempt <= max(opts.Retries, 0); attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, attempts, errors.Join(lastErr, ctx.Err())
			case <-time.After(backoff << (attempt - 1)):
			}
		}

		attempts++
		draft, err := fetchOnce(ctx, opts.Source, prompt, timeout)
		if err == nil {
			return draft, attempts, nil
		}
		lastErr = err
		logger.Debug("draft attempt failed", "attempt", attempts, "err", err)
		if !retryable(err) || ctx.Err() != nil {
			break
		}
	}
	return nil, attempts, lastErr
}

func fetchOnce(ctx context.Context, source DraftSource, prompt string, timeout time.Duration) (*types.GeneratedDraft, error) {
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	payload, err := source.Generate(callCtx, prompt)
	if err != nil {
		return nil, err
	}
	draft, err := schemas.DecodeDraft(payload)
	if err != nil {
		return nil, fmt.Errorf("invalid draft payload: %w", err)
	}
	return draft, nil
}

// retryable reports whether another attempt may succeed. Malformed payloads and
// timeouts are retried; a SourceError decides for itself.
func retryable(err error) bool {
	var srcErr *SourceError
	if errors.As(err, &srcErr) {
		return srcErr.Retryable
	}
	return !errors.Is(err, context.Canceled)
}

func withTables(opts drafting.Options) drafting.Options {
	if opts.Tables == nil {
		opts.Tables = keywords.Default()
	}
	return opts
}
