package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-drafter/internal/drafting"
	"github.com/jonathan/resume-drafter/internal/schemas"
	"github.com/jonathan/resume-drafter/internal/types"
)

const externalPayload = "```json\n" + `{
  "sections": {
    "summary": "Backend engineer focused on reliable data platforms.",
    "skills": ["Go", "Kafka"],
    "experience": [
      {"role": "Consultant", "company": "Initech", "startDate": "2018-05", "achievements": ["Automated quarterly reporting"]}
    ]
  }
}` + "\n```"

func fixedClock() time.Time {
	return time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
}

func testForm() types.FormState {
	return types.FormState{
		Basics: types.Basics{FullName: "Jane Doe", Headline: "Backend Engineer"},
		Experience: []types.ExperienceRecord{{
			ID:           "exp-acme",
			Role:         "Senior Developer",
			Company:      "Acme Corp",
			StartDate:    "2020-01",
			Achievements: []string{"Built the billing API"},
		}},
		Skills: []string{"Go"},
	}
}

func testOptions(source DraftSource) RunOptions {
	return RunOptions{
		Drafting: drafting.Options{Now: fixedClock},
		Source:   source,
		Timeout:  time.Second,
		Backoff:  time.Millisecond,
	}
}

func companies(d types.GeneratedDraft) []string {
	out := make([]string, 0, len(d.Sections.Experience))
	for _, e := range d.Sections.Experience {
		out = append(out, e.Company)
	}
	return out
}

func TestRun_LocalWithoutSource(t *testing.T) {
	form := testForm()
	opts := testOptions(nil)

	res, err := Run(context.Background(), form, opts)
	require.NoError(t, err)

	assert.Equal(t, OriginLocal, res.Origin)
	assert.Zero(t, res.Attempts)
	assert.Empty(t, res.Prompt)
	assert.NoError(t, res.SourceErr)
	assert.NotEmpty(t, res.RunID)
	assert.Equal(t, drafting.Local(form, opts.Drafting), res.Draft)
}

func TestRun_ReconcilesExternalDraft(t *testing.T) {
	var prompt string
	source := SourceFunc(func(_ context.Context, p string) ([]byte, error) {
		prompt = p
		return []byte(externalPayload), nil
	})

	res, err := Run(context.Background(), testForm(), testOptions(source))
	require.NoError(t, err)

	assert.Equal(t, OriginExternal, res.Origin)
	assert.Equal(t, 1, res.Attempts)
	assert.Equal(t, res.Prompt, prompt)
	assert.Contains(t, prompt, "Acme Corp")
	assert.ElementsMatch(t, []string{"Acme Corp", "Initech"}, companies(res.Draft))
	assert.Contains(t, res.Draft.Sections.Skills, "Kafka")
}

func TestRun_RetriesInvalidPayloads(t *testing.T) {
	var calls atomic.Int32
	source := SourceFunc(func(context.Context, string) ([]byte, error) {
		if calls.Add(1) < 3 {
			return []byte(`{"atsScore": 10}`), nil
		}
		return []byte(externalPayload), nil
	})
	opts := testOptions(source)
	opts.Retries = 2

	res, err := Run(context.Background(), testForm(), opts)
	require.NoError(t, err)

	assert.Equal(t, OriginExternal, res.Origin)
	assert.Equal(t, 3, res.Attempts)
	assert.EqualValues(t, 3, calls.Load())
}

func TestRun_FallsBackToLocal(t *testing.T) {
	tests := []struct {
		name         string
		source       DraftSource
		retries      int
		wantAttempts int
		check        func(t *testing.T, err error)
	}{
		{
			name:         "missing file is not retried",
			source:       FileSource{Path: filepath.Join(t.TempDir(), "missing.json")},
			retries:      3,
			wantAttempts: 1,
			check: func(t *testing.T, err error) {
				var srcErr *SourceError
				require.ErrorAs(t, err, &srcErr)
				assert.False(t, srcErr.Retryable)
			},
		},
		{
			name: "payload never validates",
			source: SourceFunc(func(context.Context, string) ([]byte, error) {
				return []byte(`{"sections": {"skills": "Go"}}`), nil
			}),
			retries:      1,
			wantAttempts: 2,
			check: func(t *testing.T, err error) {
				var validationErr *schemas.ValidationError
				assert.ErrorAs(t, err, &validationErr)
			},
		},
		{
			name: "source times out",
			source: SourceFunc(func(ctx context.Context, _ string) ([]byte, error) {
				<-ctx.Done()
				return nil, ctx.Err()
			}),
			wantAttempts: 1,
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, context.DeadlineExceeded)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := testOptions(tt.source)
			opts.Retries = tt.retries
			opts.Timeout = 20 * time.Millisecond

			res, err := Run(context.Background(), testForm(), opts)
			require.NoError(t, err)

			assert.Equal(t, OriginLocal, res.Origin)
			assert.Equal(t, tt.wantAttempts, res.Attempts)
			assert.Equal(t, drafting.Local(testForm(), opts.Drafting), res.Draft)
			require.Error(t, res.SourceErr)
			tt.check(t, res.SourceErr)
		})
	}
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := Run(ctx, testForm(), testOptions(nil))
	assert.Nil(t, res)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "draft.json")
	require.NoError(t, os.WriteFile(path, []byte(externalPayload), 0644))

	data, err := FileSource{Path: path}.Generate(context.Background(), "ignored")
	require.NoError(t, err)
	assert.Equal(t, externalPayload, string(data))

	res, err := Run(context.Background(), testForm(), testOptions(FileSource{Path: path}))
	require.NoError(t, err)
	assert.Equal(t, OriginExternal, res.Origin)
}
