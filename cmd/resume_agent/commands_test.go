package main

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-drafter/internal/segment"
	"github.com/jonathan/resume-drafter/internal/types"
)

func TestSegmentCommand(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "segment", "--text-file", testdataPath("resumes", "sample_resume.txt"))
	output, err := cmd.Output()
	require.NoError(t, err)

	var result segment.Result
	require.NoError(t, json.Unmarshal(output, &result))
	assert.NotEmpty(t, result.Blocks)

	headings := make([]string, 0, len(result.Sections))
	for _, s := range result.Sections {
		headings = append(headings, s.Heading)
	}
	assert.Contains(t, headings, "EXPERIENCE")
	assert.Contains(t, headings, "EDUCATION")
	assert.Contains(t, headings, "SKILLS")
}

func TestParseResumeCommand(t *testing.T) {
	binaryPath := getBinaryPath(t)
	out := filepath.Join(t.TempDir(), "parsed.json")

	cmd := exec.Command(binaryPath, "parse-resume", "--text-file", testdataPath("resumes", "sample_resume.txt"), "--out", out)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, string(output))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	var parsed types.ParsedResumeSections
	require.NoError(t, json.Unmarshal(data, &parsed))

	require.NotEmpty(t, parsed.Experience)
	assert.Equal(t, "Senior Developer", parsed.Experience[0].Role)
	assert.Equal(t, "Acme Corp", parsed.Experience[0].Company)
	assert.Contains(t, parsed.Skills, "Go")
	assert.NotContains(t, string(data), "jane.doe@example.com")
}

func TestScoreCommand(t *testing.T) {
	binaryPath := getBinaryPath(t)

	tests := []struct {
		name string
		job  string
	}{
		{name: "plain text job", job: testdataPath("jobs", "backend_job.txt")},
		{name: "html job", job: testdataPath("jobs", "backend_job.html")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binaryPath, "score", "--job", tt.job, "--resume", testdataPath("resumes", "sample_resume.txt"))
			output, err := cmd.Output()
			require.NoError(t, err)

			var result scoreOutput
			require.NoError(t, json.Unmarshal(output, &result))
			require.NotNil(t, result.ATSScore)
			assert.GreaterOrEqual(t, *result.ATSScore, 0)
			assert.LessOrEqual(t, *result.ATSScore, 100)
			assert.Contains(t, result.MatchedKeywords, "payment")
		})
	}
}

func TestSanitizeCommand(t *testing.T) {
	binaryPath := getBinaryPath(t)
	form := testdataPath("forms", "basic_form.json")

	tests := []struct {
		name    string
		args    []string
		wantErr bool
		want    string
	}{
		{
			name: "clean bullet passes",
			args: []string{"sanitize", "--form", form, "--text", "Built streaming pipelines"},
			want: "Built streaming pipelines",
		},
		{
			name:    "name is rejected",
			args:    []string{"sanitize", "--form", form, "--text", "Jane Doe built streaming pipelines"},
			wantErr: true,
			want:    "rejected",
		},
		{
			name:    "unknown kind",
			args:    []string{"sanitize", "--text", "Go", "--kind", "poem"},
			wantErr: true,
			want:    "unknown --kind",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := exec.Command(binaryPath, tt.args...).CombinedOutput()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Contains(t, string(output), tt.want)
		})
	}
}

func TestPromptCommand(t *testing.T) {
	binaryPath := getBinaryPath(t)

	output, err := exec.Command(binaryPath, "prompt", "--form", testdataPath("forms", "basic_form.json")).CombinedOutput()
	require.NoError(t, err, string(output))
	assert.Contains(t, string(output), "Acme Corp")
	assert.Contains(t, string(output), "Ledger CLI")

	output, err = exec.Command(binaryPath, "prompt").CombinedOutput()
	assert.Error(t, err)
	assert.Contains(t, string(output), "--form is required")
}

func TestDraftCommand_Single(t *testing.T) {
	binaryPath := getBinaryPath(t)

	tests := []struct {
		name string
		args []string
	}{
		{name: "local", args: nil},
		{name: "with generated draft", args: []string{"--draft", testdataPath("drafts", "generated_draft.json")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"draft", "--form", testdataPath("forms", "basic_form.json")}, tt.args...)
			output, err := exec.Command(binaryPath, args...).Output()
			require.NoError(t, err)

			var draft types.GeneratedDraft
			require.NoError(t, json.Unmarshal(output, &draft))
			require.NotEmpty(t, draft.Sections.Experience)
			assert.Equal(t, "Acme Corp", draft.Sections.Experience[0].Company)
			assert.NotNil(t, draft.ATSScore)
			assert.NotContains(t, string(output), "jane.doe@example.com")
		})
	}
}

func TestDraftCommand_InvalidFormStillDrafts(t *testing.T) {
	binaryPath := getBinaryPath(t)

	data, err := os.ReadFile(testdataPath("forms", "basic_form.json"))
	require.NoError(t, err)
	var form map[string]any
	require.NoError(t, json.Unmarshal(data, &form))
	form["basics"].(map[string]any)["email"] = "not-an-email"
	data, err = json.Marshal(form)
	require.NoError(t, err)
	formPath := filepath.Join(t.TempDir(), "invalid_email.json")
	require.NoError(t, os.WriteFile(formPath, data, 0644))

	cmd := exec.Command(binaryPath, "draft", "--form", formPath)
	var stderr strings.Builder
	cmd.Stderr = &stderr
	output, err := cmd.Output()
	require.NoError(t, err, stderr.String())

	var draft types.GeneratedDraft
	require.NoError(t, json.Unmarshal(output, &draft))
	require.NotEmpty(t, draft.Sections.Experience)
	assert.Equal(t, "Acme Corp", draft.Sections.Experience[0].Company)
	assert.Contains(t, stderr.String(), "form has invalid fields")
}

func TestDraftCommand_Batch(t *testing.T) {
	binaryPath := getBinaryPath(t)

	formDir := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "drafts")
	data, err := os.ReadFile(testdataPath("forms", "basic_form.json"))
	require.NoError(t, err)
	for _, name := range []string{"alpha.json", "beta.json"} {
		require.NoError(t, os.WriteFile(filepath.Join(formDir, name), data, 0644))
	}

	output, err := exec.Command(binaryPath, "draft", "--batch", formDir, "--out", outDir, "--concurrency", "2").CombinedOutput()
	require.NoError(t, err, string(output))

	for _, name := range []string{"alpha.draft.json", "beta.draft.json"} {
		_, err := os.Stat(filepath.Join(outDir, name))
		assert.NoError(t, err, name)
	}
}

func TestDraftCommand_FlagErrors(t *testing.T) {
	binaryPath := getBinaryPath(t)

	tests := []struct {
		name        string
		args        []string
		errorString string
	}{
		{
			name:        "no input",
			args:        []string{"draft"},
			errorString: "either --form or --batch must be provided",
		},
		{
			name:        "form and batch",
			args:        []string{"draft", "--form", testdataPath("forms", "basic_form.json"), "--batch", "."},
			errorString: "mutually exclusive",
		},
		{
			name:        "batch without out",
			args:        []string{"draft", "--batch", testdataPath("forms")},
			errorString: "--out directory is required",
		},
		{
			name:        "negative retries",
			args:        []string{"draft", "--form", testdataPath("forms", "basic_form.json"), "--retries", "-1"},
			errorString: "must be non-negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := exec.Command(binaryPath, tt.args...).CombinedOutput()
			assert.Error(t, err)
			assert.True(t, strings.Contains(string(output), tt.errorString), string(output))
		})
	}
}
