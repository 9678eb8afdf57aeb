package prompts

import (
	"strings"
	"testing"

	"github.com/jonathan/resume-drafter/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestBuildDraftPrompt_FormRecords(t *testing.T) {
	form := types.FormState{
		Basics: types.Basics{
			FullName: "Jane Doe",
			Headline: "Backend Engineer",
			WorkAuth: &types.WorkAuthorization{Status: "Citizen"},
		},
		Experience: []types.ExperienceRecord{{
			Role:         "Senior Developer",
			Company:      "Acme Corp",
			StartDate:    "2020-01",
			Current:      types.BoolPtr(true),
			Achievements: []string{"Built APIs", "Led migration"},
			Technologies: []string{"Go"},
		}},
		Education:    []types.EducationRecord{{School: "State University", Degree: "BSc", EndDate: "2016"}},
		Skills:       []string{"Go", "Kafka"},
		Instructions: types.Instructions{Goals: []string{"Platform roles"}, Prompt: "Keep it short"},
		Attachments:  types.Attachments{JobDescriptionText: "Hiring Go engineers"},
	}

	prompt := BuildDraftPrompt(form, types.ParsedResumeSections{})

	assert.True(t, strings.HasPrefix(prompt, "Craft resume sections tailored"))
	assert.Contains(t, prompt, "Rewrite policy: You may rewrite")
	assert.Contains(t, prompt, "Name: Jane Doe\nEmail: Unknown\nHeadline: Backend Engineer")
	assert.Contains(t, prompt, "Work Authorization: Citizen")
	assert.Contains(t, prompt, "\n### Skills Provided\nGo, Kafka")
	assert.Contains(t, prompt, "\n### Goals\n- Platform roles")
	assert.Contains(t, prompt, "\n### Custom Prompt\nKeep it short")
	assert.Contains(t, prompt, "- Role: Senior Developer at Acme Corp (2020-01 – Present)")
	assert.Contains(t, prompt, "  Achievements (2 bullets):\n    1. Built APIs\n    2. Led migration")
	assert.Contains(t, prompt, "- BSc at State University (2016)")
	assert.Contains(t, prompt, "### Job Description (truncated)\nHiring Go engineers")
	assert.NotContains(t, prompt, "### Existing Resume Text")
	assert.NotContains(t, prompt, "### Projects Provided")
	assert.True(t, strings.HasSuffix(prompt, "matchedKeywords: the JD keywords you used."))
}

func TestBuildDraftPrompt_FallsBackToParsed(t *testing.T) {
	form := types.FormState{PreserveStrict: true}
	parsed := types.ParsedResumeSections{
		Summary:  "Engineer who ships.",
		Projects: []types.ProjectRecord{{Name: "Ledger", Summary: "Budget CLI", Highlights: []string{"Parsed exports"}}},
		Skills:   []string{"Rust"},
	}

	prompt := BuildDraftPrompt(form, parsed)

	assert.Contains(t, prompt, "Rewrite policy: STRICT.")
	assert.Contains(t, prompt, "Name: Unknown")
	assert.Contains(t, prompt, "### Existing Summary\nEngineer who ships.")
	assert.Contains(t, prompt, "- Ledger: Budget CLI\n  Highlights (1 bullets):\n    1. Parsed exports")
	assert.Contains(t, prompt, "Rust")
	assert.NotContains(t, prompt, "### Experience Provided")
}

func TestBuildDraftPrompt_TruncatesAttachments(t *testing.T) {
	form := types.FormState{
		Attachments: types.Attachments{ExistingResumeText: strings.Repeat("x", maxAttachmentChars+100)},
	}

	prompt := BuildDraftPrompt(form, types.ParsedResumeSections{})

	assert.Contains(t, prompt, strings.Repeat("x", maxAttachmentChars))
	assert.NotContains(t, prompt, strings.Repeat("x", maxAttachmentChars+1))
}

func TestSystemPrompt(t *testing.T) {
	assert.NotEmpty(t, SystemPrompt())
}
