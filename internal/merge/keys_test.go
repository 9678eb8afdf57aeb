package merge

import (
	"strings"
	"testing"

	"github.com/jonathan/resume-drafter/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeEntityKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Café & Co., Inc.", "cafeandcoinc"},
		{"  ACME Corp ", "acmecorp"},
		{"Zürich Labs", "zurichlabs"},
		{"", ""},
		{"---", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeEntityKey(tt.in))
		})
	}
}

func TestNormalizeKey(t *testing.T) {
	assert.Equal(t, "built the thing.", NormalizeKey("  Built   the\tTHING. "))
}

func TestDateKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2020-03", "202003"},
		{"2020/3", "202003"},
		{"03/2020", "202003"},
		{"Jan 2020", "202001"},
		{"September 2019", "201909"},
		{"sept. 2019", "201909"},
		{"2018", "2018"},
		{"Summer 2018", "2018"},
		{"Present", ""},
		{"", ""},
		{"Q3 21", "321"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, DateKey(tt.in))
		})
	}
}

func TestResolver_KeysInStrategyOrder(t *testing.T) {
	rec := types.ExperienceRecord{
		ID:           "exp-1",
		Role:         "Engineer",
		Company:      "Acme Corp",
		StartDate:    "Jan 2020",
		Achievements: []string{"Built APIs."},
	}

	keys := ExperienceResolver.Keys(rec)

	assert.Equal(t, []string{"id:exp-1", "acmecorp|engineer|202001"}, keys, "content hash only backs records without a heading")
	assert.Equal(t, "id:exp-1", ExperienceResolver.Resolve(rec))
}

func TestResolver_FallsBackThroughStrategies(t *testing.T) {
	headless := types.ExperienceRecord{Achievements: []string{"Built APIs."}}
	same := types.ExperienceRecord{Achievements: []string{"  built   apis. "}}

	assert.True(t, strings.HasPrefix(ExperienceResolver.Resolve(headless), "sha:"))
	assert.Equal(t, ExperienceResolver.Resolve(headless), ExperienceResolver.Resolve(same))
	assert.Equal(t, "", ExperienceResolver.Resolve(types.ExperienceRecord{}))
}

func TestProjectResolver_UsesHighlightsWithoutSummary(t *testing.T) {
	a := types.ProjectRecord{Name: "Scheduler", Highlights: []string{"Built a cron service"}}
	b := types.ProjectRecord{Name: "scheduler", Highlights: []string{"Built a cron service!"}}

	assert.Equal(t, "scheduler|builtacronservice", ProjectResolver.Keys(a)[0])
	assert.Equal(t, ProjectResolver.Keys(a)[0], ProjectResolver.Keys(b)[0])
}
