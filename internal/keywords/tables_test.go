package keywords

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSectionType(t *testing.T) {
	tables := Default()

	tests := []struct {
		heading  string
		wantType string
		wantOK   bool
	}{
		{"Experience", SectionExperience, true},
		{"WORK EXPERIENCE", SectionExperience, true},
		{"Professional Summary", SectionSummary, true},
		{"Technical Skills:", SectionSkills, true},
		{"Education & Training", SectionEducation, true},
		{"Side Projects", SectionProjects, true},
		{"Certifications", SectionOther, true},
		{"Senior Developer at Acme Corp Jan 2020 - Present", "", false},
		{"Experience building distributed systems at very large scale", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.heading, func(t *testing.T) {
			got, ok := tables.SectionType(tt.heading)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantType, got)
		})
	}
}

func TestActionVerbs(t *testing.T) {
	tables := Default()

	assert.True(t, tables.IsActionVerb("Built"))
	assert.True(t, tables.IsActionVerb("reduced,"))
	assert.False(t, tables.IsActionVerb("Developer"))
	assert.True(t, tables.StartsWithActionVerb("Reduced latency by 40%"))
	assert.False(t, tables.StartsWithActionVerb("Senior Developer at Acme"))
	assert.False(t, tables.StartsWithActionVerb("   "))
}

func TestBulletGlyphs(t *testing.T) {
	tables := Default()

	g, ok := tables.BulletGlyph("• Built a thing")
	assert.True(t, ok)
	assert.Equal(t, "•", g)

	_, ok = tables.BulletGlyph("Built a thing")
	assert.False(t, ok)

	assert.Equal(t, "Built a thing", tables.StripBullet("- • Built a thing"))
}

func TestKeywordLookups(t *testing.T) {
	tables := Default()

	assert.True(t, tables.HasCompanyKeyword("Acme Corp"))
	assert.True(t, tables.HasCompanyKeyword("Initech, Inc."))
	assert.False(t, tables.HasCompanyKeyword("Senior Developer"))
	assert.True(t, tables.HasRoleKeyword("Senior Developer"))
	assert.True(t, tables.HasDegreeKeyword("BSc Computer Science"))
	assert.True(t, tables.HasSchoolKeyword("University of Leeds"))
	assert.False(t, tables.HasSchoolKeyword("Acme Corp"))
}

func TestIsNoise(t *testing.T) {
	tables := Default()

	assert.True(t, tables.IsNoise("Summary"))
	assert.True(t, tables.IsNoise("  present "))
	assert.True(t, tables.IsNoise("London"))
	assert.True(t, tables.IsNoise("N/A"))
	assert.False(t, tables.IsNoise("Built a scheduler in London"))
}

func TestTechnologyAndMonth(t *testing.T) {
	tables := Default()

	name, ok := tables.Technology("K8s")
	assert.True(t, ok)
	assert.Equal(t, "Kubernetes", name)

	_, ok = tables.Technology("teamwork")
	assert.False(t, ok)

	name, ok = tables.Technology("Go")
	assert.True(t, ok)
	assert.Equal(t, "Go", name)
	_, ok = tables.Technology("go")
	assert.False(t, ok, "lowercase go is a common word")

	m, ok := tables.Month("Sept.")
	assert.True(t, ok)
	assert.Equal(t, 9, m)
}

func TestHasRewriteCue(t *testing.T) {
	tables := Default()

	assert.True(t, tables.HasRewriteCue("Please TAILOR this for fintech"))
	assert.False(t, tables.HasRewriteCue("keep as is"))
}

func TestDefault_ReturnsIndependentCopies(t *testing.T) {
	a := Default()
	b := Default()

	a.ActionVerbs[0] = "mutated"
	a.Technologies["zig"] = "Zig"

	assert.NotEqual(t, "mutated", b.ActionVerbs[0])
	_, ok := b.Technology("zig")
	assert.False(t, ok)
}
