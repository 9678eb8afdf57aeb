package segment

import (
	"testing"

	"github.com/jonathan/resume-drafter/internal/keywords"
	"github.com/jonathan/resume-drafter/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `Jane Doe
jane@example.com | +1 555 010 0200

## Summary
Backend engineer focused on reliable data platforms.

EXPERIENCE
Senior Developer at Acme Corp Jan 2020 - Present
• Built a scheduler handling 10k req/s
Reduced cloud spend by 30%

Education:
BSc Computer Science, University of Leeds, 2012 - 2016
`

func TestClassify(t *testing.T) {
	tables := keywords.Default()

	tests := []struct {
		name string
		line string
		want types.BlockKind
	}{
		{"glyph bullet", "• Built a scheduler", types.BlockBullet},
		{"dash bullet", "- Led a team of five", types.BlockBullet},
		{"verb bullet", "Reduced cloud spend by 30%", types.BlockBullet},
		{"keyword heading", "Experience", types.BlockHeading},
		{"markdown heading", "## Work Experience", types.BlockHeading},
		{"colon heading", "Technical Skills:", types.BlockHeading},
		{"bold heading", "**Projects**", types.BlockHeading},
		{"all caps heading", "CERTIFICATIONS AND AWARDS", types.BlockHeading},
		{"all caps with digits is text", "AWS 2021", types.BlockText},
		{"long experience line", "Senior Developer at Acme Corp Jan 2020 - Present", types.BlockText},
		{"plain text", "Backend engineer focused on data platforms.", types.BlockText},
		{"dash without space is text", "-2020 was a good year", types.BlockText},
		{"labelled skill list is text", "Languages: Go, Python, TypeScript", types.BlockText},
		{"section label with items is text", "Technologies: Go, Docker", types.BlockText},
		{"pipe list is text", "AWS | DOCKER | REDIS", types.BlockText},
		{"overlong keyword line", "Experience with many different distributed systems and teams", types.BlockText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.line, tables))
		})
	}
}

func TestSegment_Sections(t *testing.T) {
	result := Segment(sampleResume, keywords.Default())

	require.Len(t, result.Sections, 4)

	assert.Equal(t, GeneralHeading, result.Sections[0].Heading)
	assert.Equal(t, []string{"Jane Doe", "jane@example.com | +1 555 010 0200"}, result.Sections[0].Lines)

	assert.Equal(t, "Summary", result.Sections[1].Heading)
	assert.Len(t, result.Sections[1].Lines, 1)

	assert.Equal(t, "EXPERIENCE", result.Sections[2].Heading)
	assert.Equal(t, []string{
		"Senior Developer at Acme Corp Jan 2020 - Present",
		"• Built a scheduler handling 10k req/s",
		"Reduced cloud spend by 30%",
	}, result.Sections[2].Lines)

	assert.Equal(t, "Education", result.Sections[3].Heading)
}

func TestSegment_Blocks(t *testing.T) {
	result := Segment(sampleResume, keywords.Default())

	require.Len(t, result.Blocks, 10)
	assert.Equal(t, "blk-1", result.Blocks[0].ID)
	assert.Equal(t, "Jane Doe", result.Blocks[0].Text)
	assert.Equal(t, types.BlockHeading, result.Blocks[2].Kind)
	assert.Equal(t, "blk-10", result.Blocks[9].ID)
}

func TestSegment_Idempotent(t *testing.T) {
	tables := keywords.Default()

	first := Segment(sampleResume, tables)
	second := Segment(sampleResume, tables)

	assert.Equal(t, first, second)
}

func TestSegment_NoHeadings(t *testing.T) {
	result := Segment("Built things\nShipped more things", nil)

	require.Len(t, result.Sections, 1)
	assert.Equal(t, GeneralHeading, result.Sections[0].Heading)
	assert.Len(t, result.Sections[0].Lines, 2)
}

func TestSegment_Empty(t *testing.T) {
	result := Segment(" \n\r\n\t", keywords.Default())

	assert.NotNil(t, result.Blocks)
	assert.NotNil(t, result.Sections)
	assert.Empty(t, result.Blocks)
	assert.Empty(t, result.Sections)
}

func TestHeadingText(t *testing.T) {
	assert.Equal(t, "Work Experience", HeadingText("## Work Experience:"))
	assert.Equal(t, "Projects", HeadingText("**Projects**"))
	assert.Equal(t, "Skills", HeadingText("Skills *"))
}
