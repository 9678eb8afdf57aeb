package sanitize

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/jonathan/resume-drafter/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"email is rejected", "Contact me at jane@example.com for details", ""},
		{"clean line is unchanged", "Built a scheduler handling 10k req/s", "Built a scheduler handling 10k req/s"},
		{"url is rejected", "See https://example.com/portfolio for more", ""},
		{"bare domain is rejected", "Portfolio at janedoe.dev", ""},
		{"phone is rejected", "Call +1 (555) 010-0200 anytime", ""},
		{"linkedin mention is rejected", "Find me on LinkedIn", ""},
		{"noise word is rejected", "Summary", ""},
		{"city is rejected", "london", ""},
		{"whitespace is collapsed", "  Shipped   the   thing  ", "Shipped the thing"},
		{"bullet glyph is stripped", "• Shipped the thing", "Shipped the thing"},
		{"year span is not a phone", "Led the 2019-2021 platform migration", "Led the 2019-2021 platform migration"},
		{"grouped figure is not a phone", "Processed 10 000 000 events per day with Kafka", "Processed 10 000 000 events per day with Kafka"},
		{"dotted figure is not a phone", "Served 2.500.000 monthly users", "Served 2.500.000 monthly users"},
		{"date is not a phone", "Shipped release on 01.02.2020 to all regions", "Shipped release on 01.02.2020 to all regions"},
		{"date followed by a count is not a phone", "Launched on 2020-01-15 3 new regions", "Launched on 2020-01-15 3 new regions"},
		{"dotted phone is rejected", "Reach me on 555.010.0200", ""},
		{"technology names are not urls", "Built APIs with Node.js and ASP.NET", "Built APIs with Node.js and ASP.NET"},
		{"empty", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.in))
		})
	}
}

func TestNarrative_Truncation(t *testing.T) {
	s := New(types.Basics{}, nil)

	long := strings.Repeat("delivered reliable systems ", 20)
	got := s.Narrative(long, BulletLimit)

	assert.True(t, strings.HasSuffix(got, Ellipsis))
	assert.LessOrEqual(t, utf8.RuneCountInString(got), BulletLimit)
	assert.False(t, strings.Contains(got, "  "))
	// cut lands on a whole word
	trimmed := strings.TrimSuffix(got, Ellipsis)
	lastWord := trimmed[strings.LastIndex(trimmed, " ")+1:]
	assert.Contains(t, []string{"delivered", "reliable", "systems"}, lastWord)
}

func TestTruncate_RejectsWhenTooShort(t *testing.T) {
	// a single unbroken word longer than the limit leaves nothing viable
	assert.Equal(t, "", Truncate(strings.Repeat("x", 300), 50))
	assert.Equal(t, "short", Truncate("short", 50))
}

func TestTruncate_MinimumViableLength(t *testing.T) {
	tail := " " + strings.Repeat("z", 20)

	exact := "abcde" + strings.Repeat(" abcd", 7)
	require.Equal(t, MinViableLength, utf8.RuneCountInString(exact))
	assert.Equal(t, "", Truncate(exact+tail, 45), "a cut of exactly the minimum is rejected")

	longer := "abcdef" + strings.Repeat(" abcd", 7)
	assert.Equal(t, longer+Ellipsis, Truncate(longer+tail, 46))
}

func TestSanitizer_PersonalTokens(t *testing.T) {
	s := New(types.Basics{
		FullName: "Jane Doe",
		Email:    "jane.doe@example.com",
		Phone:    "+44 7700 900123",
		GitHub:   "https://github.com/janedoe-dev",
	}, nil)

	assert.True(t, s.ContainsToken("Jane Doe led the team"))
	assert.True(t, s.ContainsToken("reach jane.doe for access"))
	assert.True(t, s.ContainsToken("repo owned by janedoe-dev"))
	assert.False(t, s.ContainsToken("Reduced doe-eyed optimism"), "lowercase name parts are ordinary words")
	assert.False(t, s.ContainsToken("Built a scheduler"))

	assert.Equal(t, "led the platform rewrite", s.StripTokens("Jane led the platform rewrite"))
	assert.Equal(t, "Built a scheduler for the team", s.Narrative("Built a scheduler for the team Doe", BulletLimit))
}

func TestSanitizer_NoTokens(t *testing.T) {
	s := New(types.Basics{}, nil)

	assert.False(t, s.HasTokens())
	assert.False(t, s.ContainsToken("Jane Doe"))
	assert.Equal(t, "Jane Doe", s.StripTokens("Jane Doe"))
}

func TestHeading(t *testing.T) {
	assert.Equal(t, "Senior Developer", Heading("  Senior   Developer "))
	assert.Equal(t, "", Heading("• Built a thing"))
	assert.Equal(t, "", Heading("line one\nline two"))
	assert.Equal(t, "", Heading("jane@example.com"))
	assert.Equal(t, "", Heading(strings.Repeat("a", 91)))
}

func TestFilterSkills(t *testing.T) {
	s := New(types.Basics{FullName: "Jane Doe"}, nil)

	got := s.FilterSkills([]string{"Go", "go", "Kubernetes", "jane@example.com", "Summary", "Jane", "", strings.Repeat("k", 41)})
	assert.Equal(t, []string{"Go", "Kubernetes"}, got)
}

func TestContainsContactNoise(t *testing.T) {
	assert.True(t, ContainsContactNoise("mail jane@example.com"))
	assert.True(t, ContainsContactNoise("www.example.org"))
	assert.True(t, ContainsContactNoise("555 010 0200"))
	assert.False(t, ContainsContactNoise("Grew revenue 1,000,000 dollars"))
	assert.False(t, ContainsContactNoise(""))
}

func TestFindURL(t *testing.T) {
	assert.Equal(t, "https://github.com/jane/tool", FindURL("Tool (https://github.com/jane/tool)"))
	assert.Equal(t, "", FindURL("No link here"))
	assert.Equal(t, "Tool", RemoveURLs("Tool https://github.com/jane/tool"))
}
