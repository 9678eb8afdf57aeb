package sanitize

import (
	"testing"

	"github.com/jonathan/resume-drafter/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestSplitSentences(t *testing.T) {
	got := SplitSentences("First one. Second one!  Third? trailing")
	assert.Equal(t, []string{"First one.", "Second one!", "Third?", "trailing"}, got)
	assert.Nil(t, SplitSentences("   "))
}

func TestCleanSummary(t *testing.T) {
	s := New(types.Basics{FullName: "Jane Doe"}, nil)

	tests := []struct {
		name       string
		candidates []string
		want       string
	}{
		{
			name:       "keeps two sentences",
			candidates: []string{"Backend engineer. Loves Go. Enjoys climbing."},
			want:       "Backend engineer. Loves Go.",
		},
		{
			name:       "drops contact lines",
			candidates: []string{"jane@example.com\n+1 555 010 0200\nPlatform engineer focused on reliability."},
			want:       "Platform engineer focused on reliability.",
		},
		{
			name:       "falls back when primary mentions the candidate",
			candidates: []string{"Jane Doe is a platform engineer.", "Platform engineer with a data focus."},
			want:       "Platform engineer with a data focus.",
		},
		{
			name:       "nothing usable",
			candidates: []string{"", "   "},
			want:       "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.CleanSummary(tt.candidates...))
		})
	}
}
