package parsing

import (
	"strings"

	"github.com/jonathan/resume-drafter/internal/keywords"
	"github.com/jonathan/resume-drafter/internal/sanitize"
	"github.com/jonathan/resume-drafter/internal/segment"
)

const (
	// MaxSummaryLength caps a parsed summary, in characters
	MaxSummaryLength    = 600
	maxSummarySentences = 3
	// lines this short without terminal punctuation read as a name or title
	minSummaryLineWords = 6
)

// ParseSummary returns the first one to three sentences of lines, at most 600 characters
func ParseSummary(lines []string, tables *keywords.Tables) string {
	parts := make([]string, 0, len(lines))
	for _, line := range lines {
		text := strings.TrimSpace(line)
		if segment.HasBulletGlyph(text, tables) {
			text = tables.StripBullet(text)
		}
		if text != "" {
			parts = append(parts, text)
		}
	}

	sentences := sanitize.SplitSentences(strings.Join(parts, " "))
	if len(sentences) == 0 {
		return ""
	}
	if len(sentences) > maxSummarySentences {
		sentences = sentences[:maxSummarySentences]
	}
	summary := strings.Join(sentences, " ")
	if len([]rune(summary)) > MaxSummaryLength {
		if cut := sanitize.Truncate(summary, MaxSummaryLength); cut != "" {
			return cut
		}
		return string([]rune(summary)[:MaxSummaryLength])
	}
	return summary
}

// summaryFallbackLines picks the prose lines that precede the first heading,
// leaving out contact details, name or title lines, bullets and dated headings.
// It also returns the indexes of the picked lines.
func summaryFallbackLines(lines []string, tables *keywords.Tables) ([]string, []int) {
	out := make([]string, 0, len(lines))
	var used []int
	for i, line := range lines {
		text := strings.TrimSpace(line)
		if text == "" || sanitize.ContainsContactNoise(text) {
			continue
		}
		if segment.HasBulletGlyph(text, tables) || tables.StartsWithActionVerb(text) {
			continue
		}
		if _, dated := FindDateRange(text); dated {
			continue
		}
		if len(strings.Fields(text)) < minSummaryLineWords && !endsSentence(text) {
			continue
		}
		out = append(out, text)
		used = append(used, i)
	}
	return out, used
}
