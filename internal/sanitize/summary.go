package sanitize

import (
	"regexp"
	"strings"
)

var (
	phoneOnlyRe = regexp.MustCompile(`^\+?\d[\d\s().-]{6,}$`)
	sentenceEnd = regexp.MustCompile(`[.!?]+\s+`)
)

// SplitSentences splits text after terminal punctuation followed by whitespace
func SplitSentences(text string) []string {
	text = CollapseSpace(text)
	if text == "" {
		return nil
	}
	var sentences []string
	start := 0
	for _, loc := range sentenceEnd.FindAllStringIndex(text, -1) {
		sentence := strings.TrimSpace(text[start:loc[1]])
		if sentence != "" {
			sentences = append(sentences, sentence)
		}
		start = loc[1]
	}
	if rest := strings.TrimSpace(text[start:]); rest != "" {
		sentences = append(sentences, rest)
	}
	return sentences
}

// CleanSummary returns the first usable summary among candidates.
// Contact lines are dropped, at most two sentences are kept, and a candidate
// that still mentions personal tokens or contact details is skipped.
func (s *Sanitizer) CleanSummary(candidates ...string) string {
	for _, candidate := range candidates {
		raw := strings.TrimSpace(candidate)
		if raw == "" {
			continue
		}

		var kept []string
		for _, line := range strings.Split(raw, "\n") {
			line = strings.TrimSpace(line)
			if line == "" || ContainsEmail(line) || phoneOnlyRe.MatchString(line) {
				continue
			}
			kept = append(kept, line)
		}
		text := CollapseSpace(strings.Join(kept, " "))
		if text == "" {
			continue
		}

		sentences := SplitSentences(text)
		if len(sentences) > 2 {
			sentences = sentences[:2]
		}
		summary := strings.Join(sentences, " ")
		if summary == "" || s.ContainsToken(summary) || ContainsContactNoise(summary) {
			continue
		}
		if cleaned := s.Narrative(summary, SummaryLimit); cleaned != "" {
			return cleaned
		}
	}
	return ""
}
