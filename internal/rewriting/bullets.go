package rewriting

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/resume-drafter/internal/ranking"
	"github.com/jonathan/resume-drafter/internal/sanitize"
)

const (
	// MaxNormalizedBullets caps the bullets NormalizeBullets returns
	MaxNormalizedBullets = 5
	maxBulletWords       = 18
	maxTechHints         = 3
	// shortLineChars is the length below which a line is rewritten
	shortLineChars       = 30
	maxRewriteTerms      = 5
)

var (
	// BulletVerbs lead bullets that lack an action verb
	BulletVerbs = []string{"Built", "Developed", "Implemented", "Architected", "Optimized", "Improved"}
	// RewriteVerbs lead fully rewritten lines
	RewriteVerbs = []string{"Delivered", "Drove", "Optimized", "Implemented", "Elevated"}

	fragmentSplitRe = regexp.MustCompile(`[•;–—]|\s-\s|\.\s+`)
	usingRe         = regexp.MustCompile(`(?i)\busing\b`)
)

// Vocabulary is the job-description token set bullets are steered toward
type Vocabulary interface {
	Has(token string) bool
	Tokens() []string
}

// CleanSentence collapses whitespace and removes bullet glyphs
func CleanSentence(line string) string {
	return sanitize.CollapseSpace(strings.ReplaceAll(line, "•", ""))
}

// ShouldRewrite reports whether a line is too short or still holds template text
func ShouldRewrite(line string) bool {
	if strings.TrimSpace(line) == "" {
		return false
	}
	if len(Placeholders(line)) > 0 {
		return true
	}
	return utf8.RuneCountInString(strings.TrimSpace(line)) < shortLineChars
}

// NormalizeBullets reduces each raw line to its fragment with the most job
// vocabulary, trims it to 18 words, leads it with an action verb and mentions up
// to three technologies it does not already name. Duplicates are dropped and at most five lines are kept.
func NormalizeBullets(raw []string, job Vocabulary, techHint []string, picker VerbPicker) []string {
	picker = orFirst(picker)
	out := []string{}
	seen := make(map[string]struct{})
	for _, line := range raw {
		if strings.TrimSpace(line) == "" {
			continue
		}
		cleaned := normalizeBullet(line, job, techHint, picker)
		if cleaned == "" {
			continue
		}
		key := strings.ToLower(cleaned)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, cleaned)
		if len(out) == MaxNormalizedBullets {
			break
		}
	}
	return out
}

func normalizeBullet(line string, job Vocabulary, techHint []string, picker VerbPicker) string {
	best := bestFragment(line, job)

	s := sanitize.CollapseSpace(sanitize.RemoveURLs(best))
	if s == "" {
		return ""
	}
	if words := strings.Fields(s); len(words) > maxBulletWords {
		s = strings.Join(words[:maxBulletWords], " ")
	}

	if !HasStrongVerb(s) {
		s = picker.Pick(BulletVerbs) + " " + lowerLead(s)
	}

	if tech := techHints(techHint, s); len(tech) > 0 && !usingRe.MatchString(s) {
		s = s + " using " + strings.Join(tech, ", ")
	}
	return s
}

// bestFragment returns the first fragment of line with the most job tokens
func bestFragment(line string, job Vocabulary) string {
	parts := splitNonEmpty(fragmentSplitRe.Split(line, -1))
	if len(parts) == 0 {
		return strings.TrimSpace(line)
	}

	best, bestScore := parts[0], -1
	for _, part := range parts {
		score := 0
		if job != nil {
			for _, token := range ranking.Tokenize(part) {
				if job.Has(token) {
					score++
				}
			}
		}
		if score > bestScore {
			best, bestScore = part, score
		}
	}
	return best
}

// RewriteLine replaces a weak line with one built from its own terms, the job
// vocabulary and the technology hints
func RewriteLine(line string, job Vocabulary, techHint []string, picker VerbPicker) string {
	picker = orFirst(picker)

	var terms []string
	for _, token := range ranking.Tokenize(line) {
		if len(token) > 2 {
			terms = append(terms, token)
		}
	}
	if job != nil {
		terms = append(terms, job.Tokens()...)
	}
	terms = append(terms, techHints(techHint, "")...)

	unique := make([]string, 0, maxRewriteTerms)
	seen := make(map[string]struct{})
	for _, term := range terms {
		key := strings.ToLower(term)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, term)
		if len(unique) == maxRewriteTerms {
			break
		}
	}
	if len(unique) == 0 {
		return CleanSentence(line)
	}
	return picker.Pick(RewriteVerbs) + " outcomes around " + strings.Join(unique, ", ")
}

// techHints returns up to maxTechHints technologies, skipping those the text
// already names
func techHints(techs []string, text string) []string {
	named := make(map[string]struct{})
	for _, token := range ranking.Tokenize(text) {
		named[token] = struct{}{}
	}
	out := make([]string, 0, maxTechHints)
	for _, tech := range techs {
		tech = strings.TrimSpace(tech)
		if tech == "" {
			continue
		}
		if _, ok := named[strings.ToLower(tech)]; ok {
			continue
		}
		out = append(out, tech)
		if len(out) == maxTechHints {
			break
		}
	}
	return out
}

func splitNonEmpty(parts []string) []string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// leadWords are lowercased when a verb is put in front of them
var leadWords = map[string]bool{"the": true, "a": true, "an": true, "our": true, "my": true, "new": true, "various": true, "multiple": true}

// lowerLead lowercases a leading article or determiner
func lowerLead(s string) string {
	first, rest, _ := strings.Cut(s, " ")
	if !leadWords[strings.ToLower(first)] {
		return s
	}
	r, size := utf8.DecodeRuneInString(first)
	lowered := string(unicode.ToLower(r)) + first[size:]
	if rest == "" {
		return lowered
	}
	return lowered + " " + rest
}
