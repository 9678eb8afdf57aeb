package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-drafter/internal/keywords"
)

var techTokenRe = regexp.MustCompile(`[^A-Za-z0-9\s]+`)

// ExtractTechnologies returns the display names of technology keywords found in text,
// in order of first appearance and without duplicates. Tokens keep their case so
// cased names such as "Go" match only when capitalized.
func ExtractTechnologies(text string, tables *keywords.Tables) []string {
	out := []string{}
	if text == "" {
		return out
	}
	seen := make(map[string]struct{})
	tokens := strings.Fields(techTokenRe.ReplaceAllString(text, " "))
	for _, token := range tokens {
		name, ok := tables.Technology(token)
		if !ok {
			continue
		}
		key := strings.ToLower(name)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, name)
	}
	return out
}
