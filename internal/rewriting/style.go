// Package rewriting provides heuristic rewriting of bullet points toward a job description.
package rewriting

import (
	"regexp"
	"strings"
)

// Common strong action verbs for résumé bullets (heuristic check)
var strongVerbs = map[string]bool{
	"achieved": true, "architected": true, "built": true, "created": true,
	"delivered": true, "designed": true, "developed": true, "engineered": true,
	"implemented": true, "improved": true, "increased": true, "launched": true,
	"led": true, "optimized": true, "reduced": true, "scaled": true,
	"shipped": true, "transformed": true, "drove": true, "ran": true,
}

var digitRe = regexp.MustCompile(`\d`)

// HasStrongVerb reports whether text starts with a strong action verb
func HasStrongVerb(text string) bool {
	words := strings.Fields(strings.ToLower(text))
	if len(words) == 0 {
		return false
	}

	firstWord := strings.TrimRight(words[0], ".,!?;:")
	if strongVerbs[firstWord] {
		return true
	}

	// verbs ending in -ed are often action verbs (past tense)
	return strings.HasSuffix(firstWord, "ed") && len(firstWord) > 3
}

// IsQuantified reports whether text contains numbers or metrics
func IsQuantified(text string) bool {
	return digitRe.MatchString(text) || strings.Contains(text, "%")
}
