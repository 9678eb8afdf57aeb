package rewriting

import "strings"

// placeholderPhrases mark template text that was never filled in
var placeholderPhrases = []string{"lorem ipsum", "dummy text", "add here", "tbd", "xyz"}

// findPhrases returns the phrases that occur in text (case-insensitive), each once,
// or nil when none do
func findPhrases(text string, phrases []string) []string {
	if len(phrases) == 0 {
		return nil
	}

	normalizedText := " " + strings.Join(strings.Fields(strings.ToLower(text)), " ") + " "

	var found []string
	seen := make(map[string]bool)
	for _, phrase := range phrases {
		normalizedPhrase := strings.ToLower(strings.TrimSpace(phrase))
		if normalizedPhrase == "" || seen[normalizedPhrase] {
			continue
		}
		if strings.Contains(normalizedText, " "+normalizedPhrase+" ") {
			found = append(found, phrase)
			seen[normalizedPhrase] = true
		}
	}

	if len(found) == 0 {
		return nil
	}
	return found
}

// Placeholders returns the template phrases left in text
func Placeholders(text string) []string {
	return findPhrases(stripPunct(text), placeholderPhrases)
}

func stripPunct(text string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(".,;:!?()[]\"'", r) {
			return ' '
		}
		return r
	}, text)
}
