// Package sanitize removes contact details, boilerplate and oversized fragments from narrative text.
package sanitize

import (
	"regexp"
	"strings"
)

var (
	emailRe = regexp.MustCompile(`[\w.+-]+@[\w-]+(?:\.[\w-]+)+`)
	// bare domains only count for TLDs that rarely appear in technology names
	urlRe     = regexp.MustCompile(`(?i)(?:https?://|www\.)\S+|\b[\w-]+(?:\.[\w-]+)*\.(?:com|org|dev|ai|uk)\b(?:/\S*)?`)
	phoneRe   = regexp.MustCompile(`\+?\(?\d(?:(?:[ .\-]|\) ?|\()?\d){6,}`)
	profileRe = regexp.MustCompile(`(?i)\blinkedin\b`)
	yearSpan  = regexp.MustCompile(`^(?:19|20)\d{2}\s*[-–]\s*(?:19|20)\d{2}$`)
	dateToken = regexp.MustCompile(`^\d{1,4}[./-]\d{1,2}[./-]\d{2,4}$`)
	thousands = regexp.MustCompile(`^\d{1,3}(?:[ .]\d{3})+$`)
	spaceRe   = regexp.MustCompile(`\s+`)
)

// ContainsEmail reports whether text contains an email-shaped token
func ContainsEmail(text string) bool {
	return emailRe.MatchString(text)
}

// ContainsURL reports whether text contains a URL or bare web domain
func ContainsURL(text string) bool {
	return urlRe.MatchString(text)
}

// ContainsPhone reports whether text contains a phone-like run of at least 7 digits.
// Year spans ("2019-2021"), dates ("01.02.2020") and thousands-grouped
// figures ("10 000 000") are not phone numbers.
func ContainsPhone(text string) bool {
	for _, match := range phoneRe.FindAllString(text, -1) {
		if isPhoneShaped(match) {
			return true
		}
	}
	return false
}

func isPhoneShaped(match string) bool {
	fields := strings.Fields(match)
	kept := fields[:0]
	for _, f := range fields {
		if !dateToken.MatchString(f) {
			kept = append(kept, f)
		}
	}
	rest := strings.Join(kept, " ")
	if yearSpan.MatchString(rest) || thousands.MatchString(rest) {
		return false
	}
	digits := 0
	for _, r := range rest {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits >= 7
}

// ContainsContactNoise reports whether text carries an email, URL, phone number or profile reference
func ContainsContactNoise(text string) bool {
	if text == "" {
		return false
	}
	return ContainsEmail(text) || ContainsURL(text) || ContainsPhone(text) || profileRe.MatchString(text)
}

// FindURL returns the first URL in text, or "" if there is none
func FindURL(text string) string {
	return strings.TrimRight(urlRe.FindString(text), ".,;)")
}

// RemoveURLs deletes every URL from text and collapses the remaining whitespace
func RemoveURLs(text string) string {
	return CollapseSpace(urlRe.ReplaceAllString(text, " "))
}

// CollapseSpace replaces runs of whitespace with a single space and trims the ends
func CollapseSpace(text string) string {
	return strings.TrimSpace(spaceRe.ReplaceAllString(text, " "))
}
