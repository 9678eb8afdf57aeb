// Package merge reconciles candidate record lists for the same entity kind into
// one deduplicated list, preferring the richer value field by field.
package merge

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jonathan/resume-drafter/internal/keywords"
	"github.com/jonathan/resume-drafter/internal/sanitize"
)

var (
	nonAlnumRe  = regexp.MustCompile(`[^a-z0-9]`)
	isoDateRe   = regexp.MustCompile(`((?:19|20)\d{2})[-/.](0?[1-9]|1[0-2])\b`)
	flipDateRe  = regexp.MustCompile(`\b(0?[1-9]|1[0-2])[-/.]((?:19|20)\d{2})`)
	yearRe      = regexp.MustCompile(`(?:19|20)\d{2}`)
	dateWordRe  = regexp.MustCompile(`[a-z]+`)
	nonDigitRe  = regexp.MustCompile(`[^0-9]`)
	monthTables = keywords.Default()
)

// NormalizeKey collapses whitespace and lowercases value
func NormalizeKey(value string) string {
	return strings.ToLower(sanitize.CollapseSpace(value))
}

// NormalizeEntityKey folds value into a punctuation and accent insensitive key.
// Example: "Café & Co., Inc." -> "cafeandcoinc"
func NormalizeEntityKey(value string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, value)
	if err != nil {
		folded = value
	}
	folded = strings.ToLower(folded)
	folded = strings.ReplaceAll(folded, "&", " and ")
	return nonAlnumRe.ReplaceAllString(folded, "")
}

// DateKey reduces a free-form date to a comparable key: "YYYYMM" when a month is
// known, "YYYY" for a bare year, otherwise up to six leading digits.
func DateKey(value string) string {
	lower := strings.ToLower(strings.TrimSpace(value))
	if lower == "" {
		return ""
	}
	if m := isoDateRe.FindStringSubmatch(lower); m != nil {
		return m[1] + padMonth(m[2])
	}
	if m := flipDateRe.FindStringSubmatch(lower); m != nil {
		return m[2] + padMonth(m[1])
	}

	year := yearRe.FindString(lower)
	month := 0
	for _, word := range dateWordRe.FindAllString(lower, -1) {
		if n, ok := monthTables.Month(word); ok {
			month = n
			break
		}
	}
	switch {
	case year != "" && month > 0:
		return fmt.Sprintf("%s%02d", year, month)
	case year != "":
		return year
	}

	digits := nonDigitRe.ReplaceAllString(lower, "")
	if len(digits) > 6 {
		digits = digits[:6]
	}
	return digits
}

func padMonth(m string) string {
	if len(m) == 1 {
		return "0" + m
	}
	return m
}

// canonicalKey joins the entity keys of the non-empty parts with "|"
func canonicalKey(parts ...string) string {
	keys := make([]string, 0, len(parts))
	for _, part := range parts {
		if key := NormalizeEntityKey(part); key != "" {
			keys = append(keys, key)
		}
	}
	return strings.Join(keys, "|")
}

// contentHash returns a short hash of the normalized text, or "" for empty text
func contentHash(text string) string {
	normalized := NormalizeKey(text)
	if normalized == "" {
		return ""
	}
	hash := sha256.Sum256([]byte(normalized))
	return "sha:" + hex.EncodeToString(hash[:8])
}
