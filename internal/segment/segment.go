// Package segment splits raw résumé text into classified blocks and heading-delimited sections.
package segment

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/resume-drafter/internal/keywords"
	"github.com/jonathan/resume-drafter/internal/types"
)

// MaxHeadingLength is the longest line, after markup trimming, that can be a heading
const MaxHeadingLength = 48

// GeneralHeading names the implicit section holding lines that precede the first heading
const GeneralHeading = keywords.SectionGeneral

// Result is the output of segmenting a document
type Result struct {
	Blocks   []types.RawBlock `json:"blocks"`
	Sections []types.Section  `json:"sections"`
}

// Segment classifies every non-blank line of text and groups lines under headings.
// The result depends only on text and tables, so segmenting the same input twice
// yields identical blocks and sections.
func Segment(text string, tables *keywords.Tables) Result {
	if tables == nil {
		tables = keywords.Default()
	}

	result := Result{
		Blocks:   []types.RawBlock{},
		Sections: []types.Section{},
	}
	current := types.Section{Heading: GeneralHeading, Lines: []string{}}

	flush := func() {
		if current.Heading == GeneralHeading && len(current.Lines) == 0 {
			return
		}
		result.Sections = append(result.Sections, current)
	}

	for _, line := range SplitLines(text) {
		kind := Classify(line, tables)
		result.Blocks = append(result.Blocks, types.RawBlock{
			ID:   fmt.Sprintf("blk-%d", len(result.Blocks)+1),
			Text: line,
			Kind: kind,
		})

		if kind == types.BlockHeading {
			flush()
			current = types.Section{Heading: HeadingText(line), Lines: []string{}}
			continue
		}
		current.Lines = append(current.Lines, line)
	}
	flush()

	return result
}

// SplitLines returns the trimmed non-blank lines of text
func SplitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// Classify returns the structural role of a single line
func Classify(line string, tables *keywords.Tables) types.BlockKind {
	line = strings.TrimSpace(line)
	if line == "" {
		return types.BlockText
	}
	if HasBulletGlyph(line, tables) {
		return types.BlockBullet
	}
	if IsHeading(line, tables) {
		return types.BlockHeading
	}
	if tables.StartsWithActionVerb(strings.TrimLeft(line, "# ")) {
		return types.BlockBullet
	}
	return types.BlockText
}

// HasBulletGlyph reports whether line opens with a bullet marker.
// ASCII markers such as "-" and "*" count only when followed by a space,
// so "**Experience**" and "-2020" are not bullets.
func HasBulletGlyph(line string, tables *keywords.Tables) bool {
	glyph, ok := tables.BulletGlyph(line)
	if !ok {
		return false
	}
	rest := strings.TrimPrefix(strings.TrimSpace(line), glyph)
	if len(glyph) == 1 && glyph[0] < utf8.RuneSelf {
		return rest == "" || rest[0] == ' ' || rest[0] == '\t'
	}
	return true
}

// HeadingText strips markdown and trailing punctuation from a heading line
func HeadingText(line string) string {
	out := strings.TrimSpace(line)
	out = strings.TrimLeft(out, "#")
	out = strings.Trim(out, " *_")
	out = strings.TrimRight(out, ":*_ ")
	return strings.TrimSpace(out)
}

// IsHeading reports whether line is a short section title
func IsHeading(line string, tables *keywords.Tables) bool {
	candidate := HeadingText(line)
	if candidate == "" || utf8.RuneCountInString(candidate) > MaxHeadingLength {
		return false
	}
	// "Languages: Go, Python" and "AWS | Docker" are list lines, not titles
	if strings.ContainsAny(candidate, ":,|") {
		return false
	}
	if _, ok := tables.SectionType(candidate); ok {
		return true
	}
	return isMostlyUpper(candidate)
}

// isMostlyUpper reports whether s looks like an all-caps title: a few words,
// no digits or contact markers, and at least 80% uppercase letters
func isMostlyUpper(s string) bool {
	if strings.ContainsAny(s, "@/") || len(strings.Fields(s)) > 5 {
		return false
	}
	letters, upper := 0, 0
	for _, r := range s {
		switch {
		case unicode.IsDigit(r):
			return false
		case unicode.IsLetter(r):
			letters++
			if unicode.IsUpper(r) {
				upper++
			}
		}
	}
	if letters < 3 {
		return false
	}
	return float64(upper)/float64(letters) >= 0.8
}
