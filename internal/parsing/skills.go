package parsing

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-drafter/internal/keywords"
	"github.com/jonathan/resume-drafter/internal/sanitize"
)

var (
	skillSplitRe = regexp.MustCompile(`\s*(?:,|\||;|•|·|▪|●|\s[-–—]\s)\s*`)
	labelRe      = regexp.MustCompile(`^[\p{L}][\p{L}\p{N} &/+-]{0,30}:\s*`)
)

const maxSkillWords = 4

// ParseSkills flattens skills-section lines into a list of skill names.
// Lines are split on comma, pipe, bullet and semicolon delimiters and
// "Label:" prefixes such as "Languages:" are dropped.
func ParseSkills(lines []string, tables *keywords.Tables) []string {
	var raw []string
	for _, line := range lines {
		text := tables.StripBullet(strings.TrimSpace(line))
		text = labelRe.ReplaceAllString(text, "")
		for _, item := range skillSplitRe.Split(text, -1) {
			item = strings.Trim(strings.TrimSpace(item), ".")
			if item == "" || utf8.RuneCountInString(item) > sanitize.SkillLimit {
				continue
			}
			if len(strings.Fields(item)) > maxSkillWords || sanitize.ContainsContactNoise(item) {
				continue
			}
			raw = append(raw, item)
		}
	}
	return NormalizeSkills(raw)
}
