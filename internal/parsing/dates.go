package parsing

import (
	"regexp"
	"strings"
	"unicode"
)

const (
	monthPattern = `(?:jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|june?|july?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)\.?`
	datePattern  = `(?:` + monthPattern + `,?\s+(?:19|20)\d{2}` +
		`|(?:0?[1-9]|1[0-2])[/.](?:19|20)\d{2}` +
		`|(?:19|20)\d{2}[/.-](?:0[1-9]|1[0-2])\b` +
		`|(?:19|20)\d{2})`
	ongoingPattern = `present|current|now|today|ongoing`
)

var (
	dateRangeRe  = regexp.MustCompile(`(?i)\b(` + datePattern + `)\s*(?:-|–|—|to|until|till)\s*(` + datePattern + `|` + ongoingPattern + `)\b`)
	singleDateRe = regexp.MustCompile(`(?i)\b(` + datePattern + `)\b`)
	ongoingRe    = regexp.MustCompile(`(?i)^(?:` + ongoingPattern + `)$`)
)

// DateRange is a start/end span found in a line
type DateRange struct {
	Start   string
	End     string
	Current bool
	// Rest is the line with the span removed
	Rest string
}

// FindDateRange locates a "<date> - <date|present>" span in line.
// An ongoing end ("Present", "Current") sets Current and leaves End empty.
func FindDateRange(line string) (DateRange, bool) {
	loc := dateRangeRe.FindStringSubmatchIndex(line)
	if loc == nil {
		return DateRange{Rest: line}, false
	}

	start := strings.TrimSpace(line[loc[2]:loc[3]])
	end := strings.TrimSpace(line[loc[4]:loc[5]])
	dr := DateRange{
		Start: start,
		Rest:  cleanRemainder(line[:loc[0]] + " " + line[loc[1]:]),
	}
	if ongoingRe.MatchString(end) {
		dr.Current = true
	} else {
		dr.End = end
	}
	return dr, true
}

// FindDate locates a single date such as "May 2019" or "2016" in line
func FindDate(line string) (string, string, bool) {
	loc := singleDateRe.FindStringSubmatchIndex(line)
	if loc == nil {
		return "", line, false
	}
	date := strings.TrimSpace(line[loc[2]:loc[3]])
	return date, cleanRemainder(line[:loc[0]] + " " + line[loc[1]:]), true
}

// cleanRemainder drops separators and empty brackets left behind after removing a date span
func cleanRemainder(s string) string {
	s = strings.NewReplacer("()", " ", "[]", " ", "( )", " ", "[ ]", " ").Replace(s)
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || strings.ContainsRune(",|-–—·:;(", r)
	})
}

// isDateOnly reports whether nothing but punctuation is left after removing dates
func isDateOnly(rest string) bool {
	for _, r := range rest {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
