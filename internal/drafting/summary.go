package drafting

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jonathan/resume-drafter/internal/keywords"
	"github.com/jonathan/resume-drafter/internal/merge"
	"github.com/jonathan/resume-drafter/internal/types"
)

const (
	defaultHeadline = "Software Engineer"
	// maxStrengths is the number of matched keywords named in a built summary
	maxStrengths = 5
	// minJobDescriptionChars is the job-description length that asks for tailored wording
	minJobDescriptionChars = 50
	hoursPerYear           = 24 * 365
)

// BuildSummary writes a neutral one- or two-sentence summary from the headline,
// the years of experience and the strongest matched keywords. Instruction text
// is never echoed.
func BuildSummary(basics types.Basics, years int, strengths []string) string {
	role := strings.TrimSpace(basics.Headline)
	if role == "" {
		role = defaultHeadline
	}

	var b strings.Builder
	b.WriteString(role)
	if years >= 1 {
		fmt.Fprintf(&b, " with %d+ years", years)
	}
	b.WriteString(" building scalable, user-centric applications.")

	if len(strengths) > maxStrengths {
		strengths = strengths[:maxStrengths]
	}
	if len(strengths) > 0 {
		b.WriteString(" Specializes in " + strings.Join(strengths, ", ") + ".")
	}

	if basics.WorkAuth != nil {
		if status := strings.TrimSpace(basics.WorkAuth.Status); status != "" && status != "Not Applicable" {
			b.WriteString(" Work authorization: " + status + ".")
		}
	}
	return b.String()
}

// EstimateYears returns the whole years between the earliest parseable start
// date and now, or 0 when no record has one
func EstimateYears(records []types.ExperienceRecord, now time.Time) int {
	var earliest time.Time
	for _, r := range records {
		start, ok := startTime(r.StartDate, now)
		if !ok {
			continue
		}
		if earliest.IsZero() || start.Before(earliest) {
			earliest = start
		}
	}
	if earliest.IsZero() {
		return 0
	}
	years := math.Round(now.Sub(earliest).Hours() / hoursPerYear)
	return max(0, int(years))
}

// startTime turns a date spelling into the first day of its month, using
// merge.DateKey to read "2020-03", "03/2020", "Mar 2020" and bare years alike
func startTime(value string, now time.Time) (time.Time, bool) {
	key := merge.DateKey(value)
	if len(key) < 4 {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(key[:4])
	if err != nil || year < 1900 || year > now.Year() {
		return time.Time{}, false
	}
	month := 1
	if len(key) == 6 {
		if m, err := strconv.Atoi(key[4:]); err == nil && m >= 1 && m <= 12 {
			month = m
		}
	}
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC), true
}

// ShouldFavorRewrite reports whether generated wording should replace the
// candidate's own: the instructions ask for rewording, a substantial job
// description was pasted, or the candidate did not ask to preserve their text
func ShouldFavorRewrite(form types.FormState, tables *keywords.Tables) bool {
	if tables == nil {
		tables = keywords.Default()
	}
	cues := []string{form.Instructions.Prompt}
	cues = append(cues, form.Instructions.Goals...)
	cues = append(cues, form.Instructions.Constraints...)
	for _, cue := range cues {
		if tables.HasRewriteCue(cue) {
			return true
		}
	}
	if utf8.RuneCountInString(strings.TrimSpace(form.Attachments.JobDescriptionText)) > minJobDescriptionChars {
		return true
	}
	return !form.PreserveStrict
}

// displayKeywords maps matched job tokens to their technology spelling where one is known
func displayKeywords(tokens []string, tables *keywords.Tables) []string {
	out := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if name, ok := tables.Technology(token); ok {
			out = append(out, name)
			continue
		}
		out = append(out, token)
	}
	return out
}
