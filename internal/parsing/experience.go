package parsing

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/resume-drafter/internal/keywords"
	"github.com/jonathan/resume-drafter/internal/sanitize"
	"github.com/jonathan/resume-drafter/internal/segment"
	"github.com/jonathan/resume-drafter/internal/types"
)

var (
	atShapeRe    = regexp.MustCompile(`(?i)^(.+?)\s+(?:at|@)\s+(.+)$`)
	headingSepRe = regexp.MustCompile(`\s*(?:\||·|•|\s[-–—]\s)\s*`)
)

const (
	maxHeadingWords = 12
	maxHeadingChars = 120
	maxTitleWords   = 8
)

// heading is the role/company/location decomposition of a record-start line
type heading struct {
	role     string
	company  string
	location string
}

// ParseExperience converts the lines of an experience section into records.
// A date range, an "X at Y" line or an "X | Y" line starts a record; bullets and
// action-verb lines become achievements of the open record, or start a record
// without a heading when none is open.
func ParseExperience(lines []string, tables *keywords.Tables) []types.ExperienceRecord {
	records, _ := parseExperience(lines, tables)
	return records
}

// parseExperience also returns the indexes of the lines that went into a record
func parseExperience(lines []string, tables *keywords.Tables) ([]types.ExperienceRecord, []int) {
	p := experienceParser{tables: tables, records: []types.ExperienceRecord{}}
	for i, line := range lines {
		if p.consume(line) {
			p.pending = append(p.pending, i)
		}
	}
	p.flush()

	for i := range p.records {
		p.records[i].Technologies = ExtractTechnologies(strings.Join(p.records[i].Achievements, " "), tables)
	}
	return p.records, p.used
}

type experienceParser struct {
	tables  *keywords.Tables
	records []types.ExperienceRecord
	cur     *types.ExperienceRecord
	// pending holds the lines of the open record until it is kept or dropped
	pending []int
	used    []int
}

func (p *experienceParser) flush() {
	if p.cur != nil && (p.cur.Role != "" || p.cur.Company != "" || len(p.cur.Achievements) > 0) {
		p.records = append(p.records, *p.cur)
		p.used = append(p.used, p.pending...)
	}
	p.cur = nil
	p.pending = nil
}

func (p *experienceParser) start() {
	p.flush()
	p.cur = &types.ExperienceRecord{Achievements: []string{}}
}

// consume feeds one line to the parser and reports whether the line was used
func (p *experienceParser) consume(line string) bool {
	line = strings.TrimSpace(line)
	isBullet := segment.HasBulletGlyph(line, p.tables)
	text := line
	if isBullet {
		text = p.tables.StripBullet(line)
	}
	if text == "" {
		return false
	}

	if isBullet || p.tables.StartsWithActionVerb(text) {
		if p.cur == nil {
			p.start()
		}
		p.addAchievement(text)
		return true
	}

	if sanitize.ContainsContactNoise(text) {
		return false
	}
	// degree lines belong to education even when they land in this section
	if p.tables.HasDegreeKeyword(text) && !p.tables.HasRoleKeyword(text) {
		return false
	}

	dr, hasRange := FindDateRange(text)
	rest := dr.Rest

	if hasRange && isDateOnly(rest) {
		if p.cur == nil || p.cur.StartDate != "" || p.cur.IsCurrent() {
			p.start()
		}
		p.applyDates(dr)
		return true
	}

	if h, ok := splitHeading(rest, p.tables); ok && isHeadingLength(rest) {
		p.openHeading(h, hasRange)
		if hasRange {
			p.applyDates(dr)
		}
		return true
	}

	if (hasRange && isHeadingLength(rest)) || (isShortTitle(rest) && (p.tables.HasCompanyKeyword(rest) || p.tables.HasRoleKeyword(rest))) {
		p.openHeading(p.singleFragment(rest), hasRange)
		if hasRange {
			p.applyDates(dr)
		}
		return true
	}

	return p.continuation(text)
}

// openHeading fills the open record when it has no achievements and the new
// fields do not conflict, otherwise it starts a new record
func (p *experienceParser) openHeading(h heading, hasRange bool) {
	c := p.cur
	canFill := c != nil && len(c.Achievements) == 0 &&
		(h.role == "" || c.Role == "") &&
		(h.company == "" || c.Company == "") &&
		!(hasRange && (c.StartDate != "" || c.IsCurrent()))
	if !canFill {
		p.start()
		c = p.cur
	}
	if c.Role == "" {
		c.Role = h.role
	}
	if c.Company == "" {
		c.Company = h.company
	}
	if c.Location == "" {
		c.Location = h.location
	}
}

func (p *experienceParser) applyDates(dr DateRange) {
	if p.cur.StartDate == "" {
		p.cur.StartDate = dr.Start
	}
	if p.cur.EndDate == "" {
		p.cur.EndDate = dr.End
	}
	if dr.Current {
		p.cur.Current = types.BoolPtr(true)
	}
}

func (p *experienceParser) addAchievement(text string) {
	p.cur.Achievements = appendUnique(p.cur.Achievements, text)
}

// continuation handles a plain line that is neither a heading nor a bullet:
// it completes a wrapped achievement or a missing heading field
func (p *experienceParser) continuation(text string) bool {
	c := p.cur
	if c == nil {
		return false
	}
	if n := len(c.Achievements); n > 0 {
		last := c.Achievements[n-1]
		if !endsSentence(last) && startsLower(text) {
			c.Achievements[n-1] = last + " " + text
			return true
		}
		if len(strings.Fields(text)) >= 4 {
			p.addAchievement(text)
			return true
		}
		return false
	}
	if !isShortTitle(text) {
		return false
	}
	switch {
	case c.Role != "" && c.Company == "":
		c.Company = text
	case c.Company != "" && c.Role == "":
		c.Role = text
	default:
		return false
	}
	return true
}

func (p *experienceParser) singleFragment(text string) heading {
	if p.tables.HasRoleKeyword(text) && !p.tables.HasCompanyKeyword(text) {
		return heading{role: text}
	}
	if p.tables.HasCompanyKeyword(text) {
		return heading{company: text}
	}
	return heading{role: text}
}

// splitHeading decomposes "Role at Company" and "Role | Company | Location" shapes,
// using company and role keywords to decide which fragment is which
func splitHeading(text string, tables *keywords.Tables) (heading, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return heading{}, false
	}

	if m := atShapeRe.FindStringSubmatch(text); m != nil {
		h := heading{role: strings.TrimSpace(m[1]), company: strings.TrimSpace(m[2])}
		if company, location, ok := strings.Cut(h.company, ","); ok {
			h.company = strings.TrimSpace(company)
			h.location = strings.TrimSpace(location)
		}
		if tables.HasCompanyKeyword(h.role) && !tables.HasCompanyKeyword(h.company) && tables.HasRoleKeyword(h.company) {
			h.role, h.company = h.company, h.role
		}
		return h, h.role != "" && h.company != ""
	}

	frags := splitFragments(headingSepRe.Split(text, -1))
	if len(frags) < 2 {
		parts := splitFragments(strings.Split(text, ","))
		if len(parts) != 2 || !(tables.HasCompanyKeyword(text) || tables.HasRoleKeyword(text)) {
			return heading{}, false
		}
		frags = parts
	}
	return assignFragments(frags, tables), true
}

func splitFragments(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, f := range raw {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

func assignFragments(frags []string, tables *keywords.Tables) heading {
	roleIdx, companyIdx := -1, -1
	for i, f := range frags {
		if tables.HasCompanyKeyword(f) && !tables.HasRoleKeyword(f) {
			companyIdx = i
			break
		}
	}
	for i, f := range frags {
		if i != companyIdx && tables.HasRoleKeyword(f) {
			roleIdx = i
			break
		}
	}
	firstOther := func(skip int) int {
		for i := range frags {
			if i != skip {
				return i
			}
		}
		return -1
	}
	switch {
	case roleIdx < 0 && companyIdx < 0:
		roleIdx, companyIdx = 0, 1
	case companyIdx < 0:
		companyIdx = firstOther(roleIdx)
	case roleIdx < 0:
		roleIdx = firstOther(companyIdx)
	}

	h := heading{role: frags[roleIdx], company: frags[companyIdx]}
	for i, f := range frags {
		if i == roleIdx || i == companyIdx {
			continue
		}
		if !strings.ContainsAny(f, "0123456789") && len(strings.Fields(f)) <= 4 {
			h.location = f
			break
		}
	}
	return h
}

func isHeadingLength(text string) bool {
	return len(strings.Fields(text)) <= maxHeadingWords &&
		utf8.RuneCountInString(text) <= maxHeadingChars &&
		!strings.HasSuffix(text, ".")
}

func isShortTitle(text string) bool {
	return text != "" && len(strings.Fields(text)) <= maxTitleWords && !endsSentence(text)
}

func startsLower(text string) bool {
	r, _ := utf8.DecodeRuneInString(text)
	return unicode.IsLower(r) || unicode.IsDigit(r)
}

func endsSentence(text string) bool {
	text = strings.TrimSpace(text)
	return strings.HasSuffix(text, ".") || strings.HasSuffix(text, "!") || strings.HasSuffix(text, "?")
}
