// Package keywords holds the fixed word lists that drive résumé classification and parsing.
package keywords

import (
	"maps"
	"regexp"
	"slices"
	"strings"
)

// Tables holds every word list used by the segmenter, parsers, scorer and sanitizer.
// A Tables value is read-only once built and may be shared across goroutines.
type Tables struct {
	Sections          map[string][]string `yaml:"sections"`
	ActionVerbs       []string            `yaml:"action_verbs"`
	BulletGlyphs      []string            `yaml:"bullet_glyphs"`
	CompanyKeywords   []string            `yaml:"company_keywords"`
	RoleKeywords      []string            `yaml:"role_keywords"`
	DegreeKeywords    []string            `yaml:"degree_keywords"`
	SchoolKeywords    []string            `yaml:"school_keywords"`
	Technologies      map[string]string   `yaml:"technologies"`
	// CasedTechnologies match only with the exact spelling, for names that are
	// also common words ("Go")
	CasedTechnologies map[string]string   `yaml:"cased_technologies"`
	NoiseWords        []string            `yaml:"noise_words"`
	Stopwords         []string            `yaml:"stopwords"`
	RewriteCues       []string            `yaml:"rewrite_cues"`
	Months            map[string]int      `yaml:"months"`

	sectionIndex map[string]string
	verbs        map[string]struct{}
	companies    map[string]struct{}
	roles        map[string]struct{}
	degrees      map[string]struct{}
	schools      map[string]struct{}
	noise        map[string]struct{}
	stopwords    map[string]struct{}
}

var nonWordRe = regexp.MustCompile(`[^\p{L}\p{N}.\-]+`)

// Default returns a fresh copy of the built-in tables
func Default() *Tables {
	t := &Tables{
		Sections:          make(map[string][]string, len(defaultSections)),
		ActionVerbs:       slices.Clone(defaultActionVerbs),
		BulletGlyphs:      slices.Clone(defaultBulletGlyphs),
		CompanyKeywords:   slices.Clone(defaultCompanyKeywords),
		RoleKeywords:      slices.Clone(defaultRoleKeywords),
		DegreeKeywords:    slices.Clone(defaultDegreeKeywords),
		SchoolKeywords:    slices.Clone(defaultSchoolKeywords),
		Technologies:      maps.Clone(defaultTechnologies),
		CasedTechnologies: maps.Clone(defaultCasedTechnologies),
		NoiseWords:        slices.Clone(defaultNoiseWords),
		Stopwords:         slices.Clone(defaultStopwords),
		RewriteCues:       slices.Clone(defaultRewriteCues),
		Months:            maps.Clone(defaultMonths),
	}
	for k, v := range defaultSections {
		t.Sections[k] = slices.Clone(v)
	}
	t.index()
	return t
}

// Extend appends every list in other to t and rebuilds the lookup indexes.
// Map entries in other override entries with the same key.
func (t *Tables) Extend(other *Tables) {
	if other == nil {
		return
	}
	for k, v := range other.Sections {
		k = normalizePhrase(k)
		t.Sections[k] = append(t.Sections[k], v...)
	}
	t.ActionVerbs = append(t.ActionVerbs, other.ActionVerbs...)
	t.BulletGlyphs = append(t.BulletGlyphs, other.BulletGlyphs...)
	t.CompanyKeywords = append(t.CompanyKeywords, other.CompanyKeywords...)
	t.RoleKeywords = append(t.RoleKeywords, other.RoleKeywords...)
	t.DegreeKeywords = append(t.DegreeKeywords, other.DegreeKeywords...)
	t.SchoolKeywords = append(t.SchoolKeywords, other.SchoolKeywords...)
	t.NoiseWords = append(t.NoiseWords, other.NoiseWords...)
	t.Stopwords = append(t.Stopwords, other.Stopwords...)
	t.RewriteCues = append(t.RewriteCues, other.RewriteCues...)
	for k, v := range other.Technologies {
		t.Technologies[strings.ToLower(strings.TrimSpace(k))] = v
	}
	for k, v := range other.CasedTechnologies {
		t.CasedTechnologies[strings.TrimSpace(k)] = v
	}
	for k, v := range other.Months {
		t.Months[strings.ToLower(strings.TrimSpace(k))] = v
	}
	t.index()
}

func (t *Tables) index() {
	t.sectionIndex = make(map[string]string)
	for _, kind := range sectionOrder {
		for _, kw := range t.Sections[kind] {
			key := normalizePhrase(kw)
			if _, exists := t.sectionIndex[key]; !exists && key != "" {
				t.sectionIndex[key] = kind
			}
		}
	}
	// custom section types appended through Extend
	for kind, kws := range t.Sections {
		for _, kw := range kws {
			key := normalizePhrase(kw)
			if _, exists := t.sectionIndex[key]; !exists && key != "" {
				t.sectionIndex[key] = kind
			}
		}
	}
	t.verbs = toSet(t.ActionVerbs)
	t.companies = toSet(t.CompanyKeywords)
	t.roles = toSet(t.RoleKeywords)
	t.degrees = toSet(t.DegreeKeywords)
	t.schools = toSet(t.SchoolKeywords)
	t.noise = make(map[string]struct{}, len(t.NoiseWords))
	for _, w := range t.NoiseWords {
		if key := normalizePhrase(w); key != "" {
			t.noise[key] = struct{}{}
		}
	}
	t.stopwords = toSet(t.Stopwords)
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v != "" {
			set[v] = struct{}{}
		}
	}
	return set
}

// normalizePhrase lowercases s and collapses punctuation and whitespace to single spaces
func normalizePhrase(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "&", " and ")
	s = nonWordRe.ReplaceAllString(s, " ")
	fields := strings.Fields(s)
	out := fields[:0]
	for _, f := range fields {
		if f = strings.Trim(f, ".-"); f != "" {
			out = append(out, f)
		}
	}
	return strings.Join(out, " ")
}

// words splits s into lowercase words with surrounding punctuation removed
func words(s string) []string {
	fields := strings.Fields(strings.ToLower(s))
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, ".,;:()[]{}|/\\\"'!?")
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}

// SectionType returns the section type a heading names.
// A heading matches when it equals a keyword or is a short phrase containing one.
func (t *Tables) SectionType(heading string) (string, bool) {
	norm := normalizePhrase(heading)
	if norm == "" {
		return "", false
	}
	if kind, ok := t.sectionIndex[norm]; ok {
		return kind, true
	}
	ws := strings.Fields(norm)
	if len(ws) > 4 {
		return "", false
	}
	for _, w := range ws {
		if strings.ContainsAny(w, "0123456789") {
			return "", false
		}
	}
	padded := " " + norm + " "
	for _, kind := range sectionOrder {
		for _, kw := range t.Sections[kind] {
			key := normalizePhrase(kw)
			if key != "" && strings.Contains(padded, " "+key+" ") {
				return kind, true
			}
		}
	}
	return "", false
}

// IsActionVerb reports whether word is a known action verb
func (t *Tables) IsActionVerb(word string) bool {
	_, ok := t.verbs[strings.ToLower(strings.Trim(word, ".,;:!?\"'()"))]
	return ok
}

// StartsWithActionVerb reports whether the first word of line is an action verb
func (t *Tables) StartsWithActionVerb(line string) bool {
	ws := strings.Fields(line)
	if len(ws) == 0 {
		return false
	}
	return t.IsActionVerb(ws[0])
}

// BulletGlyph returns the bullet glyph line starts with, if any
func (t *Tables) BulletGlyph(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	for _, g := range t.BulletGlyphs {
		if g != "" && strings.HasPrefix(trimmed, g) {
			return g, true
		}
	}
	return "", false
}

// StripBullet removes any leading bullet glyphs and whitespace from line
func (t *Tables) StripBullet(line string) string {
	out := strings.TrimSpace(line)
	for {
		g, ok := t.BulletGlyph(out)
		if !ok {
			return out
		}
		out = strings.TrimSpace(strings.TrimPrefix(out, g))
	}
}

func containsWord(set map[string]struct{}, text string) bool {
	for _, w := range words(text) {
		if _, ok := set[w]; ok {
			return true
		}
	}
	return false
}

// HasCompanyKeyword reports whether text contains a company marker such as "Inc" or "Labs"
func (t *Tables) HasCompanyKeyword(text string) bool { return containsWord(t.companies, text) }

// HasRoleKeyword reports whether text contains a job-title word such as "engineer"
func (t *Tables) HasRoleKeyword(text string) bool { return containsWord(t.roles, text) }

// HasDegreeKeyword reports whether text contains a degree word such as "BSc" or "Master"
func (t *Tables) HasDegreeKeyword(text string) bool { return containsWord(t.degrees, text) }

// HasSchoolKeyword reports whether text contains a school word such as "University"
func (t *Tables) HasSchoolKeyword(text string) bool { return containsWord(t.schools, text) }

// IsNoise reports whether the whole value is a generic noise word
func (t *Tables) IsNoise(value string) bool {
	_, ok := t.noise[normalizePhrase(value)]
	return ok
}

// IsStopword reports whether token is excluded from keyword scoring
func (t *Tables) IsStopword(token string) bool {
	_, ok := t.stopwords[strings.ToLower(token)]
	return ok
}

// Technology returns the display name for a technology token
func (t *Tables) Technology(token string) (string, bool) {
	token = strings.TrimSpace(token)
	if name, ok := t.CasedTechnologies[token]; ok {
		return name, true
	}
	name, ok := t.Technologies[strings.ToLower(token)]
	return name, ok
}

// Month returns the month number for a month name or abbreviation
func (t *Tables) Month(name string) (int, bool) {
	m, ok := t.Months[strings.ToLower(strings.Trim(name, ".,"))]
	return m, ok
}

// HasRewriteCue reports whether text asks for rewording
func (t *Tables) HasRewriteCue(text string) bool {
	lower := strings.ToLower(text)
	for _, cue := range t.RewriteCues {
		if cue != "" && strings.Contains(lower, strings.ToLower(cue)) {
			return true
		}
	}
	return false
}
