// Package skills provides functionality to assemble the weighted skill list of a draft.
package skills

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-drafter/internal/keywords"
	"github.com/jonathan/resume-drafter/internal/parsing"
	"github.com/jonathan/resume-drafter/internal/sanitize"
)

const (
	// MaxSkills caps the skills section of a draft
	MaxSkills = 20

	// Weight constants for skill sources
	weightProvided = 1.0
	weightMatched  = 0.8
	weightParsed   = 0.6
	weightRecord   = 0.5

	// Source constants
	SourceProvided = "provided"
	SourceMatched  = "matched"
	SourceParsed   = "parsed"
	SourceRecord   = "record"
)

// Skill is a candidate skill with the weight of its strongest source
type Skill struct {
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
	Source string  `json:"source"`
}

// Sources holds the raw skill candidates of a draft
type Sources struct {
	// Provided are the skills the user typed in
	Provided []string
	// Matched are job-description tokens found in the résumé
	Matched []string
	// Parsed are the skills read from the uploaded résumé
	Parsed []string
	// Records are the technologies of experience and project records
	Records []string
}

// BuildPool builds a weighted list of skills from all sources.
// Names are normalized and deduplicated (taking max weight when duplicates exist),
// and the list is sorted by weight (descending), keeping first appearance on ties.
// Matched tokens count only when they name a known technology.
func BuildPool(src Sources, tables *keywords.Tables) []Skill {
	if tables == nil {
		tables = keywords.Default()
	}
	pool := &skillPool{skills: []Skill{}, index: make(map[string]int)}

	for _, name := range src.Provided {
		pool.add(name, weightProvided, SourceProvided)
	}
	for _, token := range src.Matched {
		if name, ok := tables.Technology(strings.ToLower(strings.TrimSpace(token))); ok {
			pool.add(name, weightMatched, SourceMatched)
		}
	}
	for _, name := range src.Parsed {
		pool.add(name, weightParsed, SourceParsed)
	}
	for _, name := range src.Records {
		pool.add(name, weightRecord, SourceRecord)
	}

	sort.SliceStable(pool.skills, func(i, j int) bool {
		return pool.skills[i].Weight > pool.skills[j].Weight
	})
	return pool.skills
}

// Names returns the skill names in pool order
func Names(pool []Skill) []string {
	names := make([]string, 0, len(pool))
	for _, skill := range pool {
		names = append(names, skill.Name)
	}
	return names
}

// Combine merges generated and original skill names, drops noise, contact details
// and personal tokens, and keeps at most MaxSkills
func Combine(generated, original []string, s *sanitize.Sanitizer) []string {
	merged := make([]string, 0, len(generated)+len(original))
	merged = append(merged, generated...)
	merged = append(merged, original...)

	filtered := s.FilterSkills(merged)
	if len(filtered) > MaxSkills {
		filtered = filtered[:MaxSkills]
	}
	return filtered
}

// skillPool keeps skills in first-seen order with an index by lowercase name
type skillPool struct {
	skills []Skill
	index  map[string]int
}

// add adds a skill or updates it if it exists, taking the maximum weight when
// duplicates are found
func (p *skillPool) add(raw string, weight float64, source string) {
	name := cleanName(raw)
	if name == "" {
		return
	}
	key := strings.ToLower(name)
	if i, exists := p.index[key]; exists {
		if weight > p.skills[i].Weight {
			p.skills[i].Weight = weight
			p.skills[i].Source = source
		}
		return
	}
	p.index[key] = len(p.skills)
	p.skills = append(p.skills, Skill{Name: name, Weight: weight, Source: source})
}

// cleanName normalizes a raw skill and rejects values that cannot be a skill name
func cleanName(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.Contains(raw, "  ") {
		return ""
	}
	name := parsing.NormalizeSkillName(strings.TrimRight(raw, ",.;:"))
	if utf8.RuneCountInString(name) < 2 {
		return ""
	}
	return name
}
