// Package types provides type definitions for structured data used throughout the resume-drafter system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ParsedResumeSections is the structured result of segmenting and parsing résumé text
type ParsedResumeSections struct {
	Summary    string             `json:"summary,omitempty"`
	Experience []ExperienceRecord `json:"experience"`
	Projects   []ProjectRecord    `json:"projects"`
	Education  []EducationRecord  `json:"education"`
	Skills     []string           `json:"skills"`
	Blocks     []RawBlock         `json:"blocks"`
}

// DraftSections holds the content sections of a generated draft
type DraftSections struct {
	Summary    string             `json:"summary"`
	Skills     []string           `json:"skills"`
	Experience []ExperienceRecord `json:"experience"`
	Projects   []ProjectRecord    `json:"projects"`
	Education  []EducationRecord  `json:"education"`
}

// GeneratedDraft is the final artifact handed back to the caller.
// A nil ATSScore means there was nothing to score against, which differs from a score of 0.
type GeneratedDraft struct {
	Sections        DraftSections `json:"sections"`
	ATSScore        *int          `json:"atsScore,omitempty"`
	MatchedKeywords []string      `json:"matchedKeywords"`
}

// EnsureSlices replaces nil slices with empty ones so the draft serializes without nulls
func (d *GeneratedDraft) EnsureSlices() {
	if d.Sections.Skills == nil {
		d.Sections.Skills = []string{}
	}
	if d.Sections.Experience == nil {
		d.Sections.Experience = []ExperienceRecord{}
	}
	if d.Sections.Projects == nil {
		d.Sections.Projects = []ProjectRecord{}
	}
	if d.Sections.Education == nil {
		d.Sections.Education = []EducationRecord{}
	}
	if d.MatchedKeywords == nil {
		d.MatchedKeywords = []string{}
	}
	for i := range d.Sections.Experience {
		if d.Sections.Experience[i].Achievements == nil {
			d.Sections.Experience[i].Achievements = []string{}
		}
	}
	for i := range d.Sections.Projects {
		if d.Sections.Projects[i].Highlights == nil {
			d.Sections.Projects[i].Highlights = []string{}
		}
	}
}
