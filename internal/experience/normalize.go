package experience

import (
	"strings"

	"github.com/jonathan/resume-drafter/internal/ids"
	"github.com/jonathan/resume-drafter/internal/merge"
	"github.com/jonathan/resume-drafter/internal/parsing"
	"github.com/jonathan/resume-drafter/internal/types"
)

// NormalizeExperience trims every field, mints missing ids, removes duplicate
// achievements and canonicalizes technology names. Records left with neither a
// heading nor achievements are dropped. The input is not modified.
func NormalizeExperience(records []types.ExperienceRecord) []types.ExperienceRecord {
	out := make([]types.ExperienceRecord, 0, len(records))
	for _, r := range records {
		r.ID = strings.TrimSpace(r.ID)
		r.Role = strings.TrimSpace(r.Role)
		r.Company = strings.TrimSpace(r.Company)
		r.Location = strings.TrimSpace(r.Location)
		r.StartDate = strings.TrimSpace(r.StartDate)
		r.EndDate = strings.TrimSpace(r.EndDate)
		r.Achievements = merge.UnionStrings(r.Achievements)
		r.Technologies = parsing.NormalizeSkills(r.Technologies)

		if r.Role == "" && r.Company == "" && len(r.Achievements) == 0 {
			continue
		}
		if r.ID == "" {
			r.ID = ids.Experience()
		}
		out = append(out, r)
	}
	return out
}

// NormalizeProjects is NormalizeExperience for projects. A project needs a name,
// a summary or a highlight to be kept.
func NormalizeProjects(records []types.ProjectRecord) []types.ProjectRecord {
	out := make([]types.ProjectRecord, 0, len(records))
	for _, r := range records {
		r.ID = strings.TrimSpace(r.ID)
		r.Name = strings.TrimSpace(r.Name)
		r.URL = strings.TrimSpace(r.URL)
		r.Summary = strings.TrimSpace(r.Summary)
		r.Highlights = merge.UnionStrings(r.Highlights)
		r.Technologies = parsing.NormalizeSkills(r.Technologies)

		if r.Name == "" && r.Summary == "" && len(r.Highlights) == 0 {
			continue
		}
		if r.ID == "" {
			r.ID = ids.Project()
		}
		out = append(out, r)
	}
	return out
}

// NormalizeEducation trims every field and mints missing ids.
// Records with neither a school nor a degree are dropped.
func NormalizeEducation(records []types.EducationRecord) []types.EducationRecord {
	out := make([]types.EducationRecord, 0, len(records))
	for _, r := range records {
		r.ID = strings.TrimSpace(r.ID)
		r.School = strings.TrimSpace(r.School)
		r.Degree = strings.TrimSpace(r.Degree)
		r.Field = strings.TrimSpace(r.Field)
		r.StartDate = strings.TrimSpace(r.StartDate)
		r.EndDate = strings.TrimSpace(r.EndDate)
		r.Location = strings.TrimSpace(r.Location)
		r.Grade = strings.TrimSpace(r.Grade)

		if r.School == "" && r.Degree == "" {
			continue
		}
		if r.ID == "" {
			r.ID = ids.Education()
		}
		out = append(out, r)
	}
	return out
}
