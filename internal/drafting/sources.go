package drafting

import (
	"strings"

	"github.com/jonathan/resume-drafter/internal/experience"
	"github.com/jonathan/resume-drafter/internal/keywords"
	"github.com/jonathan/resume-drafter/internal/parsing"
	"github.com/jonathan/resume-drafter/internal/ranking"
	"github.com/jonathan/resume-drafter/internal/types"
)

// material is the candidate content a draft is built from: the form's records,
// or the records parsed from the uploaded résumé where the form has none
type material struct {
	parsed         types.ParsedResumeSections
	hasResumeText  bool
	summary        string
	experience     []types.ExperienceRecord
	projects       []types.ProjectRecord
	education      []types.EducationRecord
	skills         []string
	jobDescription string
	jobTokens      *ranking.TokenSet
	score          ranking.Result
}

// gather collects the draft material. parsed, when non-nil, holds the sections
// already extracted from the form's résumé text.
func gather(form types.FormState, tables *keywords.Tables, parsed *types.ParsedResumeSections) material {
	m := material{}
	if text := form.Attachments.ExistingResumeText; strings.TrimSpace(text) != "" {
		if parsed != nil {
			m.parsed = *parsed
		} else {
			m.parsed = parsing.ExtractFromResumeText(text, tables)
		}
		m.hasResumeText = true
	}

	m.summary = strings.TrimSpace(form.Basics.Summary)
	if m.summary == "" {
		m.summary = m.parsed.Summary
	}

	m.experience = experience.NormalizeExperience(form.Experience)
	if len(m.experience) == 0 {
		m.experience = experience.NormalizeExperience(m.parsed.Experience)
	}
	m.projects = experience.NormalizeProjects(form.Projects)
	if len(m.projects) == 0 {
		m.projects = experience.NormalizeProjects(m.parsed.Projects)
	}
	m.education = experience.NormalizeEducation(form.Education)
	if len(m.education) == 0 {
		m.education = experience.NormalizeEducation(m.parsed.Education)
	}
	m.skills = parsing.NormalizeSkills(form.Skills)
	if len(m.skills) == 0 {
		m.skills = parsing.NormalizeSkills(m.parsed.Skills)
	}

	m.jobDescription = truncateRunes(form.Attachments.JobDescriptionText, parsing.MaxDocumentLength)
	m.jobTokens = ranking.JobTokens(m.jobDescription, form.Instructions.Keywords, tables)
	resumeTokens := ranking.ResumeTokens(m.experience, m.projects, m.skills, tables)
	m.score = ranking.Score(m.jobTokens, resumeTokens)
	return m
}

// recordTechnologies lists the technologies of every experience and project record
func (m material) recordTechnologies() []string {
	var out []string
	for _, e := range m.experience {
		out = append(out, e.Technologies...)
	}
	for _, p := range m.projects {
		out = append(out, p.Technologies...)
	}
	return out
}

func truncateRunes(text string, limit int) string {
	if runes := []rune(text); len(runes) > limit {
		return string(runes[:limit])
	}
	return text
}
