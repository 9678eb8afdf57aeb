package drafting

import (
	"github.com/jonathan/resume-drafter/internal/merge"
	"github.com/jonathan/resume-drafter/internal/rewriting"
	"github.com/jonathan/resume-drafter/internal/sanitize"
	"github.com/jonathan/resume-drafter/internal/skills"
	"github.com/jonathan/resume-drafter/internal/types"
)

// Build returns the reconciled draft when an external draft is given and the
// locally synthesized draft otherwise
func Build(form types.FormState, external *types.GeneratedDraft, opts Options) types.GeneratedDraft {
	if external == nil {
		return Local(form, opts)
	}
	return Reconcile(form, *external, opts)
}

// Local synthesizes a draft from the form and the uploaded résumé alone.
// Bullets are tightened against the job description unless the candidate's own
// wording is to be preserved.
func Local(form types.FormState, opts Options) types.GeneratedDraft {
	opts = opts.withDefaults()
	m := gather(form, opts.Tables, opts.Parsed)
	s := sanitize.New(form.Basics, opts.Tables)

	preserve := form.PreserveStrict || (m.hasResumeText && (len(form.Experience) > 0 || len(form.Projects) > 0))
	bullets := func(lines, techHint []string) []string {
		if !preserve {
			return rewriting.NormalizeBullets(lines, m.jobTokens, techHint, opts.Picker)
		}
		out := make([]string, 0, len(lines))
		for _, line := range lines {
			if !form.PreserveStrict && rewriting.ShouldRewrite(line) {
				line = rewriting.RewriteLine(line, m.jobTokens, techHint, opts.Picker)
			} else {
				line = rewriting.CleanSentence(line)
			}
			if line != "" {
				out = append(out, line)
			}
		}
		return out
	}

	experience := make([]types.ExperienceRecord, 0, len(m.experience))
	for _, e := range m.experience {
		e.Achievements = bullets(e.Achievements, e.Technologies)
		experience = append(experience, e)
	}
	projects := make([]types.ProjectRecord, 0, len(m.projects))
	for _, p := range m.projects {
		lines := p.Highlights
		if len(lines) == 0 && p.Summary != "" {
			lines = []string{p.Summary}
		}
		p.Highlights = bullets(lines, p.Technologies)
		projects = append(projects, p)
	}

	summary := s.Narrative(s.CleanSummary(m.summary), sanitize.SummaryLimit)
	if summary == "" {
		years := EstimateYears(m.experience, opts.Now())
		built := BuildSummary(form.Basics, years, displayKeywords(m.score.Matched, opts.Tables))
		summary = s.Narrative(built, sanitize.SummaryLimit)
	}

	pool := skills.BuildPool(skills.Sources{
		Provided: form.Skills,
		Matched:  m.score.Matched,
		Parsed:   m.parsed.Skills,
		Records:  m.recordTechnologies(),
	}, opts.Tables)

	sections := finishSections(types.DraftSections{
		Summary:    summary,
		Skills:     skills.Combine(skills.Names(pool), nil, s),
		Experience: experience,
		Projects:   projects,
		Education:  m.education,
	}, s, opts.FoldProjects)
	return m.draft(sections)
}

// Reconcile merges an externally generated draft with the candidate's own
// records. Every source record survives, matched records keep the richer value
// of each field, and the keyword score is recomputed locally.
func Reconcile(form types.FormState, external types.GeneratedDraft, opts Options) types.GeneratedDraft {
	opts = opts.withDefaults()
	m := gather(form, opts.Tables, opts.Parsed)
	s := sanitize.New(form.Basics, opts.Tables)
	preferGenerated := ShouldFavorRewrite(form, opts.Tables)
	gen := external.Sections

	sections := finishSections(types.DraftSections{
		Summary:    s.Narrative(s.CleanSummary(gen.Summary, m.summary), sanitize.SummaryLimit),
		Skills:     skills.Combine(gen.Skills, m.skills, s),
		Experience: merge.ReconcileExperience(gen.Experience, m.experience, preferGenerated),
		Projects:   merge.ReconcileProjects(gen.Projects, m.projects, preferGenerated),
		Education:  merge.ReconcileEducation(gen.Education, m.education, preferGenerated),
	}, s, opts.FoldProjects)
	return m.draft(sections)
}

func (m material) draft(sections types.DraftSections) types.GeneratedDraft {
	d := types.GeneratedDraft{
		Sections:        sections,
		ATSScore:        m.score.Score,
		MatchedKeywords: m.score.Matched,
	}
	d.EnsureSlices()
	return d
}

// finishSections runs the cleanup shared by both synthesis paths: projects are
// sanitized (and optionally folded into experience), experience is consolidated,
// pruned against the summary and tidied with no achievement repeated anywhere in
// the section, and education without a usable heading is dropped
func finishSections(sec types.DraftSections, s *sanitize.Sanitizer, foldProjects bool) types.DraftSections {
	projects := merge.SanitizeProjects(sec.Projects, s)
	for i := range projects {
		projects[i].Highlights = merge.UnionStrings(projects[i].Highlights)
	}

	experience := sec.Experience
	if foldProjects {
		experience = merge.FoldProjectsIntoExperience(experience, projects)
		projects = []types.ProjectRecord{}
	}
	experience = merge.ConsolidateExperience(experience)
	experience = merge.PruneDuplicateContent(experience, sec.Summary, s)
	experience = merge.DedupeCards(experience)

	seen := make(map[string]struct{})
	cleaned := make([]types.ExperienceRecord, 0, len(experience))
	for _, entry := range experience {
		kept := []string{}
		for _, line := range merge.TidyBullets(entry.Achievements, s) {
			key := merge.NormalizeKey(line)
			if _, dup := seen[key]; dup || key == "" {
				continue
			}
			seen[key] = struct{}{}
			kept = append(kept, line)
		}
		entry.Achievements = kept
		if len(kept) == 0 || merge.ShouldDropExperience(entry, s) {
			continue
		}
		cleaned = append(cleaned, entry)
	}

	sec.Experience = cleaned
	sec.Projects = projects
	sec.Education = merge.FilterEducation(sec.Education)
	return sec
}
