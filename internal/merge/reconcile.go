package merge

import (
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-drafter/internal/ids"
	"github.com/jonathan/resume-drafter/internal/sanitize"
	"github.com/jonathan/resume-drafter/internal/types"
)

// PickRicher returns the longer of two values, keeping current on a tie
func PickRicher(current, incoming string) string {
	if incoming == "" {
		return current
	}
	if current == "" {
		return incoming
	}
	if utf8.RuneCountInString(incoming) > utf8.RuneCountInString(current) {
		return incoming
	}
	return current
}

// PickDate reconciles two spellings of a date. Values with different date keys
// keep current; values with the same key keep the longer spelling.
func PickDate(current, incoming string) string {
	currentKey, incomingKey := DateKey(current), DateKey(incoming)
	switch {
	case currentKey == "" && incomingKey == "":
		return firstNonEmpty(incoming, current)
	case incomingKey == "":
		return firstNonEmpty(current, incoming)
	case currentKey == "":
		return incoming
	case currentKey == incomingKey:
		return PickRicher(current, incoming)
	default:
		return current
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// UnionStrings concatenates lists, trimming values and dropping empty values and
// values equal to an earlier one after normalizing whitespace and case
func UnionStrings(lists ...[]string) []string {
	out := []string{}
	seen := make(map[string]struct{})
	for _, list := range lists {
		for _, value := range list {
			value = strings.TrimSpace(value)
			key := NormalizeKey(value)
			if key == "" {
				continue
			}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, value)
		}
	}
	return out
}

// Blend combines original and generated bullet text.
// With preferGenerated every generated line comes first, followed by the original
// lines not already present. Otherwise the lists are walked index by index, taking
// the generated line where one exists and the original line past its end.
func Blend(original, generated []string, preferGenerated bool) []string {
	orig := UnionStrings(original)
	gen := UnionStrings(generated)
	if len(orig) == 0 {
		return gen
	}
	if len(gen) == 0 {
		return orig
	}
	if preferGenerated {
		return UnionStrings(gen, orig)
	}

	n := max(len(orig), len(gen))
	picked := make([]string, 0, n)
	for i := 0; i < n; i++ {
		if i < len(gen) {
			picked = append(picked, gen[i])
		} else {
			picked = append(picked, orig[i])
		}
	}
	return UnionStrings(picked)
}

// MergeExperience reconciles two records describing the same role
func MergeExperience(base, incoming types.ExperienceRecord) types.ExperienceRecord {
	out := base
	out.ID = firstNonEmpty(base.ID, incoming.ID)
	out.Role = PickRicher(sanitize.Heading(base.Role), sanitize.Heading(incoming.Role))
	out.Company = PickRicher(sanitize.Heading(base.Company), sanitize.Heading(incoming.Company))
	out.Location = PickRicher(base.Location, incoming.Location)
	out.StartDate = PickDate(base.StartDate, incoming.StartDate)
	out.EndDate = PickDate(base.EndDate, incoming.EndDate)
	if out.Current == nil {
		out.Current = incoming.Current
	}
	out.Technologies = UnionStrings(base.Technologies, incoming.Technologies)
	out.Achievements = UnionStrings(base.Achievements, incoming.Achievements)
	return out
}

// MergeProject reconciles two records describing the same project
func MergeProject(base, incoming types.ProjectRecord) types.ProjectRecord {
	out := base
	out.ID = firstNonEmpty(base.ID, incoming.ID)
	out.Name = PickRicher(base.Name, incoming.Name)
	out.URL = firstNonEmpty(base.URL, incoming.URL)
	out.Summary = firstNonEmpty(strings.TrimSpace(base.Summary), strings.TrimSpace(incoming.Summary))
	out.Technologies = UnionStrings(base.Technologies, incoming.Technologies)
	out.Highlights = UnionStrings(base.Highlights, incoming.Highlights)
	return out
}

// MergeEducation reconciles two records describing the same program
func MergeEducation(base, incoming types.EducationRecord) types.EducationRecord {
	out := base
	out.ID = firstNonEmpty(base.ID, incoming.ID)
	out.School = PickRicher(base.School, incoming.School)
	out.Degree = PickRicher(base.Degree, incoming.Degree)
	out.Field = PickRicher(base.Field, incoming.Field)
	out.StartDate = PickDate(base.StartDate, incoming.StartDate)
	out.EndDate = PickDate(base.EndDate, incoming.EndDate)
	out.Location = PickRicher(base.Location, incoming.Location)
	out.Grade = PickRicher(base.Grade, incoming.Grade)
	return out
}

// ReconcileExperience overlays each generated record on the source record with a
// matching identity key, then merges the overlaid records and all source records
// into one list ordered by first appearance, generated records first.
func ReconcileExperience(generated, source []types.ExperienceRecord, preferGenerated bool) []types.ExperienceRecord {
	overlay := func(gen types.ExperienceRecord, orig *types.ExperienceRecord) types.ExperienceRecord {
		if orig == nil {
			gen.Achievements = Blend(nil, gen.Achievements, preferGenerated)
			return gen
		}
		out := *orig
		out.ID = firstNonEmpty(gen.ID, orig.ID)
		out.Role = firstNonEmpty(gen.Role, orig.Role)
		out.Company = firstNonEmpty(gen.Company, orig.Company)
		out.Location = firstNonEmpty(gen.Location, orig.Location)
		out.StartDate = firstNonEmpty(gen.StartDate, orig.StartDate)
		out.EndDate = firstNonEmpty(gen.EndDate, orig.EndDate)
		if gen.Current != nil {
			out.Current = gen.Current
		}
		out.Technologies = UnionStrings(gen.Technologies, orig.Technologies)
		out.Achievements = Blend(orig.Achievements, gen.Achievements, preferGenerated)
		return out
	}
	return reconcile(generated, source, ExperienceResolver, overlay, normalizeExperience, MergeExperience)
}

// ReconcileProjects is ReconcileExperience for projects
func ReconcileProjects(generated, source []types.ProjectRecord, preferGenerated bool) []types.ProjectRecord {
	overlay := func(gen types.ProjectRecord, orig *types.ProjectRecord) types.ProjectRecord {
		if orig == nil {
			gen.Highlights = Blend(nil, gen.Highlights, preferGenerated)
			return gen
		}
		out := *orig
		out.ID = firstNonEmpty(gen.ID, orig.ID)
		out.Name = firstNonEmpty(gen.Name, orig.Name)
		out.Summary = firstNonEmpty(strings.TrimSpace(gen.Summary), strings.TrimSpace(orig.Summary))
		out.URL = firstNonEmpty(gen.URL, orig.URL)
		out.Technologies = UnionStrings(gen.Technologies, orig.Technologies)
		out.Highlights = Blend(orig.Highlights, gen.Highlights, preferGenerated)
		return out
	}
	return reconcile(generated, source, ProjectResolver, overlay, normalizeProject, MergeProject)
}

// ReconcileEducation is ReconcileExperience for education. Education has no
// bullet text, so preferGenerated is accepted only for symmetry.
func ReconcileEducation(generated, source []types.EducationRecord, _ bool) []types.EducationRecord {
	overlay := func(gen types.EducationRecord, orig *types.EducationRecord) types.EducationRecord {
		if orig == nil {
			return gen
		}
		out := *orig
		out.ID = firstNonEmpty(gen.ID, orig.ID)
		out.School = firstNonEmpty(gen.School, orig.School)
		out.Degree = firstNonEmpty(gen.Degree, orig.Degree)
		out.Field = firstNonEmpty(gen.Field, orig.Field)
		out.StartDate = firstNonEmpty(gen.StartDate, orig.StartDate)
		out.EndDate = firstNonEmpty(gen.EndDate, orig.EndDate)
		out.Location = firstNonEmpty(gen.Location, orig.Location)
		out.Grade = firstNonEmpty(gen.Grade, orig.Grade)
		return out
	}
	return reconcile(generated, source, EducationResolver, overlay, normalizeEducation, MergeEducation)
}

func reconcile[T any](
	generated, source []T,
	resolver Resolver[T],
	overlay func(gen T, orig *T) T,
	normalize func(T) T,
	merge func(base, incoming T) T,
) []T {
	index := newKeyedIndex(resolver)
	for i, item := range source {
		index.add(item, i)
	}

	overlaid := make([]T, 0, len(generated))
	for _, gen := range generated {
		var orig *T
		if pos, ok := index.lookup(gen); ok {
			orig = &source[pos]
		}
		overlaid = append(overlaid, overlay(gen, orig))
	}
	return assimilate(resolver, normalize, merge, overlaid, source)
}

// assimilate merges the items of lists that share any identity key, keeping the
// order in which each identity first appears
func assimilate[T any](resolver Resolver[T], normalize func(T) T, merge func(base, incoming T) T, lists ...[]T) []T {
	out := []T{}
	index := newKeyedIndex(resolver)
	for _, list := range lists {
		for _, item := range list {
			item = normalize(item)
			if pos, ok := index.lookup(item); ok {
				out[pos] = merge(out[pos], item)
				index.add(out[pos], pos)
				continue
			}
			index.add(item, len(out))
			out = append(out, item)
		}
	}
	return out
}

func normalizeExperience(e types.ExperienceRecord) types.ExperienceRecord {
	if e.ID == "" {
		e.ID = ids.Experience()
	}
	e.Achievements = UnionStrings(e.Achievements)
	if e.Technologies != nil {
		e.Technologies = UnionStrings(e.Technologies)
	}
	return e
}

func normalizeProject(p types.ProjectRecord) types.ProjectRecord {
	if p.ID == "" {
		p.ID = ids.Project()
	}
	p.Highlights = UnionStrings(p.Highlights)
	if p.Technologies != nil {
		p.Technologies = UnionStrings(p.Technologies)
	}
	p.Summary = strings.TrimSpace(p.Summary)
	p.Name = firstNonEmpty(strings.TrimSpace(p.Name), p.Summary, "Project")
	return p
}

func normalizeEducation(e types.EducationRecord) types.EducationRecord {
	if e.ID == "" {
		e.ID = ids.Education()
	}
	e.School = strings.TrimSpace(e.School)
	e.Degree = strings.TrimSpace(e.Degree)
	return e
}
