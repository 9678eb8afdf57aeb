package merge

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/resume-drafter/internal/sanitize"
	"github.com/jonathan/resume-drafter/internal/types"
)

const (
	// MaxBulletsPerRecord caps the bullets TidyBullets keeps
	MaxBulletsPerRecord = 6
	// longBulletChars is the length above which a bullet is split into sentences
	longBulletChars = 160
	// maxHeadlessChars is the longest headless fragment kept as experience
	maxHeadlessChars = 320
	maxRecordWords   = 150
)

var (
	bulletSplitRe   = regexp.MustCompile(`[•▪●·;]+`)
	sentenceBreakRe = regexp.MustCompile(`\.\s+`)
	boilerplateRe   = regexp.MustCompile(`(?i)\b(?:profile summary|professional summary|curriculum vitae|references available)\b`)
	headlessLeadRe  = regexp.MustCompile(`(?i)^(?:experience|profile|summary)\b`)
)

// headlineKey is the (company, role, start) signature of a record with a heading.
// It is "" for a record without one.
func headlineKey(e types.ExperienceRecord) string {
	heading := canonicalKey(sanitize.Heading(e.Company), sanitize.Heading(e.Role))
	if heading == "" {
		return ""
	}
	if start := DateKey(e.StartDate); start != "" {
		return heading + "|" + start
	}
	return heading
}

func hasHeading(e types.ExperienceRecord) bool {
	return sanitize.Heading(e.Role) != "" || sanitize.Heading(e.Company) != ""
}

// ConsolidateExperience folds headless fragments into the record before them and
// merges records that share a (company, role, start) signature.
// A headless fragment with nothing before it is dropped.
func ConsolidateExperience(entries []types.ExperienceRecord) []types.ExperienceRecord {
	out := make([]types.ExperienceRecord, 0, len(entries))
	byKey := make(map[string]int)

	for _, entry := range entries {
		if !hasHeading(entry) {
			if len(entry.Achievements) > 0 && len(out) > 0 {
				last := &out[len(out)-1]
				last.Achievements = UnionStrings(last.Achievements, entry.Achievements)
			}
			continue
		}

		key := headlineKey(entry)
		if pos, ok := byKey[key]; ok && key != "" {
			out[pos] = MergeExperience(out[pos], entry)
			continue
		}
		byKey[key] = len(out)
		entry.Role = sanitize.Heading(entry.Role)
		entry.Company = sanitize.Heading(entry.Company)
		entry.Achievements = UnionStrings(entry.Achievements)
		out = append(out, entry)
	}
	return out
}

// PruneDuplicateContent removes achievements that repeat the summary or an
// earlier achievement, or that carry contact details or personal tokens.
// Headless records left without achievements are dropped.
func PruneDuplicateContent(entries []types.ExperienceRecord, summary string, s *sanitize.Sanitizer) []types.ExperienceRecord {
	s = orPlain(s)
	seen := make(map[string]struct{})
	if summary != "" {
		for _, line := range TidyBullets([]string{summary}, s) {
			seen[NormalizeKey(line)] = struct{}{}
		}
		seen[NormalizeKey(summary)] = struct{}{}
	}

	out := make([]types.ExperienceRecord, 0, len(entries))
	for _, entry := range entries {
		kept := make([]string, 0, len(entry.Achievements))
		for _, ach := range entry.Achievements {
			key := NormalizeKey(ach)
			if key == "" {
				continue
			}
			if _, dup := seen[key]; dup {
				continue
			}
			if s.ContainsToken(ach) || sanitize.ContainsContactNoise(ach) {
				continue
			}
			seen[key] = struct{}{}
			kept = append(kept, ach)
		}
		entry.Achievements = kept
		if hasHeading(entry) || len(kept) > 0 {
			out = append(out, entry)
		}
	}
	return out
}

// DedupeCards keeps the first record of each headline signature and drops
// records without achievements
func DedupeCards(entries []types.ExperienceRecord) []types.ExperienceRecord {
	out := make([]types.ExperienceRecord, 0, len(entries))
	seen := make(map[string]struct{})
	for _, entry := range entries {
		if len(entry.Achievements) == 0 {
			continue
		}
		key := headlineKey(entry)
		if key == "" {
			key = ExperienceResolver.Resolve(entry)
		}
		if key != "" {
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
		}
		out = append(out, entry)
	}
	return out
}

// TidyBullets splits run-together bullets, capitalizes them, ends them with
// punctuation and drops duplicates, contact noise, personal tokens and lines
// over the bullet limit. At most MaxBulletsPerRecord lines are returned.
func TidyBullets(lines []string, s *sanitize.Sanitizer) []string {
	s = orPlain(s)
	out := []string{}
	seen := make(map[string]struct{})
	for _, line := range lines {
		normalized := sanitize.CollapseSpace(line)
		if normalized == "" {
			continue
		}

		candidates := []string{normalized}
		switch {
		case bulletSplitRe.MatchString(normalized):
			candidates = bulletSplitRe.Split(normalized, -1)
		case utf8.RuneCountInString(normalized) > longBulletChars:
			candidates = splitSentences(normalized)
		}

		for _, candidate := range candidates {
			candidate = sanitize.CollapseSpace(candidate)
			if candidate == "" {
				continue
			}
			if sanitize.ContainsContactNoise(candidate) || s.ContainsToken(candidate) {
				continue
			}
			if utf8.RuneCountInString(candidate) > sanitize.BulletLimit {
				continue
			}
			candidate = capitalize(candidate)
			if !endsSentence(candidate) {
				candidate += "."
			}
			key := NormalizeKey(candidate)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, candidate)
			if len(out) >= MaxBulletsPerRecord {
				return out
			}
		}
	}
	return out
}

// splitSentences splits at ". " when the next sentence starts with an uppercase letter
func splitSentences(text string) []string {
	var parts []string
	start := 0
	for _, loc := range sentenceBreakRe.FindAllStringIndex(text, -1) {
		next, _ := utf8.DecodeRuneInString(text[loc[1]:])
		if !unicode.IsUpper(next) {
			continue
		}
		parts = append(parts, text[start:loc[0]+1])
		start = loc[1]
	}
	return append(parts, text[start:])
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if unicode.IsUpper(r) || !unicode.IsLetter(r) {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func endsSentence(s string) bool {
	return strings.HasSuffix(s, ".") || strings.HasSuffix(s, "!") || strings.HasSuffix(s, "?")
}

// ShouldDropExperience reports whether a record carries nothing worth keeping:
// no heading and no achievements, or text that is contact details or boilerplate
func ShouldDropExperience(entry types.ExperienceRecord, s *sanitize.Sanitizer) bool {
	s = orPlain(s)
	combined := sanitize.CollapseSpace(strings.Join(entry.Achievements, " "))
	if !hasHeading(entry) {
		if combined == "" {
			return true
		}
		if sanitize.ContainsContactNoise(combined) || s.ContainsToken(combined) {
			return true
		}
		if headlessLeadRe.MatchString(combined) || utf8.RuneCountInString(combined) > maxHeadlessChars {
			return true
		}
	}
	if boilerplateRe.MatchString(combined) {
		return true
	}
	return len(strings.Fields(combined)) > maxRecordWords
}

// FilterEducation drops records without a usable school or degree
func FilterEducation(entries []types.EducationRecord) []types.EducationRecord {
	out := make([]types.EducationRecord, 0, len(entries))
	for _, entry := range entries {
		school := sanitize.Heading(entry.School)
		degree := sanitize.Heading(entry.Degree)
		if school == "" && degree == "" {
			continue
		}
		hasDetail := entry.StartDate != "" || entry.EndDate != "" || entry.Field != "" || entry.Location != "" || entry.Grade != ""
		if utf8.RuneCountInString(school) > 1 || utf8.RuneCountInString(degree) > 1 || hasDetail {
			out = append(out, entry)
		}
	}
	return out
}

// SanitizeProjects cleans project names and text and drops projects whose text
// is contact details, personal tokens or too long to be a project description
func SanitizeProjects(projects []types.ProjectRecord, s *sanitize.Sanitizer) []types.ProjectRecord {
	s = orPlain(s)
	out := make([]types.ProjectRecord, 0, len(projects))
	for _, project := range projects {
		project.Name = sanitize.Heading(project.Name)
		project.Summary = s.Narrative(project.Summary, sanitize.ProjectSummaryLimit)
		highlights := make([]string, 0, len(project.Highlights))
		for _, h := range project.Highlights {
			if h = s.Narrative(h, sanitize.BulletLimit); h != "" {
				highlights = append(highlights, h)
			}
		}
		project.Highlights = highlights

		combined := sanitize.CollapseSpace(strings.Join(append([]string{project.Summary}, highlights...), " "))
		if combined == "" {
			if project.Name != "" {
				out = append(out, project)
			}
			continue
		}
		if sanitize.ContainsContactNoise(combined) || s.ContainsToken(combined) || utf8.RuneCountInString(combined) > maxHeadlessChars {
			continue
		}
		out = append(out, project)
	}
	return out
}

// FoldProjectsIntoExperience moves project content into the experience list.
// Each highlight becomes a "Name: highlight" achievement of the first record;
// with no experience at all, every project becomes its own record.
func FoldProjectsIntoExperience(experience []types.ExperienceRecord, projects []types.ProjectRecord) []types.ExperienceRecord {
	if len(projects) == 0 {
		return experience
	}

	if len(experience) == 0 {
		converted := make([]types.ExperienceRecord, 0, len(projects))
		for _, p := range projects {
			converted = append(converted, types.ExperienceRecord{
				ID:           p.ID,
				Role:         firstNonEmpty(p.Name, "Project"),
				Achievements: projectLines(p),
				Technologies: p.Technologies,
			})
		}
		return assimilate(ExperienceResolver, normalizeExperience, MergeExperience, converted)
	}

	out := make([]types.ExperienceRecord, len(experience))
	for i, e := range experience {
		e.Achievements = UnionStrings(e.Achievements)
		out[i] = e
	}

	primary := &out[0]
	seen := make(map[string]struct{}, len(primary.Achievements))
	for _, a := range primary.Achievements {
		seen[NormalizeKey(a)] = struct{}{}
	}
	for _, p := range projects {
		label := strings.TrimSpace(p.Name)
		for _, h := range projectLines(p) {
			entry := h
			if label != "" {
				entry = label + ": " + h
			}
			key := NormalizeKey(entry)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			primary.Achievements = append(primary.Achievements, entry)
		}
	}
	return out
}

// projectLines returns the highlights of p, or its summary when it has none
func projectLines(p types.ProjectRecord) []string {
	lines := UnionStrings(p.Highlights)
	if len(lines) == 0 {
		lines = UnionStrings([]string{p.Summary})
	}
	return lines
}

var plainSanitizer = sanitize.New(types.Basics{}, nil)

func orPlain(s *sanitize.Sanitizer) *sanitize.Sanitizer {
	if s == nil {
		return plainSanitizer
	}
	return s
}
