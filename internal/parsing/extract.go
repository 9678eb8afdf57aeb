// Package parsing turns segmented résumé text into structured career records.
package parsing

import (
	"strings"

	"github.com/jonathan/resume-drafter/internal/keywords"
	"github.com/jonathan/resume-drafter/internal/segment"
	"github.com/jonathan/resume-drafter/internal/types"
)

// MaxDocumentLength is the number of characters of a document that are parsed
const MaxDocumentLength = 50000

// sectionLines holds the lines routed to one section type, with their block positions
type sectionLines struct {
	lines     []string
	positions []int
}

func (s *sectionLines) add(line string, pos int) {
	s.lines = append(s.lines, line)
	s.positions = append(s.positions, pos)
}

// ExtractFromResumeText segments text and runs every section parser over it.
// A parser whose section is missing or yields nothing is re-run once over the
// rest of the document, skipping lines that another parser already turned into
// records.
func ExtractFromResumeText(text string, tables *keywords.Tables) types.ParsedResumeSections {
	if tables == nil {
		tables = keywords.Default()
	}
	if runes := []rune(text); len(runes) > MaxDocumentLength {
		text = string(runes[:MaxDocumentLength])
	}

	seg := segment.Segment(text, tables)
	routed := routeSections(seg, tables)

	out := types.ParsedResumeSections{
		Experience: []types.ExperienceRecord{},
		Projects:   []types.ProjectRecord{},
		Education:  []types.EducationRecord{},
		Skills:     []string{},
		Blocks:     seg.Blocks,
	}
	claimed := make(map[int]struct{})
	claim := func(kind string) {
		for _, pos := range routed[kind].positions {
			claimed[pos] = struct{}{}
		}
	}

	out.Experience = ParseExperience(routed[keywords.SectionExperience].lines, tables)
	if len(out.Experience) > 0 {
		claim(keywords.SectionExperience)
	}
	out.Projects = ParseProjects(routed[keywords.SectionProjects].lines, tables)
	if len(out.Projects) > 0 {
		claim(keywords.SectionProjects)
	}
	out.Education = ParseEducation(routed[keywords.SectionEducation].lines, tables)
	if len(out.Education) > 0 {
		claim(keywords.SectionEducation)
	}
	out.Summary = ParseSummary(routed[keywords.SectionSummary].lines, tables)
	if out.Summary != "" {
		claim(keywords.SectionSummary)
	}
	out.Skills = ParseSkills(routed[keywords.SectionSkills].lines, tables)
	if len(out.Skills) > 0 {
		claim(keywords.SectionSkills)
	}

	claimAt := func(source *sectionLines, used []int) {
		for _, i := range used {
			claimed[source.positions[i]] = struct{}{}
		}
	}

	if out.Summary == "" {
		general := routed[keywords.SectionGeneral]
		lines, used := summaryFallbackLines(general.lines, tables)
		if out.Summary = ParseSummary(lines, tables); out.Summary != "" {
			claimAt(general, used)
		}
	}
	if len(out.Experience) == 0 {
		rest := unclaimedLines(seg.Blocks, claimed, tables)
		var used []int
		out.Experience, used = parseExperience(rest.lines, tables)
		claimAt(rest, used)
	}
	if len(out.Projects) == 0 {
		rest := unclaimedLines(seg.Blocks, claimed, tables)
		for _, span := range parseProjects(rest.lines, tables) {
			if len(span.record.Highlights) == 0 || strings.TrimSpace(span.record.Name) == "" {
				continue
			}
			out.Projects = append(out.Projects, span.record)
			claimAt(rest, span.lines)
		}
	}
	if len(out.Education) == 0 {
		rest := unclaimedLines(seg.Blocks, claimed, tables)
		var used []int
		out.Education, used = parseEducation(rest.lines, tables)
		claimAt(rest, used)
	}
	if len(out.Skills) == 0 {
		out.Skills = ExtractTechnologies(text, tables)
	}

	return out
}

// routeSections groups section lines by section type. Lines before the first
// heading go to the general section. A heading that names no known section, such
// as an all-caps company name, stays part of the section before it.
func routeSections(seg segment.Result, tables *keywords.Tables) map[string]*sectionLines {
	routed := map[string]*sectionLines{
		keywords.SectionGeneral:    {},
		keywords.SectionSummary:    {},
		keywords.SectionExperience: {},
		keywords.SectionProjects:   {},
		keywords.SectionEducation:  {},
		keywords.SectionSkills:     {},
		keywords.SectionOther:      {},
	}
	bucket := func(kind string) *sectionLines {
		if _, ok := routed[kind]; !ok {
			routed[kind] = &sectionLines{}
		}
		return routed[kind]
	}

	current := keywords.SectionGeneral
	pos := 0
	for _, section := range seg.Sections {
		if pos < len(seg.Blocks) && seg.Blocks[pos].Kind == types.BlockHeading {
			if kind, ok := tables.SectionType(section.Heading); ok {
				current = kind
			} else {
				bucket(current).add(seg.Blocks[pos].Text, pos)
			}
			pos++
		}
		for _, line := range section.Lines {
			bucket(current).add(line, pos)
			pos++
		}
	}
	return routed
}

// unclaimedLines returns the document lines that no parser consumed so far,
// leaving out headings that name a known section
func unclaimedLines(blocks []types.RawBlock, claimed map[int]struct{}, tables *keywords.Tables) *sectionLines {
	rest := &sectionLines{}
	for i, block := range blocks {
		if _, done := claimed[i]; done {
			continue
		}
		if block.Kind == types.BlockHeading {
			if _, known := tables.SectionType(segment.HeadingText(block.Text)); known {
				continue
			}
		}
		rest.add(block.Text, i)
	}
	return rest
}
