package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-drafter/internal/keywords"
	"github.com/jonathan/resume-drafter/internal/sanitize"
	"github.com/jonathan/resume-drafter/internal/segment"
	"github.com/jonathan/resume-drafter/internal/types"
)

var (
	techLineRe    = regexp.MustCompile(`(?i)^(?:tech(?:nologies)?|tech stack|stack|built with|tools)\s*:\s*(.+)$`)
	listSplitRe   = regexp.MustCompile(`\s*(?:,|\||;|•|·|▪|●)\s*`)
	nameSummaryRe = regexp.MustCompile(`^(.{2,60}?)\s+(?:[-–—]|:)\s+(.+)$`)
)

// ParseProjects converts the lines of a projects section into records.
// The first plain line after a flush names a project, the next plain line is its
// summary, and bullet or action-verb lines become highlights.
func ParseProjects(lines []string, tables *keywords.Tables) []types.ProjectRecord {
	spans := parseProjects(lines, tables)
	projects := make([]types.ProjectRecord, 0, len(spans))
	for _, span := range spans {
		projects = append(projects, span.record)
	}
	return projects
}

// projectSpan is a parsed project with the indexes of the lines it came from
type projectSpan struct {
	record types.ProjectRecord
	lines  []int
}

type projectParser struct {
	tables   *keywords.Tables
	spans    []projectSpan
	cur      *types.ProjectRecord
	curLines []int
}

func parseProjects(lines []string, tables *keywords.Tables) []projectSpan {
	p := projectParser{tables: tables, spans: []projectSpan{}}
	for i, line := range lines {
		line = strings.TrimSpace(line)
		isBullet := segment.HasBulletGlyph(line, tables)
		text := line
		if isBullet {
			text = tables.StripBullet(line)
		}
		if text == "" {
			continue
		}
		p.feed(text, isBullet)
		p.curLines = append(p.curLines, i)
	}
	p.flush()
	return p.spans
}

func (p *projectParser) flush() {
	cur := p.cur
	if cur != nil && (cur.Name != "" || cur.Summary != "" || len(cur.Highlights) > 0) {
		text := strings.Join(append([]string{cur.Summary}, cur.Highlights...), " ")
		for _, tech := range ExtractTechnologies(text, p.tables) {
			cur.Technologies = appendUnique(cur.Technologies, tech)
		}
		p.spans = append(p.spans, projectSpan{record: *cur, lines: p.curLines})
	}
	p.cur = nil
	p.curLines = nil
}

func (p *projectParser) open() {
	p.flush()
	p.cur = &types.ProjectRecord{Highlights: []string{}, Technologies: []string{}}
}

// feed adds one non-empty line to the open project, opening a new one when needed
func (p *projectParser) feed(text string, isBullet bool) {
	if m := techLineRe.FindStringSubmatch(text); m != nil {
		if p.cur == nil {
			p.open()
		}
		for _, tech := range listSplitRe.Split(m[1], -1) {
			if tech = NormalizeSkillName(tech); tech != "" {
				p.cur.Technologies = appendUnique(p.cur.Technologies, tech)
			}
		}
		return
	}

	if isBullet || p.tables.StartsWithActionVerb(text) {
		if p.cur == nil {
			p.open()
		}
		p.cur.Highlights = appendUnique(p.cur.Highlights, text)
		return
	}

	if p.cur == nil || len(p.cur.Highlights) > 0 {
		p.open()
		setProjectName(p.cur, text)
		return
	}

	cur := p.cur
	if cur.Name == "" {
		setProjectName(cur, text)
		return
	}
	if cur.URL == "" {
		if url := sanitize.FindURL(text); url != "" {
			cur.URL = url
			if text = sanitize.RemoveURLs(text); text == "" {
				return
			}
		}
	}
	switch {
	case cur.Summary == "":
		cur.Summary = text
	case !endsSentence(cur.Summary):
		cur.Summary += " " + text
	default:
		cur.Highlights = appendUnique(cur.Highlights, text)
	}
}

// setProjectName fills name, URL and an inline summary from a project title line
func setProjectName(p *types.ProjectRecord, text string) {
	if url := sanitize.FindURL(text); url != "" {
		p.URL = url
		text = sanitize.RemoveURLs(text)
		text = strings.TrimRight(strings.TrimSpace(text), "(-–—:|")
		text = strings.TrimSpace(strings.ReplaceAll(text, "()", ""))
	}
	if m := nameSummaryRe.FindStringSubmatch(text); m != nil && len(strings.Fields(m[2])) >= 4 {
		p.Name = strings.TrimSpace(m[1])
		p.Summary = strings.TrimSpace(m[2])
		return
	}
	p.Name = text
}

// appendUnique appends value unless an equal value (ignoring case and spacing) is present
func appendUnique(list []string, value string) []string {
	key := strings.ToLower(sanitize.CollapseSpace(value))
	if key == "" {
		return list
	}
	for _, existing := range list {
		if strings.ToLower(sanitize.CollapseSpace(existing)) == key {
			return list
		}
	}
	return append(list, value)
}
