// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-drafter/internal/ranking"
	"github.com/jonathan/resume-drafter/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stderr; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", pad(title))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %s │\n", pad(shorten(line, boxWidth-4)))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// pad right-fills s with spaces to the inner box width, counting runes
func pad(s string) string {
	if n := boxWidth - 4 - utf8.RuneCountInString(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

// shorten cuts s to at most limit runes, marking the cut with "..."
func shorten(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit-3]) + "..."
}

// writeList writes up to limit items as bullets, followed by a count of the rest
func writeList(sb *strings.Builder, items []string, limit int) {
	count := min(len(items), limit)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > limit {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-limit))
	}
}

// PrintSegments outputs the detected sections with their line counts.
func (p *Printer) PrintSegments(sections []types.Section) {
	if len(sections) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Detected %d sections:\n\n", len(sections)))
	for _, s := range sections {
		sb.WriteString(fmt.Sprintf("%-20s %d lines\n", shorten(s.Heading, 20), len(s.Lines)))
	}

	p.printBox("SEGMENTED TEXT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintParsedResume outputs a human-readable summary of the parsed résumé sections.
func (p *Printer) PrintParsedResume(parsed *types.ParsedResumeSections) {
	if parsed == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Blocks:      %d\n", len(parsed.Blocks)))
	sb.WriteString(fmt.Sprintf("Experience:  %d\n", len(parsed.Experience)))
	sb.WriteString(fmt.Sprintf("Projects:    %d\n", len(parsed.Projects)))
	sb.WriteString(fmt.Sprintf("Education:   %d\n", len(parsed.Education)))
	sb.WriteString("\n")

	if len(parsed.Experience) > 0 {
		sb.WriteString("Roles:\n")
		roles := make([]string, 0, len(parsed.Experience))
		for _, e := range parsed.Experience {
			roles = append(roles, strings.TrimSpace(e.Role+" @ "+e.Company))
		}
		writeList(&sb, roles, maxItemsToShow)
		sb.WriteString("\n")
	}

	if len(parsed.Skills) > 0 {
		sb.WriteString("Skills:\n")
		writeList(&sb, parsed.Skills, maxItemsToShow)
	}

	p.printBox("PARSED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintScore outputs the keyword coverage result.
func (p *Printer) PrintScore(result ranking.Result) {
	var sb strings.Builder
	if result.Score == nil {
		sb.WriteString("Score:    n/a (no job keywords)\n")
	} else {
		sb.WriteString(fmt.Sprintf("Score:    %d/100\n", *result.Score))
	}
	sb.WriteString(fmt.Sprintf("Matched:  %d keywords\n", len(result.Matched)))
	if len(result.Matched) > 0 {
		sb.WriteString("\n")
		writeList(&sb, result.Matched, maxItemsToShow)
	}

	p.printBox("ATS KEYWORD SCORE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDraft outputs the sections of a finished draft with a sample of bullets.
func (p *Printer) PrintDraft(draft *types.GeneratedDraft) {
	if draft == nil {
		return
	}

	var sb strings.Builder
	if draft.ATSScore != nil {
		sb.WriteString(fmt.Sprintf("ATS score:  %d\n", *draft.ATSScore))
	}
	sb.WriteString(fmt.Sprintf("Skills:     %d\n", len(draft.Sections.Skills)))
	sb.WriteString(fmt.Sprintf("Projects:   %d\n", len(draft.Sections.Projects)))
	sb.WriteString(fmt.Sprintf("Education:  %d\n", len(draft.Sections.Education)))
	sb.WriteString("\n")

	count := min(len(draft.Sections.Experience), 3)
	for i := 0; i < count; i++ {
		e := draft.Sections.Experience[i]
		sb.WriteString(fmt.Sprintf("%s, %s\n", e.Role, e.Company))
		writeList(&sb, e.Achievements, 2)
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(draft.Sections.Experience) > count {
		sb.WriteString(fmt.Sprintf("\n... and %d more roles", len(draft.Sections.Experience)-count))
	}

	p.printBox("GENERATED DRAFT", strings.TrimSuffix(sb.String(), "\n"))
}
