package prompts

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-drafter/internal/types"
)

// maxAttachmentChars bounds the job description and résumé text quoted in a prompt
const maxAttachmentChars = 3500

// BuildDraftPrompt renders the instruction text for a generation service.
// Records, skills and summary come from the form, or from parsed where the
// form leaves them empty.
func BuildDraftPrompt(form types.FormState, parsed types.ParsedResumeSections) string {
	experience := form.Experience
	if len(experience) == 0 {
		experience = parsed.Experience
	}
	projects := form.Projects
	if len(projects) == 0 {
		projects = parsed.Projects
	}
	education := form.Education
	if len(education) == 0 {
		education = parsed.Education
	}
	skills := form.Skills
	if len(skills) == 0 {
		skills = parsed.Skills
	}
	summary := strings.TrimSpace(form.Basics.Summary)
	if summary == "" {
		summary = parsed.Summary
	}

	p := &promptWriter{}
	p.line(MustGet(DraftingFile, "preamble"))
	if form.PreserveStrict {
		p.line(MustGet(DraftingFile, "policy-strict"))
	} else {
		p.line(MustGet(DraftingFile, "policy-flexible"))
	}
	p.line(MustGet(DraftingFile, "format"))

	basics := form.Basics
	p.section("Candidate Basics")
	p.line("Name: " + orUnknown(basics.FullName))
	p.line("Email: " + orUnknown(basics.Email))
	p.optional("Headline: ", basics.Headline)
	p.optional("Location: ", basics.Location)
	if basics.WorkAuth != nil {
		p.optional("Work Authorization: ", basics.WorkAuth.Status)
	}

	if summary != "" {
		p.section("Existing Summary")
		p.line(summary)
	}
	if len(skills) > 0 {
		p.section("Skills Provided")
		p.line(strings.Join(skills, ", "))
	}

	p.list("Goals", form.Instructions.Goals)
	p.list("Target Keywords", form.Instructions.Keywords)
	p.list("Constraints", form.Instructions.Constraints)
	if prompt := strings.TrimSpace(form.Instructions.Prompt); prompt != "" {
		p.section("Custom Prompt")
		p.line(prompt)
	}

	if len(experience) > 0 {
		p.section("Experience Provided")
		for _, e := range experience {
			end := orDefault(e.EndDate, "?")
			if e.IsCurrent() {
				end = "Present"
			}
			p.line(fmt.Sprintf("- Role: %s at %s (%s – %s)", orUnknown(e.Role), orUnknown(e.Company), orDefault(e.StartDate, "?"), end))
			p.optional("  Location: ", e.Location)
			p.optional("  Technologies: ", strings.Join(e.Technologies, ", "))
			p.numbered("  Achievements", e.Achievements)
		}
	}

	if len(projects) > 0 {
		p.section("Projects Provided")
		for _, proj := range projects {
			p.line(fmt.Sprintf("- %s: %s", orDefault(proj.Name, "Project"), proj.Summary))
			p.optional("  Technologies: ", strings.Join(proj.Technologies, ", "))
			p.numbered("  Highlights", proj.Highlights)
		}
	}

	if len(education) > 0 {
		p.section("Education Highlights (for context only)")
		for _, ed := range education {
			line := fmt.Sprintf("- %s at %s", orDefault(ed.Degree, "Program"), ed.School)
			if ed.EndDate != "" {
				line += " (" + ed.EndDate + ")"
			}
			p.line(line)
		}
	}

	if text := strings.TrimSpace(form.Attachments.JobDescriptionText); text != "" {
		p.section("Job Description (truncated)")
		p.line(truncate(text, maxAttachmentChars))
	}
	if text := strings.TrimSpace(form.Attachments.ExistingResumeText); text != "" {
		p.section("Existing Resume Text (truncated)")
		p.line(truncate(text, maxAttachmentChars))
	}

	p.section("Output Requirements")
	p.line(MustGet(DraftingFile, "output-requirements"))
	return p.String()
}

// SystemPrompt returns the role instruction that accompanies a drafting prompt
func SystemPrompt() string {
	return MustGet(DraftingFile, "system")
}

type promptWriter struct {
	lines []string
}

func (p *promptWriter) line(s string) {
	p.lines = append(p.lines, s)
}

func (p *promptWriter) section(title string) {
	p.lines = append(p.lines, "\n### "+title)
}

func (p *promptWriter) optional(label, value string) {
	if value = strings.TrimSpace(value); value != "" {
		p.line(label + value)
	}
}

func (p *promptWriter) list(title string, items []string) {
	if len(items) == 0 {
		return
	}
	p.section(title)
	for _, item := range items {
		p.line("- " + item)
	}
}

func (p *promptWriter) numbered(label string, items []string) {
	if len(items) == 0 {
		return
	}
	p.line(fmt.Sprintf("%s (%d bullets):", label, len(items)))
	for i, item := range items {
		p.line(fmt.Sprintf("    %d. %s", i+1, item))
	}
}

func (p *promptWriter) String() string {
	return strings.Join(p.lines, "\n")
}

func orUnknown(value string) string {
	return orDefault(value, "Unknown")
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func truncate(text string, limit int) string {
	if runes := []rune(text); len(runes) > limit {
		return string(runes[:limit])
	}
	return text
}
