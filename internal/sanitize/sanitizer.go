package sanitize

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/resume-drafter/internal/keywords"
	"github.com/jonathan/resume-drafter/internal/types"
)

// Field length limits, in characters
const (
	SummaryLimit        = 280
	ProjectSummaryLimit = 260
	BulletLimit         = 220
	HeadingLimit        = 90
	SkillLimit          = 40
	// MinViableLength is the shortest truncated value worth keeping
	MinViableLength = 40
)

// Ellipsis marks a truncated value
const Ellipsis = "…"

// Sanitizer cleans narrative text for one candidate.
// It holds the candidate's personal tokens and is safe for concurrent use.
type Sanitizer struct {
	tables *keywords.Tables
	// lowercase tokens matched case-insensitively (email, handles, phone digits)
	tokens map[string]struct{}
	// name parts matched only when capitalized in the text
	nameParts map[string]struct{}
	fullName  string
}

var plain = New(types.Basics{}, nil)

// Sanitize cleans text at the bullet limit with no personal tokens
func Sanitize(text string) string {
	return plain.Narrative(text, BulletLimit)
}

// New builds a Sanitizer that also strips the personal tokens found in basics
func New(basics types.Basics, tables *keywords.Tables) *Sanitizer {
	if tables == nil {
		tables = keywords.Default()
	}
	s := &Sanitizer{
		tables:    tables,
		tokens:    make(map[string]struct{}),
		nameParts: make(map[string]struct{}),
		fullName:  strings.ToLower(CollapseSpace(basics.FullName)),
	}

	for _, part := range strings.Fields(basics.FullName) {
		part = strings.Trim(part, ".,")
		if utf8.RuneCountInString(part) >= 2 {
			s.nameParts[strings.ToLower(part)] = struct{}{}
		}
	}

	if email := strings.ToLower(strings.TrimSpace(basics.Email)); email != "" {
		s.tokens[email] = struct{}{}
		if local, _, ok := strings.Cut(email, "@"); ok && len(local) >= 3 {
			s.tokens[local] = struct{}{}
		}
	}

	if digits := digitsOnly(basics.Phone); len(digits) >= 7 {
		s.tokens[digits] = struct{}{}
	}

	for _, link := range []string{basics.LinkedIn, basics.GitHub, basics.Portfolio} {
		if handle := profileHandle(link); len(handle) >= 3 {
			s.tokens[handle] = struct{}{}
		}
	}

	return s
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// profileHandle returns the last path segment of a profile link
func profileHandle(link string) string {
	link = strings.TrimRight(strings.ToLower(strings.TrimSpace(link)), "/")
	if link == "" {
		return ""
	}
	if idx := strings.LastIndex(link, "/"); idx >= 0 {
		link = link[idx+1:]
	}
	return strings.TrimPrefix(link, "@")
}

// HasTokens reports whether any personal tokens were collected
func (s *Sanitizer) HasTokens() bool {
	return len(s.tokens) > 0 || len(s.nameParts) > 0
}

func trimWord(w string) string {
	return strings.TrimFunc(w, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '@'
	})
}

func (s *Sanitizer) isPersonalWord(word string) bool {
	core := trimWord(word)
	if core == "" {
		return false
	}
	lower := strings.ToLower(core)
	if _, ok := s.tokens[lower]; ok {
		return true
	}
	if d := digitsOnly(core); len(d) >= 7 {
		if _, ok := s.tokens[d]; ok {
			return true
		}
	}
	if _, ok := s.nameParts[lower]; ok {
		first, _ := utf8.DecodeRuneInString(core)
		return unicode.IsUpper(first)
	}
	return false
}

// ContainsToken reports whether text mentions the candidate's name, email, phone or profile handle
func (s *Sanitizer) ContainsToken(text string) bool {
	if text == "" || !s.HasTokens() {
		return false
	}
	if s.fullName != "" && strings.Contains(strings.ToLower(text), s.fullName) {
		return true
	}
	for _, w := range strings.Fields(text) {
		if s.isPersonalWord(w) {
			return true
		}
	}
	return false
}

// StripTokens removes every personal token from text
func (s *Sanitizer) StripTokens(text string) string {
	if !s.HasTokens() {
		return text
	}
	words := strings.Fields(text)
	kept := words[:0]
	for _, w := range words {
		if !s.isPersonalWord(w) {
			kept = append(kept, w)
		}
	}
	return strings.Join(kept, " ")
}

// ContainsContactNoise reports whether text carries contact details
func (s *Sanitizer) ContainsContactNoise(text string) bool {
	return ContainsContactNoise(text)
}

// IsNoise reports whether the whole value is a generic noise word
func (s *Sanitizer) IsNoise(text string) bool {
	return s.tables.IsNoise(text)
}

// Narrative cleans a free-text value for a field with the given length limit.
// Values carrying contact details or consisting only of a noise word are rejected
// with "". Personal tokens are stripped. Overlong values are cut at the last whole
// word and marked with an ellipsis, or rejected when too little text would remain.
func (s *Sanitizer) Narrative(text string, limit int) string {
	cleaned := CollapseSpace(text)
	cleaned = strings.TrimSpace(s.tables.StripBullet(cleaned))
	if cleaned == "" {
		return ""
	}
	if ContainsContactNoise(cleaned) {
		return ""
	}
	if s.tables.IsNoise(cleaned) {
		return ""
	}

	cleaned = strings.TrimSpace(s.StripTokens(cleaned))
	cleaned = strings.TrimLeft(cleaned, ",;:-– ")
	if cleaned == "" || s.tables.IsNoise(cleaned) {
		return ""
	}

	if limit > 0 && utf8.RuneCountInString(cleaned) > limit {
		return Truncate(cleaned, limit)
	}
	return cleaned
}

// Truncate cuts text to at most limit characters at the last whole word and appends
// an ellipsis. It returns "" unless more than MinViableLength characters remain.
func Truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	keep := limit - utf8.RuneCountInString(Ellipsis)
	if keep <= 0 {
		return ""
	}
	cut := string(runes[:keep])
	if !unicode.IsSpace(runes[keep]) {
		idx := strings.LastIndexFunc(cut, unicode.IsSpace)
		if idx < 0 {
			return ""
		}
		cut = cut[:idx]
	}
	cut = strings.TrimRightFunc(cut, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsPunct(r)
	})
	if utf8.RuneCountInString(cut) <= MinViableLength {
		return ""
	}
	return cut + Ellipsis
}

// Heading cleans a short title such as a role, company or project name.
// Values with bullets, line breaks, emails or more than 90 characters are rejected.
func (s *Sanitizer) Heading(value string) string {
	return Heading(value)
}

// Heading cleans a short title without personal-token handling
func Heading(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ""
	}
	if strings.ContainsAny(trimmed, "•\n") {
		return ""
	}
	if ContainsEmail(trimmed) {
		return ""
	}
	if utf8.RuneCountInString(trimmed) > HeadingLimit {
		return ""
	}
	return CollapseSpace(trimmed)
}

// FilterSkills drops skills that are noise, contact details, personal tokens or
// overlong, and removes case-insensitive duplicates keeping the first spelling
func (s *Sanitizer) FilterSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	seen := make(map[string]struct{}, len(skills))
	for _, skill := range skills {
		skill = CollapseSpace(skill)
		if skill == "" || utf8.RuneCountInString(skill) > SkillLimit {
			continue
		}
		if ContainsContactNoise(skill) || s.ContainsToken(skill) || s.tables.IsNoise(skill) {
			continue
		}
		key := strings.ToLower(skill)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, skill)
	}
	return out
}
