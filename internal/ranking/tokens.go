// Package ranking scores how well résumé content covers the keywords of a job description.
package ranking

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-drafter/internal/keywords"
	"github.com/jonathan/resume-drafter/internal/types"
)

var nonTokenRe = regexp.MustCompile(`[^a-z0-9\s]+`)

// Tokenize lowercases text and splits it into alphanumeric tokens
func Tokenize(text string) []string {
	return strings.Fields(nonTokenRe.ReplaceAllString(strings.ToLower(text), " "))
}

// TokenSet is a set of scoring tokens that remembers insertion order.
// Stopwords and single-character tokens are never added.
type TokenSet struct {
	tables  *keywords.Tables
	order   []string
	members map[string]struct{}
}

// NewTokenSet returns an empty set filtered by the stopwords in tables
func NewTokenSet(tables *keywords.Tables) *TokenSet {
	if tables == nil {
		tables = keywords.Default()
	}
	return &TokenSet{tables: tables, order: []string{}, members: make(map[string]struct{})}
}

// Add tokenizes each text and adds its tokens
func (s *TokenSet) Add(texts ...string) {
	for _, text := range texts {
		for _, token := range Tokenize(text) {
			s.addToken(token)
		}
	}
}

func (s *TokenSet) addToken(token string) {
	if len(token) < 2 || s.tables.IsStopword(token) {
		return
	}
	if _, ok := s.members[token]; ok {
		return
	}
	s.members[token] = struct{}{}
	s.order = append(s.order, token)
}

// Has reports whether token is in the set
func (s *TokenSet) Has(token string) bool {
	_, ok := s.members[token]
	return ok
}

// Len returns the number of tokens
func (s *TokenSet) Len() int {
	return len(s.order)
}

// Tokens returns the tokens in insertion order
func (s *TokenSet) Tokens() []string {
	return append([]string{}, s.order...)
}

// JobTokens builds the token set of a job description. Instruction keywords
// extend the set only when a job description is present.
func JobTokens(jobDescription string, instructionKeywords []string, tables *keywords.Tables) *TokenSet {
	set := NewTokenSet(tables)
	if strings.TrimSpace(jobDescription) == "" {
		return set
	}
	set.Add(jobDescription)
	set.Add(instructionKeywords...)
	return set
}

// ResumeTokens builds the token set of the candidate's technologies, achievement
// and highlight text, project summaries and explicit skills
func ResumeTokens(experience []types.ExperienceRecord, projects []types.ProjectRecord, skills []string, tables *keywords.Tables) *TokenSet {
	set := NewTokenSet(tables)
	for _, e := range experience {
		set.Add(e.Technologies...)
		set.Add(e.Achievements...)
	}
	for _, p := range projects {
		set.Add(p.Technologies...)
		set.Add(p.Highlights...)
		set.Add(p.Summary)
	}
	set.Add(skills...)
	return set
}
