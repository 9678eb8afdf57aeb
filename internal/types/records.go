// Package types provides type definitions for structured data used throughout the resume-drafter system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ExperienceRecord represents a single role held at a company
type ExperienceRecord struct {
	ID           string   `json:"id,omitempty"`
	Role         string   `json:"role"`
	Company      string   `json:"company"`
	Location     string   `json:"location,omitempty"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate,omitempty"`
	Current      *bool    `json:"current,omitempty"`
	Achievements []string `json:"achievements"`
	Technologies []string `json:"technologies,omitempty"`
}

// IsCurrent reports whether the record is explicitly marked as ongoing
func (e ExperienceRecord) IsCurrent() bool {
	return e.Current != nil && *e.Current
}

// ProjectRecord represents a personal or professional project
type ProjectRecord struct {
	ID           string   `json:"id,omitempty"`
	Name         string   `json:"name"`
	URL          string   `json:"url,omitempty"`
	Summary      string   `json:"summary"`
	Highlights   []string `json:"highlights"`
	Technologies []string `json:"technologies,omitempty"`
}

// EducationRecord represents a degree or program at a school
type EducationRecord struct {
	ID        string `json:"id,omitempty"`
	School    string `json:"school"`
	Degree    string `json:"degree"`
	Field     string `json:"field,omitempty"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
	Location  string `json:"location,omitempty"`
	Grade     string `json:"grade,omitempty"`
}

// BoolPtr returns a pointer to b
func BoolPtr(b bool) *bool {
	return &b
}
