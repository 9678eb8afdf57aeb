// Package ids mints identifiers for structured career records.
package ids

import (
	"github.com/google/uuid"
)

// Prefixes used for minted record identifiers
const (
	ExperiencePrefix = "exp"
	ProjectPrefix    = "proj"
	EducationPrefix  = "edu"
)

// New returns a random identifier with the given prefix, e.g. "exp-1b4e28ba".
// Safe for concurrent use; only uniqueness is guaranteed, not ordering.
func New(prefix string) string {
	id := uuid.NewString()
	if prefix == "" {
		return id
	}
	return prefix + "-" + id
}

// Experience returns a fresh experience record id
func Experience() string { return New(ExperiencePrefix) }

// Project returns a fresh project record id
func Project() string { return New(ProjectPrefix) }

// Education returns a fresh education record id
func Education() string { return New(EducationPrefix) }
