package merge

import (
	"strings"

	"github.com/jonathan/resume-drafter/internal/types"
)

// Strategy derives one identity key for an item, or "" when it does not apply
type Strategy[T any] func(item T) string

// Resolver evaluates identity strategies in order
type Resolver[T any] struct {
	strategies []Strategy[T]
}

// NewResolver returns a Resolver that tries strategies in the given order
func NewResolver[T any](strategies ...Strategy[T]) Resolver[T] {
	return Resolver[T]{strategies: strategies}
}

// Keys returns every non-empty key of item in strategy order
func (r Resolver[T]) Keys(item T) []string {
	keys := make([]string, 0, len(r.strategies))
	for _, strategy := range r.strategies {
		if key := strategy(item); key != "" {
			keys = append(keys, key)
		}
	}
	return keys
}

// Resolve returns the first non-empty key of item
func (r Resolver[T]) Resolve(item T) string {
	for _, strategy := range r.strategies {
		if key := strategy(item); key != "" {
			return key
		}
	}
	return ""
}

func idKey(id string) string {
	if id = strings.TrimSpace(id); id == "" {
		return ""
	}
	return "id:" + id
}

// fallbackHash returns the content hash of text only when the record has no
// canonical key, so unrelated records sharing content never collide
func fallbackHash(canonical, text string) string {
	if canonical != "" {
		return ""
	}
	return contentHash(text)
}

func experienceCanonical(e types.ExperienceRecord) string {
	return canonicalKey(e.Company, e.Role, DateKey(e.StartDate))
}

func projectCanonical(p types.ProjectRecord) string {
	detail := p.Summary
	if strings.TrimSpace(detail) == "" {
		detail = strings.Join(p.Highlights, " ")
	}
	return canonicalKey(p.Name, detail)
}

func educationCanonical(e types.EducationRecord) string {
	return canonicalKey(e.School, e.Degree, DateKey(e.StartDate))
}

// ExperienceResolver keys experience by id, then company/role/start, then
// achievement text for records without a heading
var ExperienceResolver = NewResolver[types.ExperienceRecord](
	func(e types.ExperienceRecord) string { return idKey(e.ID) },
	experienceCanonical,
	func(e types.ExperienceRecord) string {
		return fallbackHash(experienceCanonical(e), strings.Join(e.Achievements, " "))
	},
)

// ProjectResolver keys projects by id, then name and summary, then highlight
// text for records with neither
var ProjectResolver = NewResolver[types.ProjectRecord](
	func(p types.ProjectRecord) string { return idKey(p.ID) },
	projectCanonical,
	func(p types.ProjectRecord) string {
		return fallbackHash(projectCanonical(p), strings.Join(p.Highlights, " "))
	},
)

// EducationResolver keys education by id, then school/degree/start, then field
// for records without either
var EducationResolver = NewResolver[types.EducationRecord](
	func(e types.EducationRecord) string { return idKey(e.ID) },
	educationCanonical,
	func(e types.EducationRecord) string { return fallbackHash(educationCanonical(e), e.Field) },
)

// keyedIndex maps every key of an item to the item's position
type keyedIndex[T any] struct {
	resolver  Resolver[T]
	positions map[string]int
}

func newKeyedIndex[T any](resolver Resolver[T]) *keyedIndex[T] {
	return &keyedIndex[T]{resolver: resolver, positions: make(map[string]int)}
}

// lookup returns the position registered under the first matching key of item
func (k *keyedIndex[T]) lookup(item T) (int, bool) {
	for _, key := range k.resolver.Keys(item) {
		if pos, ok := k.positions[key]; ok {
			return pos, true
		}
	}
	return 0, false
}

// add registers the keys of item at pos without replacing earlier registrations
func (k *keyedIndex[T]) add(item T, pos int) {
	for _, key := range k.resolver.Keys(item) {
		if _, taken := k.positions[key]; !taken {
			k.positions[key] = pos
		}
	}
}
