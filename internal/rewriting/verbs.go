package rewriting

import (
	"math/rand/v2"
	"sync"
)

// VerbPicker chooses one of several action verbs
type VerbPicker interface {
	Pick(choices []string) string
}

// FirstPicker always picks the first choice
type FirstPicker struct{}

// Pick returns the first choice, or "" when there are none
func (FirstPicker) Pick(choices []string) string {
	if len(choices) == 0 {
		return ""
	}
	return choices[0]
}

// SeededPicker picks uniformly at random from a seeded source.
// It is safe for concurrent use.
type SeededPicker struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeededPicker returns a picker whose sequence is fixed by seed
func NewSeededPicker(seed uint64) *SeededPicker {
	return &SeededPicker{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Pick returns a random choice, or "" when there are none
func (p *SeededPicker) Pick(choices []string) string {
	if len(choices) == 0 {
		return ""
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return choices[p.rng.IntN(len(choices))]
}

func orFirst(p VerbPicker) VerbPicker {
	if p == nil {
		return FirstPicker{}
	}
	return p
}
