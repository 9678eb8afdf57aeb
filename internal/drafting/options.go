// Package drafting provides functionality to assemble a tailored résumé draft from form data,
// an uploaded résumé and a job description.
package drafting

import (
	"time"

	"github.com/jonathan/resume-drafter/internal/keywords"
	"github.com/jonathan/resume-drafter/internal/rewriting"
	"github.com/jonathan/resume-drafter/internal/types"
)

// Options configures draft synthesis. The zero value is usable.
type Options struct {
	// Tables are the keyword tables; nil means keywords.Default()
	Tables *keywords.Tables
	// Picker chooses lead verbs for rewritten bullets; nil means rewriting.FirstPicker
	Picker rewriting.VerbPicker
	// FoldProjects moves project highlights into the experience section
	FoldProjects bool
	// Now is the clock used for years-of-experience estimates; nil means time.Now
	Now func() time.Time
	// Parsed holds sections already extracted from the form's résumé text;
	// nil parses the text again
	Parsed *types.ParsedResumeSections
}

func (o Options) withDefaults() Options {
	if o.Tables == nil {
		o.Tables = keywords.Default()
	}
	if o.Picker == nil {
		o.Picker = rewriting.FirstPicker{}
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}
