package experience

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-drafter/internal/types"
)

// LoadForm loads form state from a JSON file
func LoadForm(path string) (*types.FormState, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}
	return ParseForm(content)
}

// ParseForm decodes form state from JSON bytes
func ParseForm(content []byte) (*types.FormState, error) {
	var form types.FormState
	if err := json.Unmarshal(content, &form); err != nil {
		return nil, &LoadError{
			Message: "failed to unmarshal JSON",
			Cause:   err,
		}
	}
	return &form, nil
}

// CheckForm validates the form's tagged fields. Callers treat the result as a
// warning; drafting works on forms that fail validation.
func CheckForm(form *types.FormState) error {
	if form == nil {
		return &NormalizationError{Message: "form is nil"}
	}
	if err := form.Validate(); err != nil {
		return &NormalizationError{
			Message: "form validation failed",
			Cause:   err,
		}
	}
	return nil
}
