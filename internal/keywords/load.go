package keywords

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadError represents an error reading a keyword table file
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// Load reads a YAML keyword file and returns the default tables extended with its lists.
// An empty path returns the defaults.
func Load(path string) (*Tables, error) {
	tables := Default()
	if path == "" {
		return tables, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read keyword file %s", path),
			Cause:   err,
		}
	}

	var extra Tables
	if err := yaml.Unmarshal(data, &extra); err != nil {
		return nil, &LoadError{
			Message: "failed to parse keyword YAML",
			Cause:   err,
		}
	}

	tables.Extend(&extra)
	return tables, nil
}
