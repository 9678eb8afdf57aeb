// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Default values applied by MergeWithDefaults when neither the config file nor flags set them
const (
	DefaultTimeout     = 30 * time.Second
	DefaultRetries     = 2
	DefaultConcurrency = 4
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Form     string `json:"form,omitempty"`      // Path to a form state JSON file
	Draft    string `json:"draft,omitempty"`     // Path to a previously generated draft
	Keywords string `json:"keywords,omitempty"` // Path to a YAML keyword table extension
	OutDir   string `json:"out_dir,omitempty"`   // Directory for batch output

	// Generation collaborator
	TimeoutSeconds int `json:"timeout_seconds,omitempty"` // Deadline for the external draft
	Retries        int `json:"retries,omitempty"`         // Attempts after the first failure
	Concurrency    int `json:"concurrency,omitempty"`     // Parallel forms in batch mode

	// Behavior
	FoldProjects bool   `json:"fold_projects,omitempty"` // Fold projects into experience
	Seed         uint64 `json:"seed,omitempty"`          // Seed for varied verb choice, 0 keeps the first verb
	Verbose      bool   `json:"verbose,omitempty"`       // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Required inputs are checked by the commands after flags are merged.
func (c *Config) Validate() error {
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'timeout_seconds' must be non-negative")
	}
	if c.Retries < 0 {
		return fmt.Errorf("config error: 'retries' must be non-negative")
	}
	if c.Concurrency < 0 {
		return fmt.Errorf("config error: 'concurrency' must be non-negative")
	}

	files := []struct{ name, path string }{
		{"form", c.Form},
		{"draft", c.Draft},
		{"keywords", c.Keywords},
	}
	for _, f := range files {
		if f.path == "" {
			continue
		}
		if _, err := os.Stat(f.path); os.IsNotExist(err) {
			return fmt.Errorf("config error: %s file not found: %s", f.name, f.path)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Form == "" {
		result.Form = defaults.Form
	}
	if result.Draft == "" {
		result.Draft = defaults.Draft
	}
	if result.Keywords == "" {
		result.Keywords = defaults.Keywords
	}
	if result.OutDir == "" {
		result.OutDir = defaults.OutDir
	}
	if result.Seed == 0 {
		result.Seed = defaults.Seed
	}

	result.TimeoutSeconds = firstPositive(result.TimeoutSeconds, defaults.TimeoutSeconds, int(DefaultTimeout/time.Second))
	result.Retries = firstPositive(result.Retries, defaults.Retries, DefaultRetries)
	result.Concurrency = firstPositive(result.Concurrency, defaults.Concurrency, DefaultConcurrency)

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// Timeout returns the configured deadline as a duration
func (c *Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return DefaultTimeout
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func firstPositive(values ...int) int {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}
	return 0
}
