// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Document   string `json:"document,omitempty" validate:"omitempty,file"`    // Path to content document (JSON or YAML)
	SkillsFile string `json:"skills_file,omitempty" validate:"omitempty,file"` // Path to skill-block markdown file
	Template   string `json:"template,omitempty" validate:"omitempty,file"`    // Path to page template override
	Output     string `json:"output,omitempty"`                                // Path to write rendered HTML to

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed summaries while running
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
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

// Validate checks that the configuration has valid values. Path fields must
// point at existing files when set; the output path is exempt since it is
// created on render.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty string fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Document == "" {
		result.Document = defaults.Document
	}
	if result.SkillsFile == "" {
		result.SkillsFile = defaults.SkillsFile
	}
	if result.Template == "" {
		result.Template = defaults.Template
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
