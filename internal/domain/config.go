// Package domain contains the core entities and ports of precheck.
package domain

import (
	_ "embed"
	"fmt"
)

//go:embed config_template.toml
var configTemplateContent string

// ConfigFileName is the runner config file looked up in the working
// directory.
const ConfigFileName = ".precheck.toml"

// Config represents the runner configuration.
type Config struct {
	Steps []StepConfig `toml:"steps"`
	Log   LogConfig    `toml:"log"`
}

// StepConfig defines one check step from a [[steps]] block.
type StepConfig struct {
	Name    string   `toml:"name"`
	Command string   `toml:"command"`
	Args    []string `toml:"args,omitempty"`
}

// LogConfig holds settings from the [log] section. Logging is
// disabled when File is empty.
type LogConfig struct {
	File  string `toml:"file,omitempty"`
	Level string `toml:"level,omitempty"`
}

// NewDefaultConfig returns the built-in configuration: black, isort
// and mypy run against the current directory, in that order.
func NewDefaultConfig() *Config {
	cfg := &Config{}
	for _, s := range DefaultSteps() {
		cfg.Steps = append(cfg.Steps, StepConfig{
			Name:    s.Name,
			Command: s.Command,
			Args:    s.Args,
		})
	}
	return cfg
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if len(c.Steps) == 0 {
		return ErrNoSteps
	}
	seen := make(map[string]bool, len(c.Steps))
	for i, s := range c.Steps {
		if s.Name == "" {
			return fmt.Errorf("steps[%d]: %w", i, ErrEmptyStepName)
		}
		if s.Command == "" {
			return fmt.Errorf("steps[%d] (%s): %w", i, s.Name, ErrEmptyCommand)
		}
		if seen[s.Name] {
			return fmt.Errorf("steps[%d] (%s): %w", i, s.Name, ErrDuplicateStep)
		}
		seen[s.Name] = true
	}
	return nil
}

// StepList converts the configured steps into runnable Steps,
// preserving order.
func (c *Config) StepList() []Step {
	steps := make([]Step, 0, len(c.Steps))
	for _, s := range c.Steps {
		steps = append(steps, Step{Name: s.Name, Command: s.Command, Args: s.Args})
	}
	return steps
}

// ConfigTemplate returns the commented template written by
// 'precheck init'.
func ConfigTemplate() string {
	return configTemplateContent
}
