// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"precheck/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from a TOML file in the working
// directory.
type Loader struct {
	dir string
}

// NewLoader creates a new Loader reading from dir.
func NewLoader(dir string) *Loader {
	return &Loader{dir: dir}
}

// Path returns the config file location.
func (l *Loader) Path() string {
	return filepath.Join(l.dir, domain.ConfigFileName)
}

// Load returns the configuration from the config file, or the
// default configuration when no file exists.
func (l *Loader) Load() (*domain.Config, error) {
	data, err := os.ReadFile(l.Path())
	if errors.Is(err, os.ErrNotExist) {
		return domain.NewDefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg domain.Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", domain.ConfigFileName, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", domain.ConfigFileName, err)
	}
	return &cfg, nil
}
