package usecase

import (
	"context"
	"fmt"
	"os"

	"precheck/internal/domain"
)

// InitConfigInput contains the parameters for InitConfig.
type InitConfigInput struct {
	Path string // Path the config file is written to (required)
}

// InitConfigOutput contains the result of InitConfig.
type InitConfigOutput struct {
	Path string // Path to the created config file
}

// InitConfig writes the default configuration template.
type InitConfig struct{}

// NewInitConfig creates a new InitConfig use case.
func NewInitConfig() *InitConfig {
	return &InitConfig{}
}

// Execute writes the config template unless the file already exists.
func (uc *InitConfig) Execute(_ context.Context, in InitConfigInput) (*InitConfigOutput, error) {
	if _, err := os.Stat(in.Path); err == nil {
		return nil, domain.ErrConfigExists
	}

	if err := os.WriteFile(in.Path, []byte(domain.ConfigTemplate()), 0o600); err != nil {
		return nil, fmt.Errorf("write config file: %w", err)
	}

	return &InitConfigOutput{Path: in.Path}, nil
}
