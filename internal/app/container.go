// Package app provides the dependency injection container for the application.
package app

import (
	"precheck/internal/domain"
	"precheck/internal/infra/config"
	"precheck/internal/infra/executor"
	"precheck/internal/infra/git"
	"precheck/internal/infra/logging"
	"precheck/internal/usecase"
)

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for
// use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Runner       domain.CommandRunner
	ConfigLoader domain.ConfigLoader
	Git          domain.Git
	Logger       domain.Logger

	// Config is the loaded configuration. When ConfigErr is non-nil
	// the config file exists but cannot be used and Config holds the
	// defaults; commands that need the file decide how to surface it.
	Config    *domain.Config
	ConfigErr error

	// WorkDir is the directory checks run against.
	WorkDir string

	closeLogger func() error
}

// New creates a Container for the given working directory.
func New(cwd string) (*Container, error) {
	loader := config.NewLoader(cwd)

	cfg, cfgErr := loader.Load()
	if cfgErr != nil {
		cfg = domain.NewDefaultConfig()
	}

	logger := logging.New(cfg.Log.File, logging.ParseLevel(cfg.Log.Level))

	return &Container{
		Runner:       executor.NewClient(cwd),
		ConfigLoader: loader,
		Git:          git.NewClient(),
		Logger:       logger,
		Config:       cfg,
		ConfigErr:    cfgErr,
		WorkDir:      cwd,
		closeLogger:  logger.Close,
	}, nil
}

// Close releases resources held by the container.
func (c *Container) Close() error {
	if c.closeLogger != nil {
		return c.closeLogger()
	}
	return nil
}

// RunChecksUseCase creates the RunChecks use case with the given reporter.
func (c *Container) RunChecksUseCase(reporter domain.RunReporter) *usecase.RunChecks {
	return usecase.NewRunChecks(c.Runner, reporter, c.Logger)
}

// DoctorUseCase creates the Doctor use case.
func (c *Container) DoctorUseCase() *usecase.Doctor {
	return usecase.NewDoctor(c.Runner, c.Git)
}

// InitConfigUseCase creates the InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig()
}
