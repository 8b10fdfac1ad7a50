// Package usecase contains the application use cases.
package usecase

import (
	"context"
	"fmt"

	"precheck/internal/domain"
)

// RunChecksInput contains the parameters for a check run.
type RunChecksInput struct {
	Steps []domain.Step // Steps to run, in order (required)
}

// RunChecks is the use case for running the check sequence.
// It executes the steps strictly in order and stops at the first
// failing step; later steps are never started.
type RunChecks struct {
	runner   domain.CommandRunner
	reporter domain.RunReporter
	logger   domain.Logger
}

// NewRunChecks creates a new RunChecks use case.
func NewRunChecks(runner domain.CommandRunner, reporter domain.RunReporter, logger domain.Logger) *RunChecks {
	return &RunChecks{
		runner:   runner,
		reporter: reporter,
		logger:   logger,
	}
}

// Execute runs the steps in order. The first non-zero exit terminates
// the run with a StepFailedError carrying that step's exit code.
func (uc *RunChecks) Execute(ctx context.Context, in RunChecksInput) error {
	if len(in.Steps) == 0 {
		return domain.ErrNoSteps
	}

	for _, step := range in.Steps {
		uc.reporter.StepStarted(step)
		uc.logger.Info("run", "starting "+step.Name)

		code, err := uc.runner.Run(ctx, step)
		if err != nil {
			uc.reporter.StepFailed(step, code)
			uc.logger.Error("run", fmt.Sprintf("%s failed with exit code %d", step.Name, code))
			return &domain.StepFailedError{Step: step.Name, ExitCode: code, Err: err}
		}

		uc.reporter.StepPassed(step)
		uc.logger.Info("run", step.Name+" passed")
	}

	return nil
}
