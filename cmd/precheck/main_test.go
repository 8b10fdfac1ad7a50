package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"precheck/internal/domain"
)

func TestExitCode_PropagatesStepExitCode(t *testing.T) {
	err := &domain.StepFailedError{Step: "isort", ExitCode: 1, Err: errors.New("exit status 1")}

	assert.Equal(t, 1, exitCode(err))
}

func TestExitCode_ToolNotFound(t *testing.T) {
	err := &domain.StepFailedError{
		Step:     "black",
		ExitCode: domain.ExitCodeToolNotFound,
		Err:      domain.ErrToolNotFound,
	}

	assert.Equal(t, 127, exitCode(err))
}

func TestExitCode_SignalTerminatedMapsToOne(t *testing.T) {
	err := &domain.StepFailedError{Step: "mypy", ExitCode: -1, Err: errors.New("signal: killed")}

	assert.Equal(t, 1, exitCode(err))
}

func TestExitCode_GenericErrorIsOne(t *testing.T) {
	assert.Equal(t, 1, exitCode(errors.New("boom")))
}

func TestExitCode_WrappedStepError(t *testing.T) {
	stepErr := &domain.StepFailedError{Step: "mypy", ExitCode: 2, Err: errors.New("exit status 2")}
	err := fmt.Errorf("run checks: %w", stepErr)

	assert.Equal(t, 2, exitCode(err))
}
