package domain

import (
	"errors"
	"fmt"
)

// Domain errors.
var (
	ErrNoSteps       = errors.New("no steps configured")
	ErrConfigExists  = errors.New("config file already exists")
	ErrToolNotFound  = errors.New("command not found")
	ErrEmptyStepName = errors.New("step name cannot be empty")
	ErrEmptyCommand  = errors.New("step command cannot be empty")
	ErrDuplicateStep = errors.New("duplicate step name")
)

// ExitCodeToolNotFound is the shell convention for a missing binary.
const ExitCodeToolNotFound = 127

// StepFailedError reports the first failing step of a run. ExitCode
// is the subprocess's own exit status and becomes the process exit
// status unmodified.
type StepFailedError struct {
	Err      error
	Step     string
	ExitCode int
}

func (e *StepFailedError) Error() string {
	return fmt.Sprintf("%s: %v", e.Step, e.Err)
}

func (e *StepFailedError) Unwrap() error { return e.Err }
