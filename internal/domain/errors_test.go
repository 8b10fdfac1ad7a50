package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStepFailedError_MessageAndUnwrap(t *testing.T) {
	cause := errors.New("exit status 2")
	err := &StepFailedError{Step: "mypy", ExitCode: 2, Err: cause}

	assert.Equal(t, "mypy: exit status 2", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestStepFailedError_WrapsToolNotFound(t *testing.T) {
	err := &StepFailedError{
		Step:     "black",
		ExitCode: ExitCodeToolNotFound,
		Err:      ErrToolNotFound,
	}

	assert.ErrorIs(t, err, ErrToolNotFound)
	assert.Equal(t, 127, err.ExitCode)
}
