package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"precheck/internal/testutil"
)

func TestDoctorCommand_AllChecksPass(t *testing.T) {
	// Setup
	runner := testutil.NewMockCommandRunner()
	c := newTestContainer(runner)

	// Execute
	stdout, _, err := execute(t, c, "doctor")

	// Assert
	require.NoError(t, err)
	assert.Contains(t, stdout, "black installed")
	assert.Contains(t, stdout, "isort installed")
	assert.Contains(t, stdout, "mypy installed")
	assert.Contains(t, stdout, "All checks passed.")
}

func TestDoctorCommand_MissingToolFails(t *testing.T) {
	// Setup
	runner := testutil.NewMockCommandRunner()
	runner.MissingTools["black"] = true
	c := newTestContainer(runner)

	// Execute
	stdout, _, err := execute(t, c, "doctor")

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "some checks failed")
	assert.Contains(t, stdout, "install black")
	assert.NotContains(t, stdout, "All checks passed.")
}

func TestDoctorCommand_DirtyTreeWarnsButPasses(t *testing.T) {
	// Setup
	runner := testutil.NewMockCommandRunner()
	c := newTestContainer(runner)
	c.Git = &testutil.MockGit{Repository: true, Dirty: true}

	// Execute
	stdout, _, err := execute(t, c, "doctor")

	// Assert
	require.NoError(t, err)
	assert.Contains(t, stdout, "working tree clean")
	assert.Contains(t, stdout, "All checks passed.")
}

func TestDoctorCommand_ReportsBrokenConfig(t *testing.T) {
	// Setup
	runner := testutil.NewMockCommandRunner()
	c := newTestContainer(runner)
	c.ConfigErr = errors.New("parse .precheck.toml: unexpected token")

	// Execute
	stdout, _, err := execute(t, c, "doctor")

	// Assert
	require.Error(t, err)
	assert.Contains(t, stdout, "configuration valid")
	assert.Contains(t, stdout, "unexpected token")
}
