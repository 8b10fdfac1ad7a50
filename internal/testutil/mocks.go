// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"fmt"

	"precheck/internal/domain"
)

// MockCommandRunner is a test double for domain.CommandRunner.
// ExitCodes scripts the result per command name; commands without an
// entry exit 0. MissingTools marks commands as absent from PATH.
type MockCommandRunner struct {
	ExitCodes    map[string]int
	MissingTools map[string]bool
	Ran          []domain.Step // Steps passed to Run, in call order
}

// NewMockCommandRunner creates a new MockCommandRunner with initialized maps.
func NewMockCommandRunner() *MockCommandRunner {
	return &MockCommandRunner{
		ExitCodes:    make(map[string]int),
		MissingTools: make(map[string]bool),
	}
}

// Run records the step and returns the scripted exit code.
func (m *MockCommandRunner) Run(_ context.Context, step domain.Step) (int, error) {
	m.Ran = append(m.Ran, step)
	if m.MissingTools[step.Command] {
		return domain.ExitCodeToolNotFound, fmt.Errorf("%s: %w", step.Command, domain.ErrToolNotFound)
	}
	if code := m.ExitCodes[step.Command]; code != 0 {
		return code, fmt.Errorf("exit status %d", code)
	}
	return 0, nil
}

// LookPath resolves unless the command is scripted as missing.
func (m *MockCommandRunner) LookPath(command string) (string, error) {
	if m.MissingTools[command] {
		return "", fmt.Errorf("%s: %w", command, domain.ErrToolNotFound)
	}
	return "/usr/bin/" + command, nil
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Cfg      *domain.Config
	LoadErr  error
	FilePath string
}

// Load returns the scripted config or error.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.Cfg != nil {
		return m.Cfg, nil
	}
	return domain.NewDefaultConfig(), nil
}

// Path returns the scripted config file path.
func (m *MockConfigLoader) Path() string {
	return m.FilePath
}

// MockGit is a test double for domain.Git.
type MockGit struct {
	StatusErr  error
	Repository bool
	Dirty      bool
}

// IsRepository returns the scripted value.
func (m *MockGit) IsRepository(string) bool {
	return m.Repository
}

// HasUncommittedChanges returns the scripted state.
func (m *MockGit) HasUncommittedChanges(string) (bool, error) {
	if m.StatusErr != nil {
		return false, m.StatusErr
	}
	return m.Dirty, nil
}

// RecordingReporter captures reporter notifications for assertions.
// Starting/OK events mirror the transcript lines the CLI prints.
type RecordingReporter struct {
	Events []string
}

// StepStarted records a "Starting <name>" event.
func (r *RecordingReporter) StepStarted(step domain.Step) {
	r.Events = append(r.Events, "Starting "+step.Name)
}

// StepPassed records an "OK" event.
func (r *RecordingReporter) StepPassed(domain.Step) {
	r.Events = append(r.Events, "OK")
}

// StepFailed records a failure event.
func (r *RecordingReporter) StepFailed(step domain.Step, exitCode int) {
	r.Events = append(r.Events, fmt.Sprintf("FAIL %s %d", step.Name, exitCode))
}

// NopLogger is a no-op domain.Logger.
type NopLogger struct{}

// Debug does nothing.
func (NopLogger) Debug(string, string) {}

// Info does nothing.
func (NopLogger) Info(string, string) {}

// Warn does nothing.
func (NopLogger) Warn(string, string) {}

// Error does nothing.
func (NopLogger) Error(string, string) {}
