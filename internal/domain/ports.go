package domain

import "context"

// CommandRunner executes a step's external command in a fresh
// subprocess with standard streams inherited from the parent.
type CommandRunner interface {
	// Run blocks until the command exits and returns its exit code.
	// A non-nil error means the command exited non-zero or could not
	// be started; a missing binary wraps ErrToolNotFound.
	Run(ctx context.Context, step Step) (int, error)

	// LookPath resolves command on PATH without executing it.
	LookPath(command string) (string, error)
}

// ConfigLoader loads the runner configuration.
type ConfigLoader interface {
	// Load returns the configuration, falling back to the defaults
	// when no config file exists.
	Load() (*Config, error)

	// Path returns the config file location Load reads from.
	Path() string
}

// RunReporter receives progress notifications during a check run.
type RunReporter interface {
	StepStarted(step Step)
	StepPassed(step Step)
	StepFailed(step Step, exitCode int)
}

// Git inspects the repository containing the checked tree.
type Git interface {
	// IsRepository reports whether dir is inside a git repository.
	IsRepository(dir string) bool

	// HasUncommittedChanges checks for staged or unstaged changes.
	HasUncommittedChanges(dir string) (bool, error)
}

// Logger records diagnostic messages. Implementations may be no-ops.
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}
