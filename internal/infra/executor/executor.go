// Package executor provides command execution functionality.
package executor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"precheck/internal/domain"
)

// Client implements domain.CommandRunner.
type Client struct {
	dir string
}

// NewClient creates a command runner that executes steps in dir.
// An empty dir means the process working directory.
func NewClient(dir string) *Client {
	return &Client{dir: dir}
}

// Ensure Client implements domain.CommandRunner interface.
var _ domain.CommandRunner = (*Client)(nil)

// Run executes the step's command with stdin/stdout/stderr connected
// to the terminal and returns its exit code. Tool output is never
// captured or transformed.
func (c *Client) Run(ctx context.Context, step domain.Step) (int, error) {
	// #nosec G204 - step commands come from trusted configuration
	cmd := exec.CommandContext(ctx, step.Command, step.Args...)
	if c.dir != "" {
		cmd.Dir = c.dir
	}
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), err
	}
	if errors.Is(err, exec.ErrNotFound) {
		return domain.ExitCodeToolNotFound, fmt.Errorf("%s: %w", step.Command, domain.ErrToolNotFound)
	}
	return 1, fmt.Errorf("run %s: %w", step.Command, err)
}

// LookPath resolves command on PATH.
func (c *Client) LookPath(command string) (string, error) {
	path, err := exec.LookPath(command)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", fmt.Errorf("%s: %w", command, domain.ErrToolNotFound)
		}
		return "", fmt.Errorf("look up %s: %w", command, err)
	}
	return path, nil
}
