// Package main is the entry point for the precheck CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"precheck/internal/app"
	"precheck/internal/cli"
	"precheck/internal/domain"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to get current directory: %v\n", err)
		return 1
	}

	container, err := app.New(cwd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize: %v\n", err)
		return 1
	}
	defer func() { _ = container.Close() }()

	rootCmd := cli.NewRootCommand(container, version)
	if err := rootCmd.Execute(); err != nil {
		return exitCode(err)
	}
	return 0
}

// exitCode maps an error to the process exit status. A failed step
// propagates its subprocess's exit code unmodified and produces no
// extra output; the tool already printed its diagnostics. Everything
// else prints the error and exits 1.
func exitCode(err error) int {
	var stepErr *domain.StepFailedError
	if errors.As(err, &stepErr) {
		// A signal-terminated tool reports -1; map it to a plain failure.
		if stepErr.ExitCode > 0 {
			return stepErr.ExitCode
		}
		return 1
	}
	fmt.Fprintln(os.Stderr, err)
	return 1
}
