// Package cli provides the command-line interface for precheck.
package cli

import (
	"github.com/spf13/cobra"

	"precheck/internal/app"
	"precheck/internal/usecase"
)

// NewRootCommand creates the root command for precheck.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "precheck",
		Short: "Run the formatter, import sorter and type checker in sequence",
		Long: `precheck runs black, isort and mypy against the current directory,
in that order, and stops at the first failing tool. The process exit
code is the failing tool's own exit code, unmodified.

The step list can be overridden with a .precheck.toml file; see
'precheck init'.`,
		Version: version,
		Args:    cobra.NoArgs,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if c.ConfigErr != nil {
				return c.ConfigErr
			}

			reporter := NewReporter(cmd.OutOrStdout(), cmd.ErrOrStderr())
			uc := c.RunChecksUseCase(reporter)
			return uc.Execute(cmd.Context(), usecase.RunChecksInput{
				Steps: c.Config.StepList(),
			})
		},
	}

	root.AddCommand(newDoctorCommand(c))
	root.AddCommand(newInitCommand(c))

	return root
}
