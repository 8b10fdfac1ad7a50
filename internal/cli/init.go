package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"precheck/internal/app"
	"precheck/internal/usecase"
)

// newInitCommand creates the init command.
func newInitCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default .precheck.toml to the current directory",
		Long: `Write the default configuration template to .precheck.toml.

Error conditions:
- File already exists: "config file already exists"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.InitConfigUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.InitConfigInput{
				Path: c.ConfigLoader.Path(),
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", out.Path)
			return nil
		},
	}
}
