package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"precheck/internal/app"
	"precheck/internal/usecase"
)

// newDoctorCommand creates the doctor command.
func newDoctorCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that the configured tools are installed",
		Long: `Verify run prerequisites: the configuration loads, every configured
tool is on PATH, and the working tree state. A dirty tree is reported
as a warning because the formatter and import sorter rewrite files in
place.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.DoctorUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.DoctorInput{
				ConfigErr: c.ConfigErr,
				Dir:       c.WorkDir,
				Steps:     c.Config.StepList(),
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, check := range out.Checks {
				switch {
				case check.OK:
					_, _ = fmt.Fprintf(w, "%s %s\n", okStyle.Render("✓"), check.Label)
				case check.Warning:
					_, _ = fmt.Fprintf(w, "%s %s: %s\n", warnStyle.Render("!"), check.Label, check.Hint)
				default:
					_, _ = fmt.Fprintf(w, "%s %s: %s\n", failStyle.Render("✗"), check.Label, check.Hint)
				}
			}

			if !out.OK {
				return errors.New("some checks failed")
			}
			_, _ = fmt.Fprintln(w, "All checks passed.")
			return nil
		},
	}
}
