package cli

import (
	"fmt"
	"io"

	"precheck/internal/domain"
)

// Ensure Reporter implements domain.RunReporter interface.
var _ domain.RunReporter = (*Reporter)(nil)

// Reporter prints run progress notices. Starting/OK notices go to
// out; the failure notice goes to errOut so the stdout transcript
// stays limited to Starting/OK lines.
type Reporter struct {
	out    io.Writer
	errOut io.Writer
}

// NewReporter creates a new Reporter.
func NewReporter(out, errOut io.Writer) *Reporter {
	return &Reporter{out: out, errOut: errOut}
}

// StepStarted prints the "Starting <name>" notice.
func (r *Reporter) StepStarted(step domain.Step) {
	_, _ = fmt.Fprintln(r.out, startingStyle.Render("Starting "+step.Name))
}

// StepPassed prints the "OK" notice.
func (r *Reporter) StepPassed(domain.Step) {
	_, _ = fmt.Fprintln(r.out, okStyle.Render("OK"))
}

// StepFailed prints a failure notice. The failing tool's own
// diagnostics have already gone to the terminal uncaptured.
func (r *Reporter) StepFailed(step domain.Step, exitCode int) {
	_, _ = fmt.Fprintln(r.errOut, failStyle.Render(fmt.Sprintf("FAIL %s (exit %d)", step.Name, exitCode)))
}
