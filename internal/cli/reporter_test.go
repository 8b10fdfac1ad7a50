package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"precheck/internal/domain"
)

// transcriptLines splits captured stdout into trimmed non-empty lines.
// lipgloss renders without escape sequences when the writer is not a
// terminal, but trim defensively so assertions stay stable.
func transcriptLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(stripANSI(line))
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// stripANSI removes CSI escape sequences.
func stripANSI(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == 0x1b && i+1 < len(s) && s[i+1] == '[' {
			i += 2
			for i < len(s) && (s[i] < 0x40 || s[i] > 0x7e) {
				i++
			}
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func TestReporter_TranscriptNotices(t *testing.T) {
	var out, errOut bytes.Buffer
	r := NewReporter(&out, &errOut)
	step := domain.Step{Name: "black", Command: "black"}

	r.StepStarted(step)
	r.StepPassed(step)

	lines := transcriptLines(out.String())
	assert.Equal(t, []string{"Starting black", "OK"}, lines)
	assert.Empty(t, errOut.String())
}

func TestReporter_FailureGoesToStderrOnly(t *testing.T) {
	var out, errOut bytes.Buffer
	r := NewReporter(&out, &errOut)
	step := domain.Step{Name: "isort", Command: "isort"}

	r.StepStarted(step)
	r.StepFailed(step, 1)

	assert.Equal(t, []string{"Starting isort"}, transcriptLines(out.String()))
	assert.Contains(t, errOut.String(), "FAIL isort (exit 1)")
}
