package domain

// Step is one named invocation of an external code-quality tool
// against the working tree. Steps are immutable and consumed once
// per run.
type Step struct {
	Name    string   // Label used in status notices
	Command string   // Executable name, resolved via PATH
	Args    []string // Arguments passed verbatim
}

// DefaultSteps returns the built-in check sequence. Order matters:
// the import sorter and type checker assume the formatter already
// normalized the code.
func DefaultSteps() []Step {
	return []Step{
		{Name: "black", Command: "black", Args: []string{"."}},
		{Name: "isort", Command: "isort", Args: []string{"."}},
		{Name: "mypy", Command: "mypy", Args: []string{"."}},
	}
}
