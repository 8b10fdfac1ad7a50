package usecase

import (
	"context"
	"fmt"

	"precheck/internal/domain"
)

// DoctorInput contains the parameters for the doctor checks.
type DoctorInput struct {
	ConfigErr error         // Non-nil when the config file exists but cannot be used
	Dir       string        // Directory being checked (required)
	Steps     []domain.Step // Steps whose tools are verified (required)
}

// DoctorCheck is one prerequisite check result.
type DoctorCheck struct {
	Label   string // What was checked
	Hint    string // How to fix it, shown when not OK
	OK      bool
	Warning bool // A failed warning check does not fail doctor
}

// DoctorOutput contains all check results.
type DoctorOutput struct {
	Checks []DoctorCheck
	OK     bool // False when any non-warning check failed
}

// Doctor is the use case for verifying run prerequisites.
type Doctor struct {
	runner domain.CommandRunner
	git    domain.Git
}

// NewDoctor creates a new Doctor use case.
func NewDoctor(runner domain.CommandRunner, git domain.Git) *Doctor {
	return &Doctor{runner: runner, git: git}
}

// Execute verifies the configuration, that every step's tool is
// installed, and the state of the working tree. The formatter and
// import sorter rewrite files in place, so a dirty tree is surfaced
// as a warning before any run.
func (uc *Doctor) Execute(_ context.Context, in DoctorInput) (*DoctorOutput, error) {
	out := &DoctorOutput{OK: true}

	add := func(check DoctorCheck) {
		if !check.OK && !check.Warning {
			out.OK = false
		}
		out.Checks = append(out.Checks, check)
	}

	add(DoctorCheck{
		Label: "configuration valid",
		OK:    in.ConfigErr == nil,
		Hint:  fmt.Sprintf("%v", in.ConfigErr),
	})

	for _, step := range in.Steps {
		_, err := uc.runner.LookPath(step.Command)
		add(DoctorCheck{
			Label: step.Command + " installed",
			OK:    err == nil,
			Hint:  "install " + step.Command + " and make sure it is on PATH",
		})
	}

	if !uc.git.IsRepository(in.Dir) {
		add(DoctorCheck{
			Label:   "inside a git repository",
			OK:      false,
			Warning: true,
			Hint:    "in-place rewrites cannot be reverted without version control",
		})
		return out, nil
	}
	add(DoctorCheck{Label: "inside a git repository", OK: true})

	dirty, err := uc.git.HasUncommittedChanges(in.Dir)
	if err != nil {
		return nil, fmt.Errorf("check worktree status: %w", err)
	}
	add(DoctorCheck{
		Label:   "working tree clean",
		OK:      !dirty,
		Warning: true,
		Hint:    "commit or stash first; the formatter and import sorter rewrite files in place",
	})

	return out, nil
}
