// Package git provides repository inspection for the doctor checks.
package git

import (
	"fmt"

	gogit "github.com/go-git/go-git/v5"

	"precheck/internal/domain"
)

// Ensure Client implements domain.Git interface.
var _ domain.Git = (*Client)(nil)

// Client implements domain.Git using go-git.
type Client struct{}

// NewClient creates a new git client.
func NewClient() *Client {
	return &Client{}
}

func (c *Client) open(dir string) (*gogit.Repository, error) {
	return gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true})
}

// IsRepository reports whether dir is inside a git repository.
func (c *Client) IsRepository(dir string) bool {
	_, err := c.open(dir)
	return err == nil
}

// HasUncommittedChanges checks for staged or unstaged changes in dir.
// Untracked files count as changes.
func (c *Client) HasUncommittedChanges(dir string) (bool, error) {
	repo, err := c.open(dir)
	if err != nil {
		return false, fmt.Errorf("open git repository: %w", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return false, fmt.Errorf("get worktree: %w", err)
	}
	status, err := wt.Status()
	if err != nil {
		return false, fmt.Errorf("get worktree status: %w", err)
	}
	return !status.IsClean(), nil
}
