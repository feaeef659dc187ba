// Package gitrepo initializes version control for a freshly scaffolded
// project using go-git, so a git binary is not required for the initial
// commit.
package gitrepo

import (
	"fmt"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// DefaultCommitMessage is used for the initial commit.
const DefaultCommitMessage = "Initial commit"

// Init creates a git repository at path, stages everything, and records an
// initial commit attributed to author (an empty author falls back to the
// project name placeholder).
func Init(path, author, message string) error {
	repo, err := git.PlainInit(path, false)
	if err != nil {
		if err == git.ErrRepositoryAlreadyExists {
			return fmt.Errorf("git repository already exists at %s", path)
		}
		return fmt.Errorf("initializing git repository: %w", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("opening worktree: %w", err)
	}

	if err := wt.AddWithOptions(&git.AddOptions{All: true}); err != nil {
		return fmt.Errorf("staging files: %w", err)
	}

	if author == "" {
		author = "hatch"
	}
	if message == "" {
		message = DefaultCommitMessage
	}

	_, err = wt.Commit(message, &git.CommitOptions{
		Author: &object.Signature{
			Name: author,
			When: time.Now(),
		},
	})
	if err != nil {
		return fmt.Errorf("creating initial commit: %w", err)
	}

	return nil
}
