package gitrepo

import (
	"os"
	"path/filepath"
	"testing"

	git "github.com/go-git/go-git/v5"
)

func TestInitCreatesRepositoryWithCommit(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "README.md"), []byte("# test\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := Init(dir, "Jane Doe", ""); err != nil {
		t.Fatalf("Init() error: %v", err)
	}

	repo, err := git.PlainOpen(dir)
	if err != nil {
		t.Fatalf("opening repository: %v", err)
	}

	head, err := repo.Head()
	if err != nil {
		t.Fatalf("reading HEAD: %v", err)
	}

	commit, err := repo.CommitObject(head.Hash())
	if err != nil {
		t.Fatalf("reading commit: %v", err)
	}
	if commit.Message != DefaultCommitMessage {
		t.Errorf("commit message = %q, want %q", commit.Message, DefaultCommitMessage)
	}
	if commit.Author.Name != "Jane Doe" {
		t.Errorf("author = %q, want Jane Doe", commit.Author.Name)
	}
}

func TestInitFailsOnExistingRepository(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := Init(dir, "Jane", ""); err != nil {
		t.Fatalf("first Init() error: %v", err)
	}
	if err := Init(dir, "Jane", ""); err == nil {
		t.Fatal("expected error for existing repository")
	}
}
