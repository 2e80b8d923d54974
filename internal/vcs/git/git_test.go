package git

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mbezjak/pride/internal/testutil"
)

func requireGit(t *testing.T) {
	t.Helper()
	if !IsInstalled() {
		t.Skip("git is not installed")
	}
}

func TestCloneAndIsCloned(t *testing.T) {
	requireGit(t)
	bare := testutil.CreateBareRepo(t)
	dest := filepath.Join(t.TempDir(), "cloned")
	b := New()

	if err := b.Clone(bare, dest); err != nil {
		t.Fatalf("clone: %v", err)
	}
	if !b.IsCloned(dest) {
		t.Error("expected IsCloned to be true after clone")
	}
}

func TestIsCloned_plainDir(t *testing.T) {
	b := New()
	if b.IsCloned(t.TempDir()) {
		t.Error("expected IsCloned to be false for a plain directory")
	}
}

func TestHeadAndBranch(t *testing.T) {
	requireGit(t)
	bare := testutil.CreateBareRepo(t)
	dest := filepath.Join(t.TempDir(), "repo")
	b := New()
	if err := b.Clone(bare, dest); err != nil {
		t.Fatalf("clone: %v", err)
	}

	sha, err := b.Head(dest)
	if err != nil {
		t.Fatal(err)
	}
	if len(sha) < 7 {
		t.Errorf("short sha too short: %q", sha)
	}

	branch, err := b.Branch(dest)
	if err != nil {
		t.Fatal(err)
	}
	if branch == "" {
		t.Error("expected non-empty branch name")
	}
}

func TestIsDirty(t *testing.T) {
	requireGit(t)
	bare := testutil.CreateBareRepo(t)
	dest := filepath.Join(t.TempDir(), "repo")
	b := New()
	if err := b.Clone(bare, dest); err != nil {
		t.Fatalf("clone: %v", err)
	}

	dirty, err := b.IsDirty(dest)
	if err != nil {
		t.Fatal(err)
	}
	if dirty {
		t.Error("expected clean repo after fresh clone")
	}

	if err := os.WriteFile(filepath.Join(dest, "dirty.txt"), []byte("x"), 0644); err != nil { //nolint:gosec // test file
		t.Fatal(err)
	}

	dirty, err = b.IsDirty(dest)
	if err != nil {
		t.Fatal(err)
	}
	if !dirty {
		t.Error("expected dirty after creating untracked file")
	}
}

func TestUpdate_fastForward(t *testing.T) {
	requireGit(t)
	bare := testutil.CreateBareRepo(t)
	dest := filepath.Join(t.TempDir(), "repo")
	b := New()
	if err := b.Clone(bare, dest); err != nil {
		t.Fatalf("clone: %v", err)
	}

	// No upstream changes: update should be a no-op that succeeds.
	if err := b.Update(dest); err != nil {
		t.Fatalf("update: %v", err)
	}
}
