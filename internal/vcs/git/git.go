package git

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Backend runs git commands against module working copies.
type Backend struct{}

// New returns a git backend.
func New() *Backend {
	return &Backend{}
}

// Type returns the identifier persisted in the modules file.
func (b *Backend) Type() string { return "git" }

// Clone clones url into dir.
func (b *Backend) Clone(url, dir string) error {
	if err := run(".", "clone", url, dir); err != nil {
		return fmt.Errorf("cloning %s: %w", url, err)
	}
	return nil
}

// Update fetches from the remote and fast-forwards the current branch.
func (b *Backend) Update(dir string) error {
	if err := run(dir, "fetch", "--prune"); err != nil {
		return fmt.Errorf("fetch: %w", err)
	}
	if err := run(dir, "merge", "--ff-only", "FETCH_HEAD"); err != nil {
		return fmt.Errorf("fast-forward merge: %w", err)
	}
	return nil
}

// IsCloned returns true if dir is a git working copy.
func (b *Backend) IsCloned(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, ".git"))
	if err != nil {
		return false
	}
	return info.IsDir()
}

// IsDirty returns true if the working tree has uncommitted changes.
func (b *Backend) IsDirty(dir string) (bool, error) {
	out, err := output(dir, "status", "--porcelain")
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(out) != "", nil
}

// Head returns the short SHA of HEAD.
func (b *Backend) Head(dir string) (string, error) {
	out, err := output(dir, "rev-parse", "--short", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// Branch returns the current branch name, or "" if HEAD is detached.
func (b *Backend) Branch(dir string) (string, error) {
	out, err := output(dir, "symbolic-ref", "--short", "HEAD")
	if err != nil {
		// Detached HEAD: symbolic-ref fails.
		return "", nil
	}
	return strings.TrimSpace(out), nil
}

// IsInstalled returns true if git is available on the system PATH.
func IsInstalled() bool {
	_, err := exec.LookPath("git")
	return err == nil
}

// run executes a git command in the given directory. Stderr is captured
// and included in the error message on failure.
func run(dir string, args ...string) error {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("git %s: %w: %s", strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
	}
	return nil
}

// output executes a git command and returns its stdout.
func output(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("git %s: %w: %s", strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), nil
}
