package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// WriteModule creates a module directory with a build.gradle marker file
// under root and returns its path.
func WriteModule(t *testing.T, root, name string) string {
	t.Helper()
	dir := filepath.Join(root, name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	script := "apply plugin: 'java'\n"
	if err := os.WriteFile(filepath.Join(dir, "build.gradle"), []byte(script), 0644); err != nil { //nolint:gosec // test file
		t.Fatal(err)
	}
	return dir
}

// WriteBareDir creates a module directory without a build.gradle marker,
// i.e. one that fails the valid-module-directory check.
func WriteBareDir(t *testing.T, root, name string) string {
	t.Helper()
	dir := filepath.Join(root, name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	return dir
}

// WriteFakeGradle writes a shell script that mimics the plain-console
// project report of `gradle projects` for a single root project named
// after the working directory. Returns the script path.
func WriteFakeGradle(t *testing.T, dir string) string {
	t.Helper()
	script := filepath.Join(dir, "fake-gradle")
	body := "#!/bin/sh\necho \"Root project '$(basename \"$PWD\")'\"\n"
	if err := os.WriteFile(script, []byte(body), 0755); err != nil { //nolint:gosec // test executable
		t.Fatal(err)
	}
	return script
}

// CreateBareRepo creates a bare git repository with an initial commit in a
// temp directory. The repository contains a build.gradle so a clone of it
// is a valid module directory. Returns the path to the bare repo.
func CreateBareRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	bare := filepath.Join(dir, "repo.git")

	// Create a working repo first, then clone it bare.
	work := filepath.Join(dir, "work")
	runGit(t, dir, "init", "-b", "main", work)
	runGit(t, work, "config", "user.email", "test@example.com")
	runGit(t, work, "config", "user.name", "Test")

	build := filepath.Join(work, "build.gradle")
	if err := os.WriteFile(build, []byte("apply plugin: 'java'\n"), 0644); err != nil { //nolint:gosec // test file
		t.Fatal(err)
	}
	runGit(t, work, "add", ".")
	runGit(t, work, "commit", "-m", "initial commit")

	runGit(t, dir, "clone", "--bare", work, bare)
	return bare
}

func runGit(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("git %v failed: %v", args, err)
	}
}
