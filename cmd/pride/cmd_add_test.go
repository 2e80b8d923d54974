package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mbezjak/pride/internal/testutil"
)

func TestRunAdd_clonesAndRegisters(t *testing.T) {
	dir := initWorkspace(t)
	bare := testutil.CreateBareRepo(t)

	if err := execute(t, "--dir", dir, "add", bare, "--name", "app"); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	// Cloned working copy is a valid module directory.
	if _, err := os.Stat(filepath.Join(dir, "app", "build.gradle")); err != nil {
		t.Errorf("expected cloned build.gradle: %v", err)
	}

	modules, err := os.ReadFile(filepath.Join(dir, ".pride", "modules")) //nolint:gosec // test file
	if err != nil {
		t.Fatal(err)
	}
	if string(modules) != "git|app\n" {
		t.Errorf("modules file = %q, want %q", modules, "git|app\n")
	}

	settings, err := os.ReadFile(filepath.Join(dir, "settings.gradle")) //nolint:gosec // test file
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"include 'app'", "project(':app').projectDir = file('app')"} {
		if !strings.Contains(string(settings), want) {
			t.Errorf("settings.gradle missing %q:\n%s", want, settings)
		}
	}
}

func TestRunAdd_nameInferredFromURL(t *testing.T) {
	dir := initWorkspace(t)
	bare := testutil.CreateBareRepo(t) // path ends in repo.git

	if err := execute(t, "--dir", dir, "add", bare); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	modules, err := os.ReadFile(filepath.Join(dir, ".pride", "modules")) //nolint:gosec // test file
	if err != nil {
		t.Fatal(err)
	}
	if string(modules) != "git|repo\n" {
		t.Errorf("modules file = %q, want %q", modules, "git|repo\n")
	}
}

func TestRunAdd_cloneFailureIsAnError(t *testing.T) {
	dir := initWorkspace(t)

	err := execute(t, "--dir", dir, "add", filepath.Join(t.TempDir(), "missing.git"), "--name", "app")
	if err == nil {
		t.Fatal("expected add to fail when the clone fails")
	}

	modules, readErr := os.ReadFile(filepath.Join(dir, ".pride", "modules")) //nolint:gosec // test file
	if readErr != nil {
		t.Fatal(readErr)
	}
	if strings.Contains(string(modules), "app") {
		t.Errorf("failed module must not be persisted, got %q", modules)
	}
	if _, statErr := os.Stat(filepath.Join(dir, "app")); !os.IsNotExist(statErr) {
		t.Error("expected no module directory after a failed clone")
	}

	// The workspace stays usable: later commands open the registry fine.
	if err := execute(t, "--dir", dir, "update"); err != nil {
		t.Fatalf("update after failed add: %v", err)
	}
}

func TestRunAdd_keepsEarlierModulesOnFailure(t *testing.T) {
	dir := initWorkspace(t)
	bare := testutil.CreateBareRepo(t)

	err := execute(t, "--dir", dir, "add", bare, filepath.Join(t.TempDir(), "missing.git"))
	if err == nil {
		t.Fatal("expected add to fail on the second URL")
	}

	modules, readErr := os.ReadFile(filepath.Join(dir, ".pride", "modules")) //nolint:gosec // test file
	if readErr != nil {
		t.Fatal(readErr)
	}
	if string(modules) != "git|repo\n" {
		t.Errorf("modules file = %q, want %q", modules, "git|repo\n")
	}
}

func TestRunAdd_gitNotInstalled(t *testing.T) {
	dir := initWorkspace(t)
	t.Setenv("PATH", t.TempDir())

	err := execute(t, "--dir", dir, "add", "git@example.com:org/app.git")
	if err == nil || !strings.Contains(err.Error(), "git is not installed") {
		t.Fatalf("expected git-not-installed error, got %v", err)
	}
}

func TestRunAdd_nameWithMultipleURLs(t *testing.T) {
	dir := initWorkspace(t)

	err := execute(t, "--dir", dir, "add", "url1", "url2", "--name", "app")
	if err == nil {
		t.Fatal("expected error for --name with multiple URLs")
	}
}

func TestRunAdd_unknownVCS(t *testing.T) {
	dir := initWorkspace(t)

	if err := execute(t, "--dir", dir, "add", "some-url", "--vcs", "hg"); err == nil {
		t.Fatal("expected error for unregistered vcs type")
	}
}

func TestRunAdd_outsideWorkspace(t *testing.T) {
	if err := execute(t, "--dir", t.TempDir(), "add", "some-url"); err == nil {
		t.Fatal("expected error outside a workspace")
	}
}
