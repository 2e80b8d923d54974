package main

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/mbezjak/pride/internal/testutil"
)

// initWorkspace creates a pride workspace through the CLI and points its
// gradle command at a stand-in script so reinitialize works without a
// gradle installation.
func initWorkspace(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	root := newRootCmd()
	root.SetArgs([]string{"--dir", dir, "init"})
	if err := root.Execute(); err != nil {
		t.Fatalf("init: %v", err)
	}

	script := testutil.WriteFakeGradle(t, t.TempDir())
	cfg := fmt.Sprintf("gradle:\n  command: %s\n  args: [\"projects\"]\n", script)
	if err := os.WriteFile(filepath.Join(dir, ".pride", "config.yaml"), []byte(cfg), 0644); err != nil { //nolint:gosec // test file
		t.Fatal(err)
	}
	return dir
}

func execute(t *testing.T, args ...string) error {
	t.Helper()
	root := newRootCmd()
	root.SetArgs(args)
	return root.Execute()
}

func TestRunInit_createsWorkspace(t *testing.T) {
	dir := t.TempDir()

	if err := execute(t, "--dir", dir, "init"); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	version, err := os.ReadFile(filepath.Join(dir, ".pride", "version")) //nolint:gosec // test file
	if err != nil {
		t.Fatalf("reading version marker: %v", err)
	}
	if string(version) != "0\n" {
		t.Errorf("version marker = %q, want %q", version, "0\n")
	}
	if _, err := os.Stat(filepath.Join(dir, ".pride", "modules")); err != nil {
		t.Errorf("expected modules file: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, ".pride", "config.yaml")); err != nil {
		t.Errorf("expected seeded config file: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "settings.gradle")); err != nil {
		t.Errorf("expected generated settings.gradle: %v", err)
	}
}

func TestRunInit_alreadyExists(t *testing.T) {
	dir := initWorkspace(t)

	if err := execute(t, "--dir", dir, "init"); err == nil {
		t.Fatal("expected error when a workspace already exists")
	}
}

func TestRunInit_existsAbove(t *testing.T) {
	dir := initWorkspace(t)
	nested := filepath.Join(dir, "deep", "inside")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}

	if err := execute(t, "--dir", nested, "init"); err == nil {
		t.Fatal("expected error when a workspace exists above the target")
	}
}

func TestRunInit_force(t *testing.T) {
	dir := initWorkspace(t)
	// Register a module, then force a re-init: the registry starts over.
	if err := os.WriteFile(filepath.Join(dir, ".pride", "modules"), []byte("git|app\n"), 0644); err != nil { //nolint:gosec // test file
		t.Fatal(err)
	}
	testutil.WriteModule(t, dir, "app")

	if err := execute(t, "--dir", dir, "init", "--force"); err != nil {
		t.Fatalf("init --force failed: %v", err)
	}

	modules, err := os.ReadFile(filepath.Join(dir, ".pride", "modules")) //nolint:gosec // test file
	if err != nil {
		t.Fatal(err)
	}
	if len(modules) != 0 {
		t.Errorf("expected empty modules file after forced init, got %q", modules)
	}
}
