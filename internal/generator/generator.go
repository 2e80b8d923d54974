package generator

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mbezjak/pride/internal/gradle"
	"github.com/mbezjak/pride/internal/registry"
)

// Names of the generated files in the workspace root.
const (
	BuildFileName    = "build.gradle"
	SettingsFileName = "settings.gradle"
)

const banner = `//
// DO NOT MODIFY -- THIS FILE WAS GENERATED BY PRIDE
// It is rewritten on every init, add, remove and refresh.
//
`

const buildStub = `
// Shared configuration for every module in the pride goes here.
allprojects {
}
`

// GenerationError reports a build-introspection failure for one module.
type GenerationError struct {
	ModuleDir string
	Err       error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generating build descriptor for %s: %v", e.ModuleDir, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// Generate rewrites the aggregate descriptor under root for the given
// modules, which must already be in ascending name order. Previous
// descriptor content is discarded. Modules whose directory is not a
// valid module directory are skipped. The first introspection failure
// aborts the run; settings content written for earlier modules stays on
// disk and is overwritten by the next successful run.
func Generate(root string, modules []*registry.Module, connector gradle.Connector) error {
	buildPath := filepath.Join(root, BuildFileName)
	if err := os.WriteFile(buildPath, []byte(banner+buildStub), 0644); err != nil { //nolint:gosec // generated build file
		return fmt.Errorf("writing %s: %w", BuildFileName, err)
	}

	settings, err := os.Create(filepath.Join(root, SettingsFileName))
	if err != nil {
		return fmt.Errorf("writing %s: %w", SettingsFileName, err)
	}
	defer func() { _ = settings.Close() }()

	if _, err := settings.WriteString(banner); err != nil {
		return fmt.Errorf("writing %s: %w", SettingsFileName, err)
	}

	for _, m := range modules {
		dir := filepath.Join(root, m.Name)
		if !registry.IsValidModuleDir(dir) {
			// Tolerated placeholder (e.g. not yet cloned); skip.
			continue
		}

		model, err := introspect(connector, dir)
		if err != nil {
			return &GenerationError{ModuleDir: dir, Err: err}
		}

		if _, err := settings.WriteString(formatModule(m.Name, model)); err != nil {
			return fmt.Errorf("writing %s: %w", SettingsFileName, err)
		}
	}

	if err := settings.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", SettingsFileName, err)
	}
	return nil
}

// introspect opens a session for dir and releases it on every path.
func introspect(connector gradle.Connector, dir string) (*gradle.ProjectModel, error) {
	session, err := connector.Connect(dir)
	if err != nil {
		return nil, err
	}
	defer func() { _ = session.Close() }()
	return session.Model()
}

// formatModule renders the settings.gradle fragment for one module:
// a comment naming the module's relative path, then per project either
// the root binding pair or a namespaced include line.
func formatModule(name string, model *gradle.ProjectModel) string {
	fragment := fmt.Sprintf("\n// %s\n", name)
	for _, p := range model.Projects {
		if p.IsRoot() {
			fragment += fmt.Sprintf("include '%s'\n", model.RootName)
			fragment += fmt.Sprintf("project(':%s').projectDir = file('%s')\n", model.RootName, name)
		} else {
			fragment += fmt.Sprintf("include '%s%s'\n", model.RootName, p.Path)
		}
	}
	return fragment
}
