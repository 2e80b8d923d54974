package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mbezjak/pride/internal/config"
	"github.com/mbezjak/pride/internal/gradle"
	"github.com/mbezjak/pride/internal/vcs"
)

// ContainsWorkspace reports whether dir is a pride workspace root: the
// version marker file exists and its entire content is the supported
// format version followed by a newline. Any other content -- including a
// different version -- yields false, so workspaces written by a newer
// pride are ignored rather than misread.
func ContainsWorkspace(dir string) bool {
	data, err := os.ReadFile(filepath.Join(dir, ConfigDirName, VersionFileName)) //nolint:gosec // fixed workspace marker path
	if err != nil {
		return false
	}
	return string(data) == FormatVersion+"\n"
}

// Locate walks from start upward through its parents and opens the first
// directory that contains a workspace. found is false once the
// filesystem root has been searched without a match.
func Locate(start string, resolver vcs.Resolver) (ws *Workspace, found bool, err error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return nil, false, fmt.Errorf("resolving start directory: %w", err)
	}
	for {
		if ContainsWorkspace(dir) {
			ws, err := Open(dir, resolver)
			return ws, true, err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, false, nil
		}
		dir = parent
	}
}

// Require is Locate that fails with a NotFoundError naming the searched
// path when no workspace exists at or above start.
func Require(start string, resolver vcs.Resolver) (*Workspace, error) {
	ws, found, err := Locate(start, resolver)
	if err != nil {
		return nil, err
	}
	if !found {
		abs, absErr := filepath.Abs(start)
		if absErr != nil {
			abs = start
		}
		return nil, &NotFoundError{What: "workspace", Name: abs}
	}
	return ws, nil
}

// Create initializes a brand-new workspace in dir, creating dir and its
// ancestors if missing. An existing config directory is deleted and
// recreated, the version marker, an empty modules file and a default
// config file are written, and the aggregate descriptor is generated
// for the (empty) registry.
func Create(dir string, resolver vcs.Resolver, connector gradle.Connector) (*Workspace, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving workspace root: %w", err)
	}
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("creating workspace root: %w", err)
	}

	configDir := filepath.Join(root, ConfigDirName)
	if err := os.RemoveAll(configDir); err != nil {
		return nil, fmt.Errorf("removing old config directory: %w", err)
	}
	if err := os.Mkdir(configDir, 0755); err != nil {
		return nil, fmt.Errorf("creating config directory: %w", err)
	}

	version := filepath.Join(configDir, VersionFileName)
	if err := os.WriteFile(version, []byte(FormatVersion+"\n"), 0644); err != nil { //nolint:gosec // marker file needs to be readable
		return nil, fmt.Errorf("writing version marker: %w", err)
	}
	modules := filepath.Join(configDir, ModulesFileName)
	if err := os.WriteFile(modules, nil, 0644); err != nil { //nolint:gosec // modules file needs to be readable
		return nil, fmt.Errorf("writing modules file: %w", err)
	}
	// Seed the config with the defaults so the knobs are discoverable.
	if err := config.Save(filepath.Join(configDir, ConfigFileName), config.Default()); err != nil {
		return nil, err
	}

	ws, err := Open(root, resolver)
	if err != nil {
		return nil, err
	}
	if err := ws.Reinitialize(connector); err != nil {
		return nil, err
	}
	return ws, nil
}
