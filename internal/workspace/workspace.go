package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mbezjak/pride/internal/config"
	"github.com/mbezjak/pride/internal/generator"
	"github.com/mbezjak/pride/internal/gradle"
	"github.com/mbezjak/pride/internal/registry"
	"github.com/mbezjak/pride/internal/vcs"
)

// Fixed names of the persisted workspace state, relative to the root.
const (
	ConfigDirName   = ".pride"
	VersionFileName = "version"
	ModulesFileName = "modules"
	ConfigFileName  = "config.yaml"

	// FormatVersion is the only config format this build can read.
	FormatVersion = "0"
)

// Workspace binds a root directory, the loaded module registry, and the
// workspace settings. It is not safe for concurrent mutation.
type Workspace struct {
	Root      string
	ConfigDir string
	Config    *config.File

	modules  map[string]*registry.Module
	resolver vcs.Resolver
}

// Open constructs a Workspace over an assumed-existing root. The config
// directory must already exist (InvalidStateError otherwise); the module
// registry is loaded eagerly so construction surfaces registry problems
// immediately.
func Open(root string, resolver vcs.Resolver) (*Workspace, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving workspace root: %w", err)
	}

	configDir := filepath.Join(root, ConfigDirName)
	info, err := os.Stat(configDir)
	if err != nil {
		return nil, &InvalidStateError{Path: root, Reason: ConfigDirName + " directory is missing"}
	}
	if !info.IsDir() {
		return nil, &InvalidStateError{Path: root, Reason: ConfigDirName + " is not a directory"}
	}

	cfg, err := config.Load(filepath.Join(configDir, ConfigFileName))
	if err != nil {
		return nil, err
	}

	modules, err := registry.Load(root, filepath.Join(configDir, ModulesFileName), resolver)
	if err != nil {
		return nil, err
	}

	return &Workspace{
		Root:      root,
		ConfigDir: configDir,
		Config:    cfg,
		modules:   modules,
		resolver:  resolver,
	}, nil
}

// AddModule registers a module under name with the given VCS type,
// replacing any prior entry with that name. It mutates only the
// in-memory registry; call Save to persist and Reinitialize to fold the
// module into the aggregate descriptor.
func (w *Workspace) AddModule(name, vcsType string) (*registry.Module, error) {
	backend, err := w.resolver.Resolve(vcsType)
	if err != nil {
		return nil, err
	}
	m := &registry.Module{Name: name, VCS: backend}
	w.modules[name] = m
	return m, nil
}

// RemoveModule drops name from the registry and deletes its directory
// under the root. A symlinked module directory is unlinked; a real
// directory is removed recursively.
func (w *Workspace) RemoveModule(name string) error {
	if _, ok := w.modules[name]; !ok {
		return &NotFoundError{What: "module", Name: name}
	}
	delete(w.modules, name)

	dir := filepath.Join(w.Root, name)
	info, err := os.Lstat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("inspecting module directory %s: %w", dir, err)
	}
	if info.Mode()&os.ModeSymlink != 0 {
		if err := os.Remove(dir); err != nil {
			return fmt.Errorf("removing module symlink %s: %w", dir, err)
		}
		return nil
	}
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("removing module directory %s: %w", dir, err)
	}
	return nil
}

// HasModule reports whether name is registered.
func (w *Workspace) HasModule(name string) bool {
	_, ok := w.modules[name]
	return ok
}

// GetModule returns the registered module for name.
func (w *Workspace) GetModule(name string) (*registry.Module, error) {
	m, ok := w.modules[name]
	if !ok {
		return nil, &NotFoundError{What: "module", Name: name}
	}
	return m, nil
}

// GetModuleDirectory returns the directory of a registered module. It
// re-validates registration through GetModule so stale handles fail
// instead of composing a path for an unregistered name.
func (w *Workspace) GetModuleDirectory(name string) (string, error) {
	m, err := w.GetModule(name)
	if err != nil {
		return "", err
	}
	return filepath.Join(w.Root, m.Name), nil
}

// Modules returns a snapshot of the registered modules in ascending name
// order.
func (w *Workspace) Modules() []*registry.Module {
	return registry.Sorted(w.modules)
}

// Save persists the in-memory registry to the modules file.
func (w *Workspace) Save() error {
	return registry.Save(filepath.Join(w.ConfigDir, ModulesFileName), w.modules)
}

// Reinitialize regenerates the aggregate build descriptor from the
// current registry, asking the connector for each valid module's project
// topology.
func (w *Workspace) Reinitialize(connector gradle.Connector) error {
	return generator.Generate(w.Root, w.Modules(), connector)
}
