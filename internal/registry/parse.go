package registry

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mbezjak/pride/internal/vcs"
)

// BuildScriptName is the marker file a directory must contain to count
// as a module directory.
const BuildScriptName = "build.gradle"

// Load reads the modules file at path and resolves each entry into a
// Module rooted under root. The error wraps fs.ErrNotExist when the file
// is absent. Duplicate names resolve last-wins: the map keeps only the
// final entry for a name.
func Load(root, path string, resolver vcs.Resolver) (map[string]*Module, error) {
	f, err := os.Open(path) //nolint:gosec // path is the workspace modules file
	if err != nil {
		return nil, fmt.Errorf("reading modules file: %w", err)
	}
	defer func() { _ = f.Close() }()

	modules := make(map[string]*Module)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		vcsType, name := parseLine(line)

		dir := filepath.Join(root, name)
		info, statErr := os.Stat(dir)
		if statErr != nil || !info.IsDir() {
			return nil, &InvalidModuleError{Name: name, Dir: dir, Reason: "directory does not exist"}
		}
		if !IsValidModuleDir(dir) {
			return nil, &InvalidModuleError{Name: name, Dir: dir, Reason: "not a valid module directory (missing " + BuildScriptName + ")"}
		}

		backend, err := resolver.Resolve(vcsType)
		if err != nil {
			return nil, fmt.Errorf("module %q: %w", name, err)
		}

		modules[name] = &Module{Name: name, VCS: backend}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading modules file: %w", err)
	}
	return modules, nil
}

// parseLine splits a registry line into (vcsType, name). A line without a
// pipe separator is a legacy bare module name with the default VCS type.
func parseLine(line string) (vcsType, name string) {
	vcsType, name, ok := strings.Cut(line, "|")
	if !ok {
		return DefaultVCSType, line
	}
	return vcsType, name
}

// Save rewrites the modules file at path with one type|name line per
// module in ascending name order. Legacy bare-name lines are never
// written back.
func Save(path string, modules map[string]*Module) error {
	var b strings.Builder
	for _, m := range Sorted(modules) {
		b.WriteString(m.VCS.Type())
		b.WriteString("|")
		b.WriteString(m.Name)
		b.WriteString("\n")
	}
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil { //nolint:gosec // modules file needs to be readable
		return fmt.Errorf("writing modules file: %w", err)
	}
	return nil
}

// Sorted returns the modules as a slice in ascending name order.
func Sorted(modules map[string]*Module) []*Module {
	out := make([]*Module, 0, len(modules))
	for _, m := range modules {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// IsValidModuleDir reports whether dir is a usable module directory: its
// base name does not start with "." and it directly contains the build
// script marker file.
func IsValidModuleDir(dir string) bool {
	if strings.HasPrefix(filepath.Base(dir), ".") {
		return false
	}
	info, err := os.Stat(filepath.Join(dir, BuildScriptName))
	return err == nil && !info.IsDir()
}
