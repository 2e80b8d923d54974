package registry

import (
	"fmt"

	"github.com/mbezjak/pride/internal/vcs"
)

// DefaultVCSType is assumed for legacy registry lines that carry only a
// module name.
const DefaultVCSType = "git"

// Module is one version-controlled member of the workspace. Its name is
// also the directory name directly under the workspace root.
type Module struct {
	Name string
	VCS  vcs.Backend
}

// InvalidModuleError reports a registry entry whose directory is missing
// or fails the valid-module-directory check.
type InvalidModuleError struct {
	Name   string
	Dir    string
	Reason string
}

func (e *InvalidModuleError) Error() string {
	return fmt.Sprintf("invalid module %q at %s: %s", e.Name, e.Dir, e.Reason)
}
