package workspace

import "fmt"

// NotFoundError reports a workspace that could not be located or a
// module that is not registered.
type NotFoundError struct {
	What string // "workspace" or "module"
	Name string // searched path, or module name
}

func (e *NotFoundError) Error() string {
	if e.What == "workspace" {
		return fmt.Sprintf("no pride workspace found at or above %s", e.Name)
	}
	return fmt.Sprintf("%s %q is not part of this workspace", e.What, e.Name)
}

// InvalidStateError reports a workspace root whose config directory is
// missing or not a directory.
type InvalidStateError struct {
	Path   string
	Reason string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("invalid workspace state at %s: %s", e.Path, e.Reason)
}
