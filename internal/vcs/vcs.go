package vcs

import (
	"fmt"
	"sort"
)

// Backend implements version-control operations for one kind of repository.
// Implementations must be safe for concurrent use across directories; pride
// calls one backend from multiple goroutines during parallel updates.
type Backend interface {
	// Type returns the identifier persisted in the modules file (e.g. "git").
	Type() string
	// Clone checks out a fresh working copy of url into dir.
	Clone(url, dir string) error
	// Update brings an existing working copy up to date with its remote.
	Update(dir string) error
	// IsCloned reports whether dir holds a working copy of this backend's kind.
	IsCloned(dir string) bool
	// IsDirty reports whether the working copy has uncommitted changes.
	IsDirty(dir string) (bool, error)
	// Head returns a short identifier for the current revision.
	Head(dir string) (string, error)
	// Branch returns the current branch name, or "" when none applies.
	Branch(dir string) (string, error)
}

// Resolver maps a persisted VCS type string to a Backend.
type Resolver interface {
	Resolve(vcsType string) (Backend, error)
}

// Registry is a Resolver backed by explicitly registered backends.
type Registry struct {
	backends map[string]Backend
}

// NewRegistry creates a registry with the given backends registered.
func NewRegistry(backends ...Backend) *Registry {
	r := &Registry{backends: make(map[string]Backend, len(backends))}
	for _, b := range backends {
		r.Register(b)
	}
	return r
}

// Register adds a backend, replacing any prior backend of the same type.
func (r *Registry) Register(b Backend) {
	r.backends[b.Type()] = b
}

// Resolve returns the backend registered for vcsType.
func (r *Registry) Resolve(vcsType string) (Backend, error) {
	b, ok := r.backends[vcsType]
	if !ok {
		return nil, fmt.Errorf("unknown vcs type %q (registered: %v)", vcsType, r.Types())
	}
	return b, nil
}

// Types returns the registered type strings in ascending order.
func (r *Registry) Types() []string {
	types := make([]string, 0, len(r.backends))
	for t := range r.backends {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}
