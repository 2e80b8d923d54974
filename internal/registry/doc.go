// Package registry handles the persisted module registry of a pride
// workspace: the line-oriented modules file mapping module names to VCS
// backend types, and the validity rules for module directories.
package registry
