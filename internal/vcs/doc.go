// Package vcs defines the version-control backend interface used by pride
// and a type-string resolver that maps persisted backend identifiers
// (e.g. "git") to registered implementations.
package vcs
