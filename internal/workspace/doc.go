// Package workspace implements the pride workspace: root discovery from
// any nested directory, the module lifecycle over the persisted
// registry, and regeneration of the aggregate build descriptor.
package workspace
