// Package git implements the vcs.Backend interface on top of the Git CLI.
// It shells out for clone, update, and working-copy inspection and does
// not depend on other internal packages.
package git
