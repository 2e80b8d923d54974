// Package gradle is the build-introspection adapter: given a module
// directory, it reports that module's project topology (root project
// name plus the set of project paths). The default connector shells out
// to the gradle CLI and parses its plain-console project report.
package gradle
