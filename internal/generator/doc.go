// Package generator regenerates the aggregate build descriptor of a
// pride workspace: a stub build.gradle and a settings.gradle that
// includes every project of every registered module.
package generator
