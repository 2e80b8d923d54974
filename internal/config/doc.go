// Package config handles the optional .pride/config.yaml workspace
// settings file: the default VCS backend type for new modules and the
// gradle invocation used for build introspection.
package config
