package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// File represents .pride/config.yaml.
type File struct {
	DefaultVCS string `yaml:"default_vcs,omitempty"`
	Gradle     Gradle `yaml:"gradle,omitempty"`
}

// Gradle configures the command used to introspect module build topology.
type Gradle struct {
	Command string   `yaml:"command,omitempty"`
	Args    []string `yaml:"args,omitempty,flow"`
}

// Default returns the settings used when no config file exists.
func Default() *File {
	return &File{
		DefaultVCS: "git",
		Gradle: Gradle{
			Command: "gradle",
			Args:    []string{"-q", "projects"},
		},
	}
}

// Load reads a config file, falling back to Default when it is absent.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is the workspace config file
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}

// Parse parses config.yaml content over the defaults, so omitted fields
// keep their default values.
func Parse(data []byte) (*File, error) {
	f := Default()
	if err := yaml.Unmarshal(data, f); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}
	if f.DefaultVCS == "" {
		f.DefaultVCS = "git"
	}
	if f.Gradle.Command == "" {
		f.Gradle.Command = "gradle"
	}
	return f, nil
}

// Save writes the config file to disk.
func Save(path string, f *File) error {
	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil { //nolint:gosec // config file needs to be readable
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
