package gradle

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// CLIConnector introspects modules by running the gradle command line and
// parsing its project report. The zero value runs `gradle -q projects`.
type CLIConnector struct {
	Command string
	Args    []string
	// Log receives the gradle process's stderr (build output, warnings).
	// May be nil.
	Log io.Writer
}

// NewCLIConnector builds a connector, applying the default command and
// arguments where empty.
func NewCLIConnector(command string, args []string, log io.Writer) *CLIConnector {
	if command == "" {
		command = "gradle"
	}
	if len(args) == 0 {
		args = []string{"-q", "projects"}
	}
	return &CLIConnector{Command: command, Args: args, Log: log}
}

// Connect opens a session against the given module directory.
func (c *CLIConnector) Connect(dir string) (Session, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("connecting to %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("connecting to %s: not a directory", dir)
	}
	return &cliSession{connector: c, dir: dir}, nil
}

type cliSession struct {
	connector *CLIConnector
	dir       string
}

// Model runs the configured gradle command in the module directory and
// parses the resulting project report.
func (s *cliSession) Model() (*ProjectModel, error) {
	command := s.connector.Command
	if command == "" {
		command = "gradle"
	}
	args := s.connector.Args
	if len(args) == 0 {
		args = []string{"-q", "projects"}
	}

	cmd := exec.Command(command, args...) //nolint:gosec // command comes from workspace config
	cmd.Dir = s.dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	if s.connector.Log != nil {
		cmd.Stderr = io.MultiWriter(&stderr, s.connector.Log)
	} else {
		cmd.Stderr = &stderr
	}

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%s %s: %w: %s", command, strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
	}

	return ParseProjectReport(stdout.String())
}

// Close releases the session. The CLI runner holds no connection once
// the process has exited; Close satisfies the Session contract for
// connectors that do.
func (s *cliSession) Close() error { return nil }

// ParseProjectReport extracts the project topology from the plain-console
// output of `gradle projects`, which looks like:
//
//	Root project 'lib'
//	+--- Project ':core'
//	\--- Project ':util'
//
// The returned model always lists the root project first with path ":".
func ParseProjectReport(report string) (*ProjectModel, error) {
	model := &ProjectModel{}
	for _, line := range strings.Split(report, "\n") {
		if name, ok := cutQuoted(line, "Root project "); ok && model.RootName == "" {
			model.RootName = name
			model.Projects = append(model.Projects, Project{Name: name, Path: RootPath})
			continue
		}
		if path, ok := cutQuoted(line, "Project "); ok && strings.HasPrefix(path, ":") {
			segments := strings.Split(path, ":")
			model.Projects = append(model.Projects, Project{
				Name: segments[len(segments)-1],
				Path: path,
			})
		}
	}
	if model.RootName == "" {
		return nil, fmt.Errorf("no root project found in gradle project report")
	}
	return model, nil
}

// cutQuoted extracts the single-quoted value following marker, e.g.
// cutQuoted("Root project 'app'", "Root project ") == ("app", true).
func cutQuoted(line, marker string) (string, bool) {
	_, rest, ok := strings.Cut(line, marker)
	if !ok || !strings.HasPrefix(rest, "'") {
		return "", false
	}
	value, _, ok := strings.Cut(rest[1:], "'")
	if !ok {
		return "", false
	}
	return value, true
}
