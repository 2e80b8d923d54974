package gradle

// RootPath is the project path of a module's root project.
const RootPath = ":"

// Project is one project inside a module's build.
type Project struct {
	Name string
	Path string // gradle project path, ":" for the root project
}

// IsRoot reports whether the project is the module's root project.
func (p Project) IsRoot() bool { return p.Path == RootPath }

// ProjectModel is the topology of one module's build: the root project
// name and every project in the build, the root itself included.
type ProjectModel struct {
	RootName string
	Projects []Project
}

// Connector opens introspection sessions against module directories.
type Connector interface {
	Connect(dir string) (Session, error)
}

// Session is one introspection session against a single module
// directory. Callers must Close it on every path; a session may hold an
// external process or daemon connection.
type Session interface {
	Model() (*ProjectModel, error)
	Close() error
}
