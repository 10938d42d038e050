package ax

// Service queries attributes of accessibility nodes.
// Implementations may block; they must not mutate the target.
type Service interface {
	// AttributeNames returns every attribute name the node supports.
	AttributeNames(n Node) ([]string, error)

	// AttributeValue returns the current value of one attribute.
	AttributeValue(n Node, name string) (Value, error)
}

// TrustChecker reports whether the process may use the accessibility service.
// It must not trigger an interactive permission prompt.
type TrustChecker interface {
	IsTrusted() bool
}

// Application is a resolved target application.
type Application struct {
	Name string
	PID  int
	Root Node
}

// AppInfo describes a running application without a root handle.
type AppInfo struct {
	Name      string `yaml:"app"                 json:"app"`
	PID       int    `yaml:"pid"                 json:"pid"`
	Frontmost bool   `yaml:"frontmost,omitempty" json:"frontmost,omitempty"`
}

// Resolver maps a target description to an application and its root node.
type Resolver interface {
	// ResolveByName returns a *NotFoundError if no application matches.
	ResolveByName(name string) (*Application, error)

	// ResolveFrontmost returns ErrNoActiveApplication if nothing is frontmost.
	ResolveFrontmost() (*Application, error)
}

// Target selects the application to inspect.
type Target struct {
	Name      string
	Frontmost bool
}

func (t Target) String() string {
	if t.Frontmost || t.Name == "" {
		return "frontmost application"
	}
	return t.Name
}

// Resolve looks up t using r.
func (t Target) Resolve(r Resolver) (*Application, error) {
	if t.Frontmost || t.Name == "" {
		return r.ResolveFrontmost()
	}
	return r.ResolveByName(t.Name)
}
