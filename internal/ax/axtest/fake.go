// Package axtest provides an in-memory accessibility tree for tests.
package axtest

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mj1618/ax-inspector/internal/ax"
)

// Node is a fake accessibility element.
type Node struct {
	Attrs    map[string]ax.Value
	Children []*Node

	// Failing attributes return an *ax.QueryError when queried.
	Failing map[string]bool

	// NamesErr, if set, is returned by AttributeNames.
	NamesErr error

	// ChildrenValue, if set, replaces the NodeList normally built from Children.
	ChildrenValue ax.Value
}

// Element returns a node with the given role and children.
func Element(role string, children ...*Node) *Node {
	return &Node{
		Attrs:    map[string]ax.Value{ax.AttrRole: ax.Text(role)},
		Children: children,
	}
}

// With sets an attribute and returns n.
func (n *Node) With(name string, v ax.Value) *Node {
	if n.Attrs == nil {
		n.Attrs = map[string]ax.Value{}
	}
	n.Attrs[name] = v
	return n
}

// Fail makes the named attribute fail and returns n.
func (n *Node) Fail(names ...string) *Node {
	if n.Failing == nil {
		n.Failing = map[string]bool{}
	}
	for _, name := range names {
		n.Failing[name] = true
	}
	return n
}

// Chain returns a linear tree depth levels deep: the root plus depth
// descendants, each with role "AXGroup" and AXTitle set to its level.
func Chain(depth int) *Node {
	root := Element("AXGroup").With(ax.AttrTitle, ax.Text("0"))
	cur := root
	for i := 1; i <= depth; i++ {
		child := Element("AXGroup").With(ax.AttrTitle, ax.Text(fmt.Sprint(i)))
		cur.Children = []*Node{child}
		cur = child
	}
	return root
}

// Service implements ax.Service over Nodes and counts queries.
type Service struct {
	NameQueries  int
	ValueQueries int
}

func (s *Service) node(n ax.Node) (*Node, error) {
	fn, ok := n.(*Node)
	if !ok || fn == nil {
		return nil, fmt.Errorf("%w: %T", ax.ErrInvalidNodeHandle, n)
	}
	return fn, nil
}

// Queries returns the total number of queries issued.
func (s *Service) Queries() int {
	return s.NameQueries + s.ValueQueries
}

// AttributeNames returns the node's attribute names sorted, plus AXChildren
// when the node has children.
func (s *Service) AttributeNames(n ax.Node) ([]string, error) {
	s.NameQueries++
	fn, err := s.node(n)
	if err != nil {
		return nil, err
	}
	if fn.NamesErr != nil {
		return nil, fn.NamesErr
	}
	names := make([]string, 0, len(fn.Attrs)+1)
	for name := range fn.Attrs {
		names = append(names, name)
	}
	if fn.Children != nil || fn.ChildrenValue != nil {
		names = append(names, ax.AttrChildren)
	}
	sort.Strings(names)
	return names, nil
}

// AttributeValue returns the attribute, or an *ax.QueryError with the
// kAXErrorNoValue code when it is absent or marked failing.
func (s *Service) AttributeValue(n ax.Node, name string) (ax.Value, error) {
	s.ValueQueries++
	fn, err := s.node(n)
	if err != nil {
		return nil, err
	}
	if fn.Failing[name] {
		return nil, &ax.QueryError{Attribute: name, Code: -25204, Reason: "cannot complete"}
	}
	if name == ax.AttrChildren {
		if fn.ChildrenValue != nil {
			return fn.ChildrenValue, nil
		}
		if fn.Children != nil {
			list := make(ax.NodeList, len(fn.Children))
			for i, c := range fn.Children {
				list[i] = c
			}
			return list, nil
		}
	}
	v, ok := fn.Attrs[name]
	if !ok {
		return nil, &ax.QueryError{Attribute: name, Code: -25212, Reason: "no value"}
	}
	return v, nil
}

// Trust is a fixed TrustChecker that counts calls.
type Trust struct {
	Trusted bool
	Calls   int
}

// IsTrusted returns t.Trusted.
func (t *Trust) IsTrusted() bool {
	t.Calls++
	return t.Trusted
}

// Resolver resolves applications from a map keyed by lower-cased name.
type Resolver struct {
	Apps      map[string]*Node
	Frontmost string
}

// ResolveByName looks the name up case-insensitively.
func (r *Resolver) ResolveByName(name string) (*ax.Application, error) {
	key := strings.ToLower(name)
	root, ok := r.Apps[key]
	if !ok {
		return nil, &ax.NotFoundError{Name: name}
	}
	return &ax.Application{Name: name, PID: 100 + len(key), Root: root}, nil
}

// ResolveFrontmost returns the Frontmost app or ax.ErrNoActiveApplication.
func (r *Resolver) ResolveFrontmost() (*ax.Application, error) {
	if r.Frontmost == "" {
		return nil, ax.ErrNoActiveApplication
	}
	return r.ResolveByName(r.Frontmost)
}

// ListApplications returns every app in name order.
func (r *Resolver) ListApplications() ([]ax.AppInfo, error) {
	var apps []ax.AppInfo
	for name := range r.Apps {
		apps = append(apps, ax.AppInfo{
			Name:      name,
			PID:       100 + len(name),
			Frontmost: name == strings.ToLower(r.Frontmost),
		})
	}
	sort.Slice(apps, func(i, j int) bool { return apps[i].Name < apps[j].Name })
	return apps, nil
}
