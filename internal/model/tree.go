package model

import "github.com/mj1618/ax-inspector/internal/ax"

// FromFrame converts one frame to a childless Element. Every attribute in
// the snapshot is kept in Attributes in display form.
func FromFrame(f ax.Frame) Element {
	el := Element{
		Depth:           f.Depth,
		Role:            f.Snapshot.Text(ax.AttrRole),
		RoleDescription: f.Snapshot.Text(ax.AttrRoleDescription),
		Title:           f.Snapshot.Text(ax.AttrTitle),
		Value:           f.Snapshot.Text(ax.AttrValue),
	}
	if len(f.Snapshot) > 0 {
		el.Attributes = f.Snapshot.Strings()
	}
	return el
}

// Collector accumulates frames from a walk. Its Visit method has the
// ax.VisitFunc signature.
type Collector struct {
	elements []Element
}

// Visit records f.
func (c *Collector) Visit(f ax.Frame) error {
	c.elements = append(c.elements, FromFrame(f))
	return nil
}

// Len returns the number of frames collected.
func (c *Collector) Len() int { return len(c.elements) }

// Tree returns the collected frames nested by depth.
func (c *Collector) Tree() []Element {
	return BuildTree(c.elements)
}

// BuildTree nests a depth-first pre-order element sequence into a tree.
// Each element takes as children the run of deeper elements that follows it.
func BuildTree(flat []Element) []Element {
	roots := []Element{}
	for i := 0; i < len(flat); {
		var root Element
		root, i = buildSubtree(flat, i)
		roots = append(roots, root)
	}
	return roots
}

func buildSubtree(flat []Element, i int) (Element, int) {
	el := flat[i]
	el.Children = nil
	next := i + 1
	for next < len(flat) && flat[next].Depth > flat[i].Depth {
		var child Element
		child, next = buildSubtree(flat, next)
		el.Children = append(el.Children, child)
	}
	return el, next
}
