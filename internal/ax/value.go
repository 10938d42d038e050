package ax

import (
	"fmt"
	"strconv"
)

// Node is an opaque handle to one element of the accessibility tree.
// Handles belong to the Service that produced them; callers only borrow them.
type Node any

// Value is an attribute value as returned by the accessibility service.
// The set of implementations is closed: Text, Number, Point, Size, NodeRef,
// NodeList and Opaque.
type Value interface {
	isValue()
}

// Text is a string attribute.
type Text string

// Number is a numeric attribute.
type Number float64

// Point is a screen coordinate, e.g. AXPosition.
type Point struct {
	X, Y float64
}

// Size is a width and height, e.g. AXSize.
type Size struct {
	Width, Height float64
}

// NodeRef is an attribute holding a single element, e.g. AXParent.
type NodeRef struct {
	Node Node
}

// NodeList is an attribute holding several elements, e.g. AXChildren.
type NodeList []Node

// Opaque is any value the service returned that has no dedicated variant.
// Description is the service's own textual rendering of it.
type Opaque struct {
	Description string
}

func (Text) isValue()     {}
func (Number) isValue()   {}
func (Point) isValue()    {}
func (Size) isValue()     {}
func (NodeRef) isValue()  {}
func (NodeList) isValue() {}
func (Opaque) isValue()   {}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func (p Point) String() string {
	return "{" + formatFloat(p.X) + ", " + formatFloat(p.Y) + "}"
}

func (s Size) String() string {
	return "{" + formatFloat(s.Width) + ", " + formatFloat(s.Height) + "}"
}

// Display returns the canonical human-readable form of v.
func Display(v Value) string {
	switch v := v.(type) {
	case Text:
		return string(v)
	case Number:
		return formatFloat(float64(v))
	case Point:
		return v.String()
	case Size:
		return v.String()
	case NodeRef:
		return "<element>"
	case NodeList:
		if len(v) == 1 {
			return "<1 element>"
		}
		return fmt.Sprintf("<%d elements>", len(v))
	case Opaque:
		return v.Description
	case nil:
		return ""
	default:
		panic(fmt.Sprintf("ax: unknown value type %T", v))
	}
}

// Comparable reports whether v is a value-type attribute whose equality
// across reads is meaningful. Element handles are not: the OS may hand out
// a new handle for the same element on every query.
func Comparable(v Value) bool {
	switch v.(type) {
	case Text, Number, Point, Size, Opaque:
		return true
	default:
		return false
	}
}
