package svg

import (
	"fmt"

	"github.com/inkstack-labs/inkwell/pkg/ir"
)

// svgNamespace is stamped on every root svg element.
const svgNamespace = "http://www.w3.org/2000/svg"

// attribute is one name/value pair; order of appearance is preserved.
type attribute struct {
	name  string
	value string
}

// node is one node of the compiled element tree. A node is either an
// element (name set, text empty) or character data (name empty).
type node struct {
	name     string
	attrs    []attribute
	children []*node
	text     string
}

func textNode(s string) *node {
	return &node{text: s}
}

func (n *node) isText() bool {
	return n.name == ""
}

func (n *node) setAttr(name, value string) {
	n.attrs = append(n.attrs, attribute{name: name, value: value})
}

// resolver maps animation-register names to output values.
type resolver struct {
	registers       map[string]string
	deferUnresolved bool
}

// resolve returns the register's configured value. Unknown names become a
// {{name}} placeholder when deferral is enabled, otherwise an
// *ir.UnresolvedReferenceError. Empty names are always an error; the
// authoring layer never validates them.
func (r resolver) resolve(name string) (string, error) {
	if name == "" {
		return "", &ir.UnresolvedReferenceError{Name: ""}
	}
	if v, ok := r.registers[name]; ok {
		return v, nil
	}
	if r.deferUnresolved {
		return "{{" + name + "}}", nil
	}
	return "", &ir.UnresolvedReferenceError{Name: name}
}

// setAnimatable writes one attribute from an animatable field: constants
// format directly, register references resolve through res, unset fields
// emit nothing.
func setAnimatable[T any](n *node, name string, a ir.Animatable[T], format func(T) string, res resolver) error {
	if !a.IsSet() {
		return nil
	}
	if reg, ok := a.RegisterName(); ok {
		v, err := res.resolve(reg)
		if err != nil {
			return fmt.Errorf("attribute %s: %w", name, err)
		}
		n.setAttr(name, v)
		return nil
	}
	v, _ := a.Value()
	n.setAttr(name, format(v))
	return nil
}

func measureString(m ir.Measurement) string { return m.String() }
func viewBoxString(v ir.ViewBox) string     { return v.String() }
func anchorString(a ir.TextAnchor) string   { return a.String() }
func identString(s string) string           { return s }

// elementNode maps one structured element to its SVG node. Attribute
// scopes (Font, TextLayout) have no SVG element of their own and render
// as a g carrying the scoped presentation attributes.
func elementNode(e ir.Element, res resolver) (*node, error) {
	switch el := e.(type) {
	case ir.Layer:
		n := &node{name: "svg"}
		n.setAttr("xmlns", svgNamespace)
		if err := setAnimatable(n, "width", el.Width, measureString, res); err != nil {
			return nil, err
		}
		if err := setAnimatable(n, "height", el.Height, measureString, res); err != nil {
			return nil, err
		}
		if err := setAnimatable(n, "viewBox", el.ViewBox, viewBoxString, res); err != nil {
			return nil, err
		}
		return n, nil

	case ir.Group:
		n := &node{name: "g"}
		if el.ID != "" {
			n.setAttr("id", el.ID)
		}
		return n, nil

	case ir.TextElement:
		n := &node{name: "text"}
		if err := setAnimatable(n, "x", el.X, measureString, res); err != nil {
			return nil, err
		}
		if err := setAnimatable(n, "y", el.Y, measureString, res); err != nil {
			return nil, err
		}
		return n, nil

	case ir.TextSpan:
		n := &node{name: "tspan"}
		if err := setAnimatable(n, "dx", el.DX, measureString, res); err != nil {
			return nil, err
		}
		if err := setAnimatable(n, "dy", el.DY, measureString, res); err != nil {
			return nil, err
		}
		return n, nil

	case ir.Font:
		n := &node{name: "g"}
		if err := setAnimatable(n, "font-family", el.Family, identString, res); err != nil {
			return nil, err
		}
		if err := setAnimatable(n, "font-size", el.Size, measureString, res); err != nil {
			return nil, err
		}
		return n, nil

	case ir.TextLayout:
		n := &node{name: "g"}
		if err := setAnimatable(n, "text-anchor", el.Anchor, anchorString, res); err != nil {
			return nil, err
		}
		return n, nil

	default:
		return nil, fmt.Errorf("unsupported element type %T", e)
	}
}
