package draw

import "github.com/inkstack-labs/inkwell/pkg/ir"

// Apply wraps target with one attribute scope per attr. Scopes nest
// outer-to-inner in listed order: for attrs (A, B, C) the emitted
// instructions are open(A), open(B), open(C), the target's instructions,
// then three close(1) markers unwinding innermost-first. Each attr is
// exactly one open/close pair, which keeps the log balanced by
// construction.
func Apply(target Graphic, attrs ...ir.Attr) Graphic {
	return Func(func(g *Generator) {
		for _, a := range attrs {
			g.PushScope(a)
		}
		target.Draw(g)
		for range attrs {
			g.Pop(1)
		}
	})
}

// With draws children inside the parent container. The bracket shape is
// identical to Apply (one open, the children in document order, one
// close(1)), but containment is a distinct capability from attribute
// scoping.
func With(parent ir.Container, children ...Graphic) Graphic {
	return Func(func(g *Generator) {
		g.PushScope(parent)
		for _, c := range children {
			c.Draw(g)
		}
		g.Pop(1)
	})
}
