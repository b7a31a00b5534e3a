// Package draw provides the authoring layer of the pipeline: composable
// drawable values that linearize themselves, depth-first, into a
// Generator's instruction log. Authoring is pure data movement: it is
// synchronous, single-writer, and never fails.
package draw

import "github.com/inkstack-labs/inkwell/pkg/ir"

// Graphic is anything that can linearize itself into a generator.
// Drawing is one-shot: a Graphic describes a single authoring pass, not a
// repeatable query, and is not reused after Draw.
type Graphic interface {
	// Draw appends zero or more instructions to g.
	Draw(g *Generator)
}

// Func adapts a closure into a Graphic. This is how composite elements are
// authored without a named type.
type Func func(*Generator)

// Draw invokes the closure.
func (f Func) Draw(g *Generator) { f(g) }

// Text is a character-data leaf.
type Text string

// Draw appends one text-leaf instruction.
func (t Text) Draw(g *Generator) {
	g.Push(ir.Text(string(t)))
}

// Animated is a leaf that reads the named animation register at
// compile/execute time instead of carrying inline data.
func Animated(name string) Graphic {
	return Func(func(g *Generator) {
		g.Push(ir.Ref(name))
	})
}

// Seq draws each member left-to-right in document order. Members may be
// heterogeneous; any mix of Graphic implementations composes.
func Seq(items ...Graphic) Graphic {
	return Func(func(g *Generator) {
		for _, it := range items {
			it.Draw(g)
		}
	})
}
