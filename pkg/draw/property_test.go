package draw_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/inkstack-labs/inkwell/pkg/draw"
	"github.com/inkstack-labs/inkwell/pkg/ir"
)

// randomGraphic builds a random description with bounded nesting depth.
// The same seed always builds the same description.
func randomGraphic(r *rand.Rand, depth int) draw.Graphic {
	if depth <= 0 {
		if r.Intn(2) == 0 {
			return draw.Text(fmt.Sprintf("leaf-%d", r.Intn(100)))
		}
		return draw.Animated(fmt.Sprintf("reg-%d", r.Intn(10)))
	}

	switch r.Intn(5) {
	case 0:
		return draw.Text(fmt.Sprintf("leaf-%d", r.Intn(100)))
	case 1:
		return draw.Animated(fmt.Sprintf("reg-%d", r.Intn(10)))
	case 2:
		n := r.Intn(4)
		items := make([]draw.Graphic, n)
		for i := range items {
			items[i] = randomGraphic(r, depth-1)
		}
		return draw.Seq(items...)
	case 3:
		attrs := make([]ir.Attr, 1+r.Intn(3))
		for i := range attrs {
			if r.Intn(2) == 0 {
				attrs[i] = ir.NewFont(fmt.Sprintf("font-%d", r.Intn(5)))
			} else {
				attrs[i] = ir.TextLayout{Anchor: ir.Constant(ir.TextAnchor(r.Intn(3)))}
			}
		}
		return draw.Apply(randomGraphic(r, depth-1), attrs...)
	default:
		n := r.Intn(3)
		children := make([]draw.Graphic, n)
		for i := range children {
			children[i] = randomGraphic(r, depth-1)
		}
		return draw.With(ir.Group{ID: fmt.Sprintf("g-%d", r.Intn(100))}, children...)
	}
}

func recordSeed(seed int64, depth int) []ir.Instruction {
	g := draw.NewGenerator()
	randomGraphic(rand.New(rand.NewSource(seed)), depth).Draw(g)
	return g.Instructions()
}

func TestScopeBalanceProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("running counter never negative, zero at end", prop.ForAll(
		func(seed int64, depth int) bool {
			log := recordSeed(seed, depth)

			// Replay the counter explicitly so intermediate prefixes are
			// checked, not just the final sum.
			running := 0
			for _, in := range log {
				switch in.Kind {
				case ir.KindOpen:
					running++
				case ir.KindClose:
					running -= in.Count
				}
				if running < 0 {
					return false
				}
			}
			return running == 0 && ir.CheckBalance(log) == nil
		},
		gen.Int64(),
		gen.IntRange(0, 6),
	))

	properties.Property("drawing twice yields identical logs", prop.ForAll(
		func(seed int64, depth int) bool {
			first := recordSeed(seed, depth)
			second := recordSeed(seed, depth)
			if len(first) != len(second) {
				return false
			}
			for i := range first {
				if first[i] != second[i] {
					return false
				}
			}
			return true
		},
		gen.Int64(),
		gen.IntRange(0, 6),
	))

	properties.TestingRun(t)
}
