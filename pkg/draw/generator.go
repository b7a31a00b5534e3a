package draw

import "github.com/inkstack-labs/inkwell/pkg/ir"

// Generator is the single mutable owner of the growing instruction log.
// The log is append-only: nothing is ever reordered or removed. Exactly
// one authoring pass owns a Generator at a time; it is not safe for
// concurrent use.
type Generator struct {
	log []ir.Instruction
}

// NewGenerator creates a generator with an empty log.
func NewGenerator() *Generator {
	return &Generator{}
}

// Push appends one instruction.
func (g *Generator) Push(in ir.Instruction) {
	g.log = append(g.log, in)
}

// PushScope decomposes a structured element into its scope-open
// instruction and appends it. Both scoping capabilities share this entry
// point so the decomposition lives in one place.
func (g *Generator) PushScope(e ir.Element) {
	g.Push(ir.Open(e))
}

// Pop appends a close marker unwinding n scope levels. Standard wrappers
// always close exactly one level; the count stays general for backends
// that fold multi-level closes.
func (g *Generator) Pop(n int) {
	g.Push(ir.Close(n))
}

// Len returns the number of instructions in the log.
func (g *Generator) Len() int {
	return len(g.log)
}

// Instructions returns the finished log for compilation. The caller must
// not author into the generator once compilation begins.
func (g *Generator) Instructions() []ir.Instruction {
	return g.log
}
