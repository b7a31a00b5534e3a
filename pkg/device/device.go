// Package device defines the backend contract for compiling a finished
// instruction log into a serialized document.
//
// This package contains the public contract that all device backends must
// implement. Concrete backend implementations are in pkg/devices/
// subdirectories.
package device

import (
	"context"

	"github.com/inkstack-labs/inkwell/pkg/draw"
	"github.com/inkstack-labs/inkwell/pkg/ir"
)

// Device compiles instruction logs into executable programs. Compilation
// is the structural phase: scope markers are resolved into a
// backend-specific form, and animation references are resolved or
// deferred per backend policy.
//
// A Device must tolerate concurrent Compile calls without letting one
// document's scope state interleave with another's: either make Compile
// fully reentrant per call or serialize access internally.
type Device interface {
	// Compile consumes the finished log and produces a Program that is
	// independent of the log's storage. It never mutates the log. A scope
	// imbalance is reported as *ir.StructuralError; all other failures are
	// backend-specific. A cancelled context produces nothing.
	Compile(ctx context.Context, log []ir.Instruction) (Program, error)
}

// Program is the self-contained artifact produced by one Compile call.
// Execution never requires the original log or generator to still exist.
// A Program is single-use unless the backend documents otherwise.
type Program interface {
	// Execute serializes the compiled form into the final output, a
	// UTF-8 document for a markup backend. A cancelled context produces
	// nothing.
	Execute(ctx context.Context) ([]byte, error)
}

// Render runs the whole pipeline for one document: linearize the graphic
// into a fresh generator, compile the log on dev, and execute the
// program. The first error aborts the pipeline.
func Render(ctx context.Context, dev Device, graphic draw.Graphic) ([]byte, error) {
	g := draw.NewGenerator()
	graphic.Draw(g)

	program, err := dev.Compile(ctx, g.Instructions())
	if err != nil {
		return nil, err
	}
	return program.Execute(ctx)
}
