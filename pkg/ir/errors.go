package ir

import "fmt"

// StructuralError reports a scope imbalance in an instruction log: the
// running open/close counter went negative, it did not return to zero by
// the end of the log, or a close instruction carried a count below one.
// It is backend-independent and always fatal to the compile call that
// detected it.
type StructuralError struct {
	// Index is the log position at which the imbalance was detected.
	// For an unclosed scope it equals the log length.
	Index int

	// Depth is the running scope depth at Index.
	Depth int

	// Count is the offending close count when InvalidCount is set.
	Count int

	// InvalidCount reports that the close instruction at Index carried
	// a count below one.
	InvalidCount bool
}

func (e *StructuralError) Error() string {
	switch {
	case e.InvalidCount:
		return fmt.Sprintf("scope imbalance at instruction %d: close count %d is below one", e.Index, e.Count)
	case e.Depth < 0:
		return fmt.Sprintf("scope imbalance at instruction %d: close exceeds open (depth %d)", e.Index, e.Depth)
	default:
		return fmt.Sprintf("scope imbalance: %d scope(s) left open at end of log", e.Depth)
	}
}

// UnresolvedReferenceError reports an animation-register reference the
// backend could not resolve.
type UnresolvedReferenceError struct {
	Name string
}

func (e *UnresolvedReferenceError) Error() string {
	if e.Name == "" {
		return "empty animation register name"
	}
	return fmt.Sprintf("unresolved animation register %q", e.Name)
}
