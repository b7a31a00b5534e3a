package ir

// CheckBalance replays the open/close counter over the log and returns a
// *StructuralError on the first violation: a close count below one, a
// close that drops the depth below zero, or a non-zero depth at the end
// of the log. A balanced log returns nil.
//
// The check is backend-independent; devices run it before any
// backend-specific compilation work.
func CheckBalance(log []Instruction) error {
	depth := 0
	for i, in := range log {
		switch in.Kind {
		case KindOpen:
			depth++
		case KindClose:
			// Pop and Close keep the count general, so a hand-built
			// log can carry one the counter arithmetic would otherwise
			// silently absorb.
			if in.Count < 1 {
				return &StructuralError{Index: i, Depth: depth, Count: in.Count, InvalidCount: true}
			}
			depth -= in.Count
			if depth < 0 {
				return &StructuralError{Index: i, Depth: depth}
			}
		}
	}
	if depth != 0 {
		return &StructuralError{Index: len(log), Depth: depth}
	}
	return nil
}
