package ir

import (
	"errors"
	"testing"
)

func TestCheckBalance_Balanced(t *testing.T) {
	tests := []struct {
		name string
		log  []Instruction
	}{
		{name: "empty log", log: nil},
		{name: "leaves only", log: []Instruction{Text("a"), Text("b")}},
		{
			name: "single scope",
			log:  []Instruction{Open(Group{}), Text("a"), Close(1)},
		},
		{
			name: "nested scopes",
			log: []Instruction{
				Open(Group{}), Open(Group{}), Text("a"), Close(1), Close(1),
			},
		},
		{
			name: "multi-level close",
			log: []Instruction{
				Open(Group{}), Open(Group{}), Open(Group{}), Text("a"), Close(3),
			},
		},
		{
			name: "sibling scopes",
			log: []Instruction{
				Open(Group{}), Close(1), Open(Group{}), Close(1),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := CheckBalance(tt.log); err != nil {
				t.Errorf("expected balanced log, got %v", err)
			}
		})
	}
}

func TestCheckBalance_UnclosedScope(t *testing.T) {
	log := []Instruction{Open(Group{}), Text("a")}

	err := CheckBalance(log)
	if err == nil {
		t.Fatal("expected error for unclosed scope")
	}

	var serr *StructuralError
	if !errors.As(err, &serr) {
		t.Fatalf("expected *StructuralError, got %T", err)
	}
	if serr.Depth != 1 {
		t.Errorf("expected depth 1, got %d", serr.Depth)
	}
	if serr.Index != len(log) {
		t.Errorf("expected index %d, got %d", len(log), serr.Index)
	}
}

func TestCheckBalance_CloseExceedsOpen(t *testing.T) {
	log := []Instruction{Open(Group{}), Close(2)}

	err := CheckBalance(log)
	if err == nil {
		t.Fatal("expected error for close exceeding open")
	}

	var serr *StructuralError
	if !errors.As(err, &serr) {
		t.Fatalf("expected *StructuralError, got %T", err)
	}
	if serr.Index != 1 {
		t.Errorf("expected index 1, got %d", serr.Index)
	}
	if serr.Depth >= 0 {
		t.Errorf("expected negative depth, got %d", serr.Depth)
	}
}

func TestCheckBalance_CloseWithoutOpen(t *testing.T) {
	err := CheckBalance([]Instruction{Close(1)})
	var serr *StructuralError
	if !errors.As(err, &serr) {
		t.Fatalf("expected *StructuralError, got %v", err)
	}
}

func TestCheckBalance_NonPositiveCount(t *testing.T) {
	tests := []struct {
		name  string
		log   []Instruction
		index int
		count int
	}{
		{
			name:  "zero count",
			log:   []Instruction{Open(Group{}), Close(0), Close(1)},
			index: 1,
			count: 0,
		},
		{
			name:  "negative count",
			log:   []Instruction{Open(Group{}), Close(-1), Close(1)},
			index: 1,
			count: -1,
		},
		{
			// A negative count inflates the running sum, so the
			// counter alone would see 1, 2, 0 and call this balanced
			// while a backend's scope stack has nothing to pop.
			name:  "negative count cancelled by overclose",
			log:   []Instruction{Open(Group{}), Close(-1), Close(2)},
			index: 1,
			count: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckBalance(tt.log)
			if err == nil {
				t.Fatal("expected error for non-positive close count")
			}

			var serr *StructuralError
			if !errors.As(err, &serr) {
				t.Fatalf("expected *StructuralError, got %T", err)
			}
			if !serr.InvalidCount {
				t.Error("expected InvalidCount to be set")
			}
			if serr.Index != tt.index {
				t.Errorf("expected index %d, got %d", tt.index, serr.Index)
			}
			if serr.Count != tt.count {
				t.Errorf("expected count %d, got %d", tt.count, serr.Count)
			}
		})
	}
}
