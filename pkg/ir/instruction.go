package ir

import "fmt"

// Kind discriminates the instruction variants.
type Kind uint8

// Instruction kinds.
const (
	// KindText is a character-data leaf.
	KindText Kind = iota + 1
	// KindRef is a leaf referencing an animation register.
	KindRef
	// KindOpen opens a scope carrying a structured element payload.
	KindOpen
	// KindClose closes Count enclosing scopes.
	KindClose
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindRef:
		return "ref"
	case KindOpen:
		return "open"
	case KindClose:
		return "close"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Instruction is one tagged record in the instruction log. Exactly one of
// the payload fields is meaningful, selected by Kind:
// Text for KindText, Name for KindRef, Element for KindOpen, Count for
// KindClose.
type Instruction struct {
	Kind    Kind
	Text    string
	Name    string
	Element Element
	Count   int
}

// Text builds a character-data leaf instruction.
func Text(s string) Instruction {
	return Instruction{Kind: KindText, Text: s}
}

// Ref builds a leaf instruction referencing the named animation register.
func Ref(name string) Instruction {
	return Instruction{Kind: KindRef, Name: name}
}

// Open builds a scope-open instruction carrying the element payload.
func Open(e Element) Instruction {
	return Instruction{Kind: KindOpen, Element: e}
}

// Close builds an instruction closing n enclosing scopes.
func Close(n int) Instruction {
	return Instruction{Kind: KindClose, Count: n}
}

func (in Instruction) String() string {
	switch in.Kind {
	case KindText:
		return fmt.Sprintf("text %q", in.Text)
	case KindRef:
		return fmt.Sprintf("ref %q", in.Name)
	case KindOpen:
		return fmt.Sprintf("open %T", in.Element)
	case KindClose:
		return fmt.Sprintf("close %d", in.Count)
	default:
		return in.Kind.String()
	}
}
