package ir

// Element is the structured payload carried by a scope-open instruction.
type Element interface {
	elementNode()
}

// Attr is an element that scopes attributes over its content without
// contributing structure of its own (e.g. a font context).
type Attr interface {
	Element
	attrNode()
}

// Container is an element that contains child content (e.g. a layer or a
// text element). Containment and attribute scoping are distinct
// capabilities so the two cannot be interchanged by mistake.
type Container interface {
	Element
	containerNode()
}

// ---------- Containers ----------

// Layer is the root rendering surface into which a backend renders child
// elements.
type Layer struct {
	// Width of the rendering layer.
	Width Animatable[Measurement]
	// Height of the rendering layer.
	Height Animatable[Measurement]
	// ViewBox stretches the content to fit a particular region.
	ViewBox Animatable[ViewBox]
}

func (Layer) elementNode()   {}
func (Layer) containerNode() {}

// NewLayer creates a layer with constant width and height.
func NewLayer(width, height Measurement) Layer {
	return Layer{
		Width:  Constant(width),
		Height: Constant(height),
	}
}

// WithViewBox returns a copy of the layer with a constant view box.
func (l Layer) WithViewBox(v ViewBox) Layer {
	l.ViewBox = Constant(v)
	return l
}

// Group collects child elements under one shared scope.
type Group struct {
	// ID is an optional element identifier.
	ID string
}

func (Group) elementNode()   {}
func (Group) containerNode() {}

// TextElement positions a run of character content.
type TextElement struct {
	X Animatable[Measurement]
	Y Animatable[Measurement]
}

func (TextElement) elementNode()   {}
func (TextElement) containerNode() {}

// NewText creates a text element at a constant position.
func NewText(x, y Measurement) TextElement {
	return TextElement{X: Constant(x), Y: Constant(y)}
}

// TextSpan adjusts position for a nested run inside a text element.
type TextSpan struct {
	// DX and DY shift the span relative to the current text position.
	DX Animatable[Measurement]
	DY Animatable[Measurement]
}

func (TextSpan) elementNode()   {}
func (TextSpan) containerNode() {}

// ---------- Attribute scopes ----------

// Font scopes font properties over its content.
type Font struct {
	Family Animatable[string]
	Size   Animatable[Measurement]
}

func (Font) elementNode() {}
func (Font) attrNode()    {}

// NewFont creates a font scope with a constant family.
func NewFont(family string) Font {
	return Font{Family: Constant(family)}
}

// WithSize returns a copy of the font with a constant size.
func (f Font) WithSize(size Measurement) Font {
	f.Size = Constant(size)
	return f
}

// TextAnchor aligns a run of text relative to its position.
type TextAnchor uint8

// Text anchor values.
const (
	AnchorStart TextAnchor = iota
	AnchorMiddle
	AnchorEnd
)

func (a TextAnchor) String() string {
	switch a {
	case AnchorMiddle:
		return "middle"
	case AnchorEnd:
		return "end"
	default:
		return "start"
	}
}

// TextLayout scopes text layout properties over its content.
type TextLayout struct {
	Anchor Animatable[TextAnchor]
}

func (TextLayout) elementNode() {}
func (TextLayout) attrNode()    {}
