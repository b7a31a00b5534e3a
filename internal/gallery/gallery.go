// Package gallery holds the built-in example documents rendered by the
// CLI. Each document is authored with the draw combinators and compiles
// on any registered device.
package gallery

import (
	"fmt"
	"sort"

	"github.com/inkstack-labs/inkwell/pkg/draw"
	"github.com/inkstack-labs/inkwell/pkg/ir"
)

// Document is one named example.
type Document struct {
	// Name is the unique document identifier used on the command line
	// and as the output file stem.
	Name string

	// Description is a one-line summary shown in listings.
	Description string

	// Build authors a fresh description. Each call returns a new value;
	// a description is consumed by a single draw pass.
	Build func() draw.Graphic
}

var documents = map[string]Document{
	"greeting": {
		Name:        "greeting",
		Description: "Centered greeting on a fixed-size layer",
		Build:       greeting,
	},
	"spans": {
		Name:        "spans",
		Description: "Text with shifted spans inside nested groups",
		Build:       spans,
	},
	"banner": {
		Name:        "banner",
		Description: "Headline and position fed from animation registers",
		Build:       banner,
	},
}

// Get returns the named document.
func Get(name string) (Document, error) {
	doc, ok := documents[name]
	if !ok {
		return Document{}, fmt.Errorf("unknown document %q (available: %v)", name, Names())
	}
	return doc, nil
}

// All returns every document, sorted by name.
func All() []Document {
	docs := make([]Document, 0, len(documents))
	for _, d := range documents {
		docs = append(docs, d)
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].Name < docs[j].Name })
	return docs
}

// Names returns all document names, sorted.
func Names() []string {
	names := make([]string, 0, len(documents))
	for name := range documents {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func greeting() draw.Graphic {
	layer := ir.NewLayer(ir.Px(320), ir.Px(200))

	return draw.With(layer,
		draw.Apply(
			draw.With(ir.NewText(ir.Px(160), ir.Px(100)), draw.Text("hello, inkwell")),
			ir.NewFont("Georgia").WithSize(ir.Pt(24)),
			ir.TextLayout{Anchor: ir.Constant(ir.AnchorMiddle)},
		),
	)
}

func spans() draw.Graphic {
	layer := ir.NewLayer(ir.Px(400), ir.Px(300)).
		WithViewBox(ir.ViewBox{Width: 400, Height: 300})

	line := draw.With(ir.NewText(ir.Px(20), ir.Px(40)),
		draw.Text("first"),
		draw.With(ir.TextSpan{DX: ir.Constant(ir.Em(1))}, draw.Text("second")),
		draw.With(ir.TextSpan{DY: ir.Constant(ir.Em(1.2))}, draw.Text("third")),
	)

	return draw.With(layer,
		draw.With(ir.Group{ID: "content"},
			draw.Apply(line, ir.NewFont("monospace").WithSize(ir.Px(16))),
		),
	)
}

func banner() draw.Graphic {
	layer := ir.NewLayer(ir.Percent(100), ir.Px(80))

	headline := ir.TextElement{
		X: ir.Register[ir.Measurement]("slide-x"),
		Y: ir.Constant(ir.Px(48)),
	}

	return draw.With(layer,
		draw.Apply(
			draw.With(headline, draw.Animated("headline")),
			ir.NewFont("sans-serif").WithSize(ir.Px(32)),
		),
	)
}
