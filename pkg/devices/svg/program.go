package svg

import (
	"bytes"
	"context"
	"encoding/xml"
	"strings"
)

// Program holds the compiled element tree, ready for serialization. It is
// independent of the instruction log it was compiled from and, unlike the
// general contract's single-use default, may be executed repeatedly.
type Program struct {
	root   *node
	indent string
}

// Execute serializes the compiled tree into a UTF-8 SVG document.
func (p *Program) Execute(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	for _, c := range p.root.children {
		p.writeNode(&buf, c, 0)
	}
	return buf.Bytes(), nil
}

func (p *Program) writeNode(buf *bytes.Buffer, n *node, depth int) {
	prefix := strings.Repeat(p.indent, depth)

	if n.isText() {
		buf.WriteString(prefix)
		escapeTo(buf, n.text)
		buf.WriteString("\n")
		return
	}

	buf.WriteString(prefix)
	buf.WriteString("<")
	buf.WriteString(n.name)
	for _, a := range n.attrs {
		buf.WriteString(" ")
		buf.WriteString(a.name)
		buf.WriteString(`="`)
		escapeTo(buf, a.value)
		buf.WriteString(`"`)
	}

	switch {
	case len(n.children) == 0:
		buf.WriteString("/>\n")

	case textOnly(n.children):
		// Inline character data so text runs stay free of layout
		// whitespace.
		buf.WriteString(">")
		for _, c := range n.children {
			escapeTo(buf, c.text)
		}
		buf.WriteString("</")
		buf.WriteString(n.name)
		buf.WriteString(">\n")

	default:
		buf.WriteString(">\n")
		for _, c := range n.children {
			p.writeNode(buf, c, depth+1)
		}
		buf.WriteString(prefix)
		buf.WriteString("</")
		buf.WriteString(n.name)
		buf.WriteString(">\n")
	}
}

func textOnly(children []*node) bool {
	for _, c := range children {
		if !c.isText() {
			return false
		}
	}
	return true
}

func escapeTo(buf *bytes.Buffer, s string) {
	// xml.EscapeText only fails on writer errors; bytes.Buffer has none.
	_ = xml.EscapeText(buf, []byte(s))
}
