package dom

import (
	"bytes"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Render writes the subtree rooted at e as HTML. Live input state (value,
// checked) is not serialised, only attributes.
func (e *Element) Render(w io.Writer) error {
	return html.Render(w, e.node())
}

// OuterHTML returns the rendered subtree as a string.
func (e *Element) OuterHTML() string {
	var buf bytes.Buffer
	if err := e.Render(&buf); err != nil {
		return ""
	}
	return buf.String()
}

func (e *Element) node() *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     e.tag,
		DataAtom: atom.Lookup([]byte(e.tag)),
	}

	for i, a := range e.attrs {
		n.Attr = append(n.Attr, html.Attribute{Key: a.key, Val: a.val})
		// class sits right after id when both are set, otherwise first.
		if i == 0 && a.key == "id" && len(e.classes) > 0 {
			n.Attr = append(n.Attr, html.Attribute{Key: "class", Val: e.ClassName()})
		}
	}
	if len(e.classes) > 0 && (len(e.attrs) == 0 || e.attrs[0].key != "id") {
		n.Attr = append([]html.Attribute{{Key: "class", Val: e.ClassName()}}, n.Attr...)
	}

	if e.text != "" {
		n.AppendChild(&html.Node{Type: html.TextNode, Data: e.text})
	}
	for _, c := range e.children {
		n.AppendChild(c.node())
	}
	return n
}

// RenderDocument writes e as a complete HTML document preceded by the
// html doctype.
func (e *Element) RenderDocument(w io.Writer) error {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	doc.AppendChild(e.node())
	return html.Render(w, doc)
}
