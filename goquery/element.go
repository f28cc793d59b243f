package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/scwape"
	"golang.org/x/net/html"
)

var _ scwape.Element = (*Element)(nil)

// Element wraps a single-node goquery selection.
type Element struct {
	sel *goquery.Selection
}

func newElement(sel *goquery.Selection) *Element {
	return &Element{sel: sel}
}

func (e *Element) node() *html.Node {
	return e.sel.Get(0)
}

// ID returns the id attribute or "".
func (e *Element) ID() string {
	return e.sel.AttrOr("id", "")
}

// Name returns the tag name as normalized by the HTML parser.
func (e *Element) Name() string {
	return goquery.NodeName(e.sel)
}

// Classes splits the class attribute on ASCII whitespace, keeping order and
// duplicates. Other spaces such as NBSP belong to the class name.
func (e *Element) Classes() []string {
	return strings.FieldsFunc(e.sel.AttrOr("class", ""), isHTMLSpace)
}

func isHTMLSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}

// Attrs returns the attributes in source order. Namespaced attributes
// (e.g. xlink:href inside SVG) keep their prefix.
func (e *Element) Attrs() []scwape.Attr {
	n := e.node()
	attrs := make([]scwape.Attr, len(n.Attr))
	for i, a := range n.Attr {
		key := a.Key
		if a.Namespace != "" {
			key = a.Namespace + ":" + a.Key
		}
		attrs[i] = scwape.Attr{Key: key, Value: a.Val}
	}
	return attrs
}

// Text returns the combined text of all descendant text nodes.
func (e *Element) Text() string {
	return e.sel.Text()
}

// HTML returns the outer HTML of the element.
func (e *Element) HTML() (string, error) {
	return goquery.OuterHtml(e.sel)
}
