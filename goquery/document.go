// Package goquery implements scwape.Document on top of goquery, with
// selectors compiled by cascadia.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/scwape"
)

// Compile-time interface verification.
var (
	_ scwape.Parser   = (*Parser)(nil)
	_ scwape.Document = (*Document)(nil)
	_ scwape.Selector = (*Selector)(nil)
)

// Parser builds goquery documents from HTML text.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse implements scwape.Parser.
func (p *Parser) Parse(html string) (scwape.Document, error) {
	return NewDocument(html)
}

// Document is a parsed HTML document.
type Document struct {
	doc *goquery.Document
}

// NewDocument parses html into a Document.
func NewDocument(html string) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, scwape.Errorf(scwape.EINTERNAL, "failed to parse HTML: %v", err)
	}
	return &Document{doc: doc}, nil
}

// Compile parses css into a Selector.
func (d *Document) Compile(css string) (scwape.Selector, error) {
	m, err := cascadia.Compile(css)
	if err != nil {
		return nil, scwape.Errorf(scwape.ESELECTOR, "failed to parse selector %q: %v", css, err)
	}
	return &Selector{css: css, m: m}, nil
}

// Select returns the elements matching sel in document order. Selectors
// compiled elsewhere are recompiled from their source text.
func (d *Document) Select(sel scwape.Selector) []scwape.Element {
	s, ok := sel.(*Selector)
	if !ok {
		compiled, err := d.Compile(sel.String())
		if err != nil {
			return nil
		}
		s = compiled.(*Selector)
	}

	found := d.doc.FindMatcher(s.m)
	elements := make([]scwape.Element, 0, found.Length())
	found.Each(func(_ int, match *goquery.Selection) {
		elements = append(elements, newElement(match))
	})
	return elements
}

// Selector is a CSS selector compiled by cascadia.
type Selector struct {
	css string
	m   cascadia.Selector
}

// Match reports whether el satisfies the selector. Elements that do not
// come from this package never match.
func (s *Selector) Match(el scwape.Element) bool {
	e, ok := el.(*Element)
	if !ok {
		return false
	}
	return s.m.Match(e.node())
}

// String returns the selector source.
func (s *Selector) String() string {
	return s.css
}
