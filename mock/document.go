package mock

import "github.com/fwojciec/scwape"

var (
	_ scwape.Parser    = (*Parser)(nil)
	_ scwape.Document  = (*Document)(nil)
	_ scwape.Selector  = (*Selector)(nil)
	_ scwape.Extractor = (*Extractor)(nil)
)

// Parser is a mock implementation of scwape.Parser.
type Parser struct {
	ParseFn func(html string) (scwape.Document, error)
}

func (p *Parser) Parse(html string) (scwape.Document, error) {
	return p.ParseFn(html)
}

// Document is a mock implementation of scwape.Document.
type Document struct {
	CompileFn func(css string) (scwape.Selector, error)
	SelectFn  func(sel scwape.Selector) []scwape.Element
}

func (d *Document) Compile(css string) (scwape.Selector, error) {
	return d.CompileFn(css)
}

func (d *Document) Select(sel scwape.Selector) []scwape.Element {
	return d.SelectFn(sel)
}

// Selector is a mock implementation of scwape.Selector.
type Selector struct {
	MatchFn  func(el scwape.Element) bool
	StringFn func() string
}

func (s *Selector) Match(el scwape.Element) bool {
	return s.MatchFn(el)
}

func (s *Selector) String() string {
	return s.StringFn()
}

// Extractor is a mock implementation of scwape.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*scwape.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*scwape.ExtractResult, error) {
	return e.ExtractFn(html)
}
