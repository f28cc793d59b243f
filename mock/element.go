package mock

import "github.com/fwojciec/scwape"

var _ scwape.Element = (*Element)(nil)

// Element is a mock implementation of scwape.Element.
type Element struct {
	IDFn      func() string
	NameFn    func() string
	ClassesFn func() []string
	AttrsFn   func() []scwape.Attr
	TextFn    func() string
	HTMLFn    func() (string, error)
}

func (e *Element) ID() string {
	return e.IDFn()
}

func (e *Element) Name() string {
	return e.NameFn()
}

func (e *Element) Classes() []string {
	return e.ClassesFn()
}

func (e *Element) Attrs() []scwape.Attr {
	return e.AttrsFn()
}

func (e *Element) Text() string {
	return e.TextFn()
}

func (e *Element) HTML() (string, error) {
	return e.HTMLFn()
}
