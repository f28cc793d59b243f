package scwape

// Attr is a single attribute of an element.
type Attr struct {
	Key   string
	Value string
}

// Element is a read-only handle to an element of a parsed document.
type Element interface {
	// ID returns the value of the id attribute, or "" if absent.
	ID() string

	// Name returns the lower-case tag name.
	Name() string

	// Classes returns the class names in declaration order.
	Classes() []string

	// Attrs returns the attributes in declaration order.
	Attrs() []Attr

	// Text returns the text of all descendant text nodes concatenated in
	// document order.
	Text() string

	// HTML returns the serialized outer HTML of the element.
	HTML() (string, error)
}

// Selector is a compiled CSS selector.
type Selector interface {
	// Match reports whether the element satisfies the selector.
	Match(el Element) bool

	// String returns the source text of the selector.
	String() string
}

// Document is a parsed HTML document.
type Document interface {
	// Compile parses a CSS selector. Returns ESELECTOR if css is not a
	// valid selector.
	Compile(css string) (Selector, error)

	// Select returns the elements matching sel in document order.
	Select(sel Selector) []Element
}

// Parser builds documents from HTML text.
type Parser interface {
	Parse(html string) (Document, error)
}
