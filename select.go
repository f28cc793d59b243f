package scwape

import (
	"io"
	"strings"
)

// Mode controls how multiple selectors are applied to a document.
type Mode int

const (
	// ModeCombined matches all selectors in a single pass and emits elements
	// in document order.
	ModeCombined Mode = iota

	// ModeDisparate matches each selector on its own and emits the matches
	// grouped by selector.
	ModeDisparate
)

// Binding pairs a CSS selector with the format used for its matches.
type Binding struct {
	Selector string
	Format   Format
}

// Match is an element together with the format it is rendered with.
type Match struct {
	Element Element
	Format  Format
}

// Bind parses formats and pairs them with selectors by position. Selectors
// without a format get DefaultFormat; surplus formats are ignored.
// Returns EUSAGE if no selectors are given.
func Bind(selectors []string, formats []string) ([]Binding, error) {
	if len(selectors) == 0 {
		return nil, Errorf(EUSAGE, "Specify at least one selector via the -s argument. See --help for more information.")
	}

	bindings := make([]Binding, len(selectors))
	for i, sel := range selectors {
		raw := DefaultFormat
		if i < len(formats) {
			raw = formats[i]
		}
		bindings[i] = Binding{Selector: sel, Format: ParseFormat(raw)}
	}
	return bindings, nil
}

// Select resolves which elements of doc are emitted and with which format.
// Every selector is compiled before any element is returned, so a bad
// selector fails the whole selection.
func Select(doc Document, bindings []Binding, mode Mode) ([]Match, error) {
	if len(bindings) == 0 {
		return nil, Errorf(EUSAGE, "Specify at least one selector via the -s argument. See --help for more information.")
	}
	if mode == ModeDisparate {
		return selectDisparate(doc, bindings)
	}
	return selectCombined(doc, bindings)
}

func selectDisparate(doc Document, bindings []Binding) ([]Match, error) {
	selectors, err := compileAll(doc, bindings)
	if err != nil {
		return nil, err
	}

	var matches []Match
	for i, sel := range selectors {
		for _, el := range doc.Select(sel) {
			matches = append(matches, Match{Element: el, Format: bindings[i].Format})
		}
	}
	return matches, nil
}

func selectCombined(doc Document, bindings []Binding) ([]Match, error) {
	parts := make([]string, len(bindings))
	for i, b := range bindings {
		parts[i] = b.Selector
	}
	combined := strings.Join(parts, ",")

	compound, err := doc.Compile(combined)
	if err != nil {
		return nil, Errorf(ESELECTOR, "Failed to parse CSS selector: %s", combined)
	}
	selectors, err := compileAll(doc, bindings)
	if err != nil {
		return nil, err
	}

	elements := doc.Select(compound)
	if len(elements) == 0 {
		return nil, Errorf(ENOMATCH, "No elements found for selector: %q", combined)
	}

	matches := make([]Match, 0, len(elements))
	for _, el := range elements {
		// The lowest selector index wins when several selectors match.
		for i, sel := range selectors {
			if sel.Match(el) {
				matches = append(matches, Match{Element: el, Format: bindings[i].Format})
				break
			}
		}
	}
	return matches, nil
}

func compileAll(doc Document, bindings []Binding) ([]Selector, error) {
	selectors := make([]Selector, len(bindings))
	for i, b := range bindings {
		sel, err := doc.Compile(b.Selector)
		if err != nil {
			return nil, Errorf(ESELECTOR, "Failed to parse selector: %s", b.Selector)
		}
		selectors[i] = sel
	}
	return selectors, nil
}

// Extract selects elements of doc and renders every match to w. Nothing is
// written if selection fails.
func Extract(w io.Writer, doc Document, bindings []Binding, mode Mode) error {
	matches, err := Select(doc, bindings, mode)
	if err != nil {
		return err
	}
	for _, m := range matches {
		if err := Render(w, m.Element, m.Format); err != nil {
			return err
		}
	}
	return nil
}
