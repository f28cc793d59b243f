package scwape

import (
	"io"
	"strings"
)

// Render writes el to w projected through f.
func Render(w io.Writer, el Element, f Format) error {
	for _, seg := range f {
		text := seg.Text
		if seg.IsControl {
			var err error
			if text, err = project(el, seg.Control); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, text); err != nil {
			return err
		}
	}
	return nil
}

// project returns the element property named by kind.
func project(el Element, kind ControlKind) (string, error) {
	switch kind {
	case ControlID:
		return el.ID(), nil
	case ControlName:
		return el.Name(), nil
	case ControlClasses:
		return strings.Join(el.Classes(), ","), nil
	case ControlText:
		return el.Text(), nil
	case ControlHTML:
		return el.HTML()
	case ControlAttrs:
		attrs := el.Attrs()
		parts := make([]string, len(attrs))
		for i, a := range attrs {
			parts[i] = a.Key + ": " + a.Value
		}
		return strings.Join(parts, ","), nil
	}
	return "", Errorf(EINTERNAL, "unknown control kind %v", kind)
}
