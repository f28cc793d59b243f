package scwape

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// DefaultFormat is applied to selectors that have no format of their own.
const DefaultFormat = `\text\n`

// ControlKind identifies an element property a format can emit.
type ControlKind int

// Control kinds in the order the tokenizer resolves them. When markers
// overlap, the kind declared first wins.
const (
	ControlID ControlKind = iota
	ControlName
	ControlClasses
	ControlText
	ControlHTML
	ControlAttrs
)

var controlNames = [...]string{
	ControlID:      "id",
	ControlName:    "name",
	ControlClasses: "classes",
	ControlText:    "text",
	ControlHTML:    "html",
	ControlAttrs:   "attrs",
}

// ControlKinds lists every control kind in resolution order.
var ControlKinds = []ControlKind{
	ControlID,
	ControlName,
	ControlClasses,
	ControlText,
	ControlHTML,
	ControlAttrs,
}

// String returns the name of the kind, e.g. "text".
func (k ControlKind) String() string {
	if k < 0 || int(k) >= len(controlNames) {
		return fmt.Sprintf("ControlKind(%d)", int(k))
	}
	return controlNames[k]
}

// Marker returns the spelling of the kind inside a format string, e.g. `\text`.
func (k ControlKind) Marker() string {
	return `\` + k.String()
}

// Segment is a single piece of a parsed format: either literal text or a
// control placeholder.
type Segment struct {
	Text      string
	Control   ControlKind
	IsControl bool
}

// Literal returns a literal text segment.
func Literal(text string) Segment {
	return Segment{Text: text}
}

// Control returns a control segment of the given kind.
func Control(kind ControlKind) Segment {
	return Segment{Control: kind, IsControl: true}
}

// Format is a parsed format string.
type Format []Segment

// ParseFormat splits s into literal and control segments and resolves
// backslash escapes inside the literals. It never fails: malformed escapes
// are kept as typed.
//
// Escapes follow Go string literals, plus \' and \$. This is wider than
// shell quoting: \x41, \101 and \u0041 all resolve to "A". Shell-only
// forms such as \` and \u{41} are not escapes and stay literal.
func ParseFormat(s string) Format {
	if s == "" {
		return Format{}
	}

	segments := Format{Literal(s)}
	for _, kind := range ControlKinds {
		segments = splitControl(segments, kind)
	}

	for i, seg := range segments {
		if !seg.IsControl {
			segments[i].Text = unescape(seg.Text)
		}
	}
	return segments
}

// splitControl cuts every literal segment at unescaped occurrences of the
// marker for kind. A marker directly preceded by a backslash is escaped.
func splitControl(segments Format, kind ControlKind) Format {
	marker := kind.Marker()
	result := make(Format, 0, len(segments))

	for _, seg := range segments {
		if seg.IsControl {
			result = append(result, seg)
			continue
		}

		text := seg.Text
		last := 0
		for from := 0; ; {
			i := strings.Index(text[from:], marker)
			if i < 0 {
				break
			}
			i += from
			if i == 0 || text[i-1] != '\\' {
				if last != i {
					result = append(result, Literal(text[last:i]))
				}
				result = append(result, Control(kind))
				last = i + len(marker)
			}
			from = i + len(marker)
		}
		if last < len(text) {
			result = append(result, Literal(text[last:]))
		}
	}
	return result
}

// unescape resolves Go-style backslash escapes in s. Shell-style \' and \$
// are accepted as well. If s holds a malformed escape or is not valid UTF-8
// it is returned as is.
func unescape(s string) string {
	if !strings.Contains(s, `\`) || !utf8.ValidString(s) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\\' && i+1 < len(s):
			next := s[i+1]
			if next == '\'' || next == '$' {
				b.WriteByte(next)
			} else {
				b.WriteByte(c)
				b.WriteByte(next)
			}
			i++
		case c == '"':
			b.WriteString(`\"`)
		case c == '\n':
			b.WriteString(`\n`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')

	out, err := strconv.Unquote(b.String())
	if err != nil {
		return s
	}
	return out
}

// String returns a format string that parses back into f.
func (f Format) String() string {
	var b strings.Builder
	for i, seg := range f {
		if seg.IsControl {
			b.WriteString(seg.Control.Marker())
			continue
		}
		beforeControl := i+1 < len(f) && f[i+1].IsControl
		b.WriteString(escapeLiteral(seg.Text, beforeControl))
	}
	return b.String()
}

// escapeLiteral is the inverse of unescape. Short escapes such as \n are
// spelled in hex when the following text would turn them into a control
// marker, and a trailing backslash is spelled in hex when a control follows
// so it does not escape that control.
func escapeLiteral(s string, beforeControl bool) string {
	var b strings.Builder
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		rest := s[i+size:]
		switch {
		case r == utf8.RuneError && size == 1:
			fmt.Fprintf(&b, `\x%02x`, s[i])
		case r == '\\':
			if rest == "" && beforeControl {
				b.WriteString(`\x5c`)
			} else {
				b.WriteString(`\\`)
			}
		case r < ' ' || r == 0x7f:
			short := shortEscape(r)
			if short == "" || formsMarker(short[1:]+rest) {
				fmt.Fprintf(&b, `\x%02x`, r)
			} else {
				b.WriteString(short)
			}
		default:
			b.WriteRune(r)
		}
		i += size
	}
	return b.String()
}

func shortEscape(r rune) string {
	switch r {
	case '\a':
		return `\a`
	case '\b':
		return `\b`
	case '\f':
		return `\f`
	case '\n':
		return `\n`
	case '\r':
		return `\r`
	case '\t':
		return `\t`
	case '\v':
		return `\v`
	}
	return ""
}

// formsMarker reports whether s begins with the name of a control kind.
func formsMarker(s string) bool {
	for _, kind := range ControlKinds {
		if strings.HasPrefix(s, kind.String()) {
			return true
		}
	}
	return false
}
