// Package charset decodes fetched and stored HTML documents to UTF-8.
package charset

import (
	"bytes"
	"strings"
	"unicode/utf8"

	htmlcharset "golang.org/x/net/html/charset"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Decode returns body as UTF-8 text.
//
// A byte order mark or a charset parameter in contentType decides the
// encoding. Without one, a body that is valid UTF-8 is returned as is, and
// only invalid input is decoded using its <meta> declaration or the
// windows-1252 fallback of HTML parsers.
func Decode(body []byte, contentType string) (string, error) {
	enc, name, certain := htmlcharset.DetermineEncoding(body, contentType)
	if name == "utf-8" || (!certain && utf8.Valid(body)) {
		return string(bytes.TrimPrefix(body, utf8BOM)), nil
	}

	decoded, err := enc.NewDecoder().Bytes(body)
	if err != nil {
		return "", err
	}
	return strings.TrimPrefix(string(decoded), "\ufeff"), nil
}
