package charset_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/scwape/charset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// longASCIIPrefix pushes non-ASCII text past the 1024 bytes that encoding
// sniffing looks at.
var longASCIIPrefix = "<!--" + strings.Repeat("x", 1100) + "-->"

func TestDecode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		body        string
		contentType string
		want        string
	}{
		{
			name: "keeps valid UTF-8",
			body: "<p>héllo</p>",
			want: "<p>héllo</p>",
		},
		{
			name:        "keeps UTF-8 after a long ASCII prefix",
			body:        longASCIIPrefix + "<p>café</p>",
			contentType: "text/html",
			want:        longASCIIPrefix + "<p>café</p>",
		},
		{
			name: "strips a UTF-8 byte order mark",
			body: "\xef\xbb\xbf<p>café</p>",
			want: "<p>café</p>",
		},
		{
			name:        "follows the Content-Type charset",
			body:        "<p>caf\xe9</p>",
			contentType: "text/html; charset=iso-8859-1",
			want:        "<p>café</p>",
		},
		{
			name: "follows a meta charset for non UTF-8 bodies",
			body: `<meta charset="iso-8859-1"><p>caf` + "\xe9</p>",
			want: `<meta charset="iso-8859-1"><p>café</p>`,
		},
		{
			name: "decodes UTF-16 with a byte order mark",
			body: "\xff\xfe<\x00p\x00>\x00",
			want: "<p>",
		},
		{
			name: "falls back to windows-1252 for undeclared legacy bytes",
			body: "<p>caf\xe9 \x80</p>",
			want: "<p>café €</p>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := charset.Decode([]byte(tt.body), tt.contentType)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
