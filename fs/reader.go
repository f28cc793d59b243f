// Package fs reads HTML documents from the local filesystem.
package fs

import (
	"context"
	"os"

	"github.com/fwojciec/scwape"
	"github.com/fwojciec/scwape/charset"
)

// Ensure Reader implements scwape.FileReader at compile time.
var _ scwape.FileReader = (*Reader)(nil)

// Reader reads HTML files and decodes them to UTF-8.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// ReadFile returns the contents of the file at path as UTF-8. Files that
// are not valid UTF-8 are decoded using their byte order mark or
// <meta charset> declaration.
func (r *Reader) ReadFile(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	body, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return charset.Decode(body, "")
}
