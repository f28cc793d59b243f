package scwape

import (
	"context"
	"strings"
)

// Fetcher retrieves HTML from URLs.
type Fetcher interface {
	// Fetch requests the URL and returns the HTML body decoded to UTF-8.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}

// FileReader reads HTML documents from the local filesystem.
type FileReader interface {
	// ReadFile returns the contents of the file at path decoded to UTF-8.
	ReadFile(ctx context.Context, path string) (html string, err error)
}

// Source loads a document from a URL or a file path.
type Source interface {
	// Load returns the HTML found at location. Returns EFETCH if a URL
	// cannot be fetched and EREAD if a file cannot be read.
	Load(ctx context.Context, location string) (html string, err error)
}

// IsURL reports whether location should be fetched rather than read from disk.
func IsURL(location string) bool {
	return strings.HasPrefix(location, "http")
}
