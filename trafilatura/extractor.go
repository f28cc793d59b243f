// Package trafilatura narrows a page to its main content using
// go-trafilatura.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/scwape"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements scwape.Extractor at compile time.
var _ scwape.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content. Returns
// EEXTRACT if no content could be identified.
func (e *Extractor) Extract(rawHTML string) (*scwape.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, scwape.Errorf(scwape.EEXTRACT, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, scwape.Errorf(scwape.EEXTRACT, "trafilatura: %v", err)
	}
	if result.ContentNode == nil {
		return nil, scwape.Errorf(scwape.EEXTRACT, "no main content found")
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, result.ContentNode); err != nil {
		return nil, err
	}

	return &scwape.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: buf.String(),
	}, nil
}
