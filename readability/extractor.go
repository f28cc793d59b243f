// Package readability narrows a page to its main article using
// go-readability, so selectors only see content and not site chrome.
package readability

import (
	"strings"

	"github.com/fwojciec/scwape"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements scwape.Extractor at compile time.
var _ scwape.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*scwape.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, scwape.Errorf(scwape.EEXTRACT, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, scwape.Errorf(scwape.EEXTRACT, "readability: %v", err)
	}

	return &scwape.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
