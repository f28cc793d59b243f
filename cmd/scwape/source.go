package main

import (
	"context"

	"github.com/fwojciec/scwape"
)

// Compile-time interface verification.
var _ scwape.Source = (*LocationSource)(nil)

// LocationSource implements scwape.Source by fetching URLs and reading
// everything else from disk.
type LocationSource struct {
	fetcher scwape.Fetcher
	files   scwape.FileReader
}

// NewLocationSource creates a new LocationSource.
func NewLocationSource(fetcher scwape.Fetcher, files scwape.FileReader) *LocationSource {
	return &LocationSource{
		fetcher: fetcher,
		files:   files,
	}
}

// Load implements scwape.Source.
func (s *LocationSource) Load(ctx context.Context, location string) (string, error) {
	if scwape.IsURL(location) {
		html, err := s.fetcher.Fetch(ctx, location)
		if err != nil {
			return "", scwape.Errorf(scwape.EFETCH, "Failed to fetch html from url: %s (%s)", location, err)
		}
		return html, nil
	}

	html, err := s.files.ReadFile(ctx, location)
	if err != nil {
		return "", scwape.Errorf(scwape.EREAD, "Failed to read file at %s", location)
	}
	return html, nil
}
