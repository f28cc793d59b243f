package mock

import (
	"context"

	"github.com/fwojciec/scwape"
)

var (
	_ scwape.Source     = (*Source)(nil)
	_ scwape.Fetcher    = (*Fetcher)(nil)
	_ scwape.FileReader = (*FileReader)(nil)
)

// Source is a mock implementation of scwape.Source.
type Source struct {
	LoadFn func(ctx context.Context, location string) (string, error)
}

func (s *Source) Load(ctx context.Context, location string) (string, error) {
	return s.LoadFn(ctx, location)
}

// FileReader is a mock implementation of scwape.FileReader.
type FileReader struct {
	ReadFileFn func(ctx context.Context, path string) (string, error)
}

func (r *FileReader) ReadFile(ctx context.Context, path string) (string, error) {
	return r.ReadFileFn(ctx, path)
}

// Fetcher is a mock implementation of scwape.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}
