// Package slog decorates scwape services with structured logging.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/scwape"
)

// Compile-time interface verification.
var (
	_ scwape.Fetcher    = (*LoggingFetcher)(nil)
	_ scwape.FileReader = (*LoggingFileReader)(nil)
)

// LoggingFetcher wraps a Fetcher with debug logging.
type LoggingFetcher struct {
	next   scwape.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next scwape.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch logs the URL being fetched and delegates to the wrapped fetcher.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		f.logger.Info("fetch",
			"url", url,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}

// LoggingFileReader wraps a FileReader with debug logging.
type LoggingFileReader struct {
	next   scwape.FileReader
	logger *slog.Logger
}

// NewLoggingFileReader creates a new LoggingFileReader.
func NewLoggingFileReader(next scwape.FileReader, logger *slog.Logger) *LoggingFileReader {
	return &LoggingFileReader{next: next, logger: logger}
}

// ReadFile logs the path being read and delegates to the wrapped reader.
func (r *LoggingFileReader) ReadFile(ctx context.Context, path string) (html string, err error) {
	defer func(begin time.Time) {
		r.logger.Info("read",
			"path", path,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.ReadFile(ctx, path)
}
