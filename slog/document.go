package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/scwape"
)

// Compile-time interface verification.
var (
	_ scwape.Parser    = (*LoggingParser)(nil)
	_ scwape.Document  = (*LoggingDocument)(nil)
	_ scwape.Extractor = (*LoggingExtractor)(nil)
)

// LoggingParser wraps a Parser and decorates the documents it returns.
type LoggingParser struct {
	next   scwape.Parser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next scwape.Parser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// Parse logs the size of the input and wraps the parsed document.
func (p *LoggingParser) Parse(html string) (doc scwape.Document, err error) {
	defer func(begin time.Time) {
		p.logger.Info("parse",
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())

	doc, err = p.next.Parse(html)
	if err != nil {
		return nil, err
	}
	return NewLoggingDocument(doc, p.logger), nil
}

// LoggingDocument wraps a Document with debug logging.
type LoggingDocument struct {
	next   scwape.Document
	logger *slog.Logger
}

// NewLoggingDocument creates a new LoggingDocument.
func NewLoggingDocument(next scwape.Document, logger *slog.Logger) *LoggingDocument {
	return &LoggingDocument{next: next, logger: logger}
}

// Compile logs selectors that fail to compile.
func (d *LoggingDocument) Compile(css string) (scwape.Selector, error) {
	sel, err := d.next.Compile(css)
	if err != nil {
		d.logger.Info("compile", "selector", css, "err", err)
	}
	return sel, err
}

// Select logs the selector and the number of matches.
func (d *LoggingDocument) Select(sel scwape.Selector) (elements []scwape.Element) {
	defer func(begin time.Time) {
		d.logger.Info("select",
			"selector", sel.String(),
			"count", len(elements),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return d.next.Select(sel)
}

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   scwape.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next scwape.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract logs the extracted title and content size.
func (e *LoggingExtractor) Extract(html string) (result *scwape.ExtractResult, err error) {
	defer func(begin time.Time) {
		var title string
		var size int
		if result != nil {
			title, size = result.Title, len(result.ContentHTML)
		}
		e.logger.Info("extract",
			"title", title,
			"bytes", size,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html)
}
