// Package http fetches HTML documents over plain HTTP, without running
// any JavaScript on the page.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/scwape"
	"github.com/fwojciec/scwape/charset"
)

// DefaultTimeout bounds a whole request, body included.
const DefaultTimeout = 10 * time.Second

const acceptHTML = "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8"

var _ scwape.Fetcher = (*Fetcher)(nil)

// Fetcher issues GET requests and decodes the responses to UTF-8.
type Fetcher struct {
	client *http.Client
}

// Option configures the client used by a Fetcher.
type Option func(*http.Client)

// WithTimeout replaces DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(c *http.Client) {
		c.Timeout = d
	}
}

// NewFetcher creates a new Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	client := &http.Client{Timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(client)
	}
	return &Fetcher{client: client}
}

// Fetch implements scwape.Fetcher. Any 2xx response is a success. The body
// is decoded with the charset named by the Content-Type header when there is
// one, and is otherwise kept as is if it is valid UTF-8.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", acceptHTML)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return "", fmt.Errorf("GET %s: %s", url, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return charset.Decode(body, resp.Header.Get("Content-Type"))
}

// Close is a no-op. Idle connections belong to the client's transport.
func (f *Fetcher) Close() error {
	return nil
}
