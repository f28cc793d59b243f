package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/scwape/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "page.html")
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

func TestReader_ReadFile(t *testing.T) {
	t.Parallel()

	t.Run("returns file contents", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, []byte("<html><body><p>héllo</p></body></html>"))

		html, err := fs.NewReader().ReadFile(context.Background(), path)

		require.NoError(t, err)
		assert.Equal(t, "<html><body><p>héllo</p></body></html>", html)
	})

	t.Run("keeps UTF-8 text that follows a long ASCII prefix", func(t *testing.T) {
		t.Parallel()

		page := "<!--" + strings.Repeat("x", 1100) + "--><p>café</p>"
		path := writeFile(t, []byte(page))

		html, err := fs.NewReader().ReadFile(context.Background(), path)

		require.NoError(t, err)
		assert.Equal(t, page, html)
	})

	t.Run("decodes the charset declared in a meta tag", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, []byte(`<html><head><meta charset="iso-8859-1"></head><body>caf`+"\xe9"+`</body></html>`))

		html, err := fs.NewReader().ReadFile(context.Background(), path)

		require.NoError(t, err)
		assert.Contains(t, html, "café")
	})

	t.Run("returns error for missing files", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewReader().ReadFile(context.Background(), filepath.Join(t.TempDir(), "missing.html"))

		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, []byte("<p>x</p>"))
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := fs.NewReader().ReadFile(ctx, path)

		require.ErrorIs(t, err, context.Canceled)
	})
}
