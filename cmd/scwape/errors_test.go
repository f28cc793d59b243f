package main

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/fwojciec/scwape"
	"github.com/stretchr/testify/assert"
)

func TestPrintError(t *testing.T) {
	t.Parallel()

	t.Run("prints the message of domain errors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		printError(&buf, scwape.Errorf(scwape.EREAD, "Failed to read file at x.html"))

		assert.Equal(t, "Failed to read file at x.html\n", buf.String())
	})

	t.Run("unwraps wrapped domain errors", func(t *testing.T) {
		t.Parallel()

		err := fmt.Errorf("scrape: %w", scwape.Errorf(scwape.ESELECTOR, "Failed to parse selector: a["))

		assert.Equal(t, "Failed to parse selector: a[", formatError(err))
	})

	t.Run("prints other errors as is", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		printError(&buf, assert.AnError)

		assert.Equal(t, assert.AnError.Error()+"\n", buf.String())
	})
}
