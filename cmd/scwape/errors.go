package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/scwape"
)

// printError writes err to w in red. Colors are dropped when w is not a
// terminal.
func printError(w io.Writer, err error) {
	style := lipgloss.NewRenderer(w).NewStyle().Foreground(lipgloss.Color("1"))
	fmt.Fprintln(w, style.Render(formatError(err)))
}

// formatError returns the user-facing message for err.
func formatError(err error) string {
	var e *scwape.Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
