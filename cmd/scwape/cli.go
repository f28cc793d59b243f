package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/scwape"
)

// Main-content extractors selectable with --extract.
const (
	ExtractNone        = "none"
	ExtractReadability = "readability"
	ExtractTrafilatura = "trafilatura"
)

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Location  string        `arg:"" name:"url-or-file" help:"URL (starting with http) or path of the HTML document"`
	Selectors []string      `short:"s" name:"selector" sep:"none" help:"CSS selector; repeat for several selectors"`
	Formats   []string      `short:"f" name:"format" sep:"none" help:"Output format for the selector at the same position (default: \\text\\n). Controls: \\id \\name \\classes \\text \\html \\attrs"`
	Disparate bool          `short:"d" help:"Apply each selector on its own and group output by selector"`
	Render    bool          `short:"r" env:"SCWAPE_RENDER" help:"Render the page in headless Chrome before selecting"`
	Extract   string        `enum:"none,readability,trafilatura" default:"none" env:"SCWAPE_EXTRACT" help:"Narrow the page to its main content first (none, readability, trafilatura)"`
	Timeout   time.Duration `short:"t" default:"10s" env:"SCWAPE_TIMEOUT" help:"Timeout for loading the document"`
	Verbose   bool          `short:"v" env:"SCWAPE_VERBOSE" help:"Log diagnostics to stderr"`
}

// Mode returns the selection mode requested on the command line.
func (c *CLI) Mode() scwape.Mode {
	if c.Disparate {
		return scwape.ModeDisparate
	}
	return scwape.ModeCombined
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Source    scwape.Source
	Parser    scwape.Parser
	Extractor scwape.Extractor // optional
}
