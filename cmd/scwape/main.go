package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/scwape"
	"github.com/fwojciec/scwape/fs"
	"github.com/fwojciec/scwape/goquery"
	scwapehttp "github.com/fwojciec/scwape/http"
	"github.com/fwojciec/scwape/readability"
	"github.com/fwojciec/scwape/rod"
	scwapeslog "github.com/fwojciec/scwape/slog"
	"github.com/fwojciec/scwape/trafilatura"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		printError(os.Stderr, err)
		stop()
		os.Exit(1)
	}
	stop()
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("scwape"),
		kong.Description("Select elements from an HTML page with CSS selectors and print them"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return scwape.Errorf(scwape.EUSAGE, "No arguments provided. See --help for more information.")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return scwape.Errorf(scwape.EUSAGE, "%s", err)
	}

	// Usage errors are reported before any browser is launched or file read.
	bindings, err := scwape.Bind(cli.Selectors, cli.Formats)
	if err != nil {
		return err
	}

	logger := newLogger(stderr, cli.Verbose)

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Parser: scwapeslog.NewLoggingParser(goquery.NewParser(), logger),
	}

	fetcher, err := newFetcher(cli, logger)
	if err != nil {
		return err
	}
	defer fetcher.Close()

	files := scwapeslog.NewLoggingFileReader(fs.NewReader(), logger)
	deps.Source = NewLocationSource(fetcher, files)

	if extractor := newExtractor(cli.Extract); extractor != nil {
		deps.Extractor = scwapeslog.NewLoggingExtractor(extractor, logger)
	}

	if cli.Timeout > 0 {
		var cancel context.CancelFunc
		deps.Ctx, cancel = context.WithTimeout(ctx, cli.Timeout)
		defer cancel()
	}

	cmd := &ScrapeCmd{
		Location: cli.Location,
		Bindings: bindings,
		Mode:     cli.Mode(),
	}
	return cmd.Run(deps)
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func newFetcher(cli *CLI, logger *slog.Logger) (scwape.Fetcher, error) {
	if !cli.Render {
		return scwapeslog.NewLoggingFetcher(scwapehttp.NewFetcher(scwapehttp.WithTimeout(cli.Timeout)), logger), nil
	}
	f, err := rod.NewFetcher(rod.WithFetchTimeout(cli.Timeout))
	if err != nil {
		return nil, scwape.Errorf(scwape.EFETCH, "Failed to start browser: %s. Chrome or Chromium must be installed.", err)
	}
	return scwapeslog.NewLoggingFetcher(f, logger), nil
}

func newExtractor(name string) scwape.Extractor {
	switch name {
	case ExtractReadability:
		return readability.NewExtractor()
	case ExtractTrafilatura:
		return trafilatura.NewExtractor()
	}
	return nil
}
