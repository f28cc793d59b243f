package main

import (
	"bufio"

	"github.com/fwojciec/scwape"
)

// ScrapeCmd loads a document and prints the elements matched by its bindings.
type ScrapeCmd struct {
	Location string
	Bindings []scwape.Binding
	Mode     scwape.Mode
}

// Run executes the scrape.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	if len(c.Bindings) == 0 {
		return scwape.Errorf(scwape.EUSAGE, "Specify at least one selector via the -s argument. See --help for more information.")
	}

	html, err := deps.Source.Load(deps.Ctx, c.Location)
	if err != nil {
		return err
	}

	if deps.Extractor != nil {
		result, err := deps.Extractor.Extract(html)
		if err != nil {
			return scwape.Errorf(scwape.EEXTRACT, "Failed to extract main content from %s", c.Location)
		}
		html = result.ContentHTML
	}

	doc, err := deps.Parser.Parse(html)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(deps.Stdout)
	if err := scwape.Extract(w, doc, c.Bindings, c.Mode); err != nil {
		if scwape.ErrorCode(err) == scwape.ENOMATCH {
			return scwape.Errorf(scwape.ENOMATCH, "%s in file or url: %q", scwape.ErrorMessage(err), c.Location)
		}
		return err
	}
	return w.Flush()
}
