package main

import (
	"fmt"

	"github.com/fwojciec/skim"
	"github.com/fwojciec/skim/pipeline"
)

// Run executes the digest command.
func (c *DigestCmd) Run(deps *Dependencies) error {
	lengths, err := parseLengths(c.Lengths)
	if err != nil {
		return fail(deps, err)
	}

	p := &pipeline.Pipeline{
		Extractor:  deps.Extractor,
		Summarizer: deps.Summarizer,
		Analyzer:   deps.Analyzer,
	}
	report, err := p.Run(deps.Ctx, pipeline.Request{
		URL:     c.URL,
		Lengths: lengths,
		Analyze: !c.NoAnalyze,
	})
	if err != nil {
		return fail(deps, err)
	}
	if c.JSON {
		return printJSON(deps.Stdout, report)
	}
	fmt.Fprint(deps.Stdout, skim.FormatReport(report))
	return nil
}
