package main

import (
	"fmt"

	"github.com/fwojciec/skim"
)

// Run executes the summarize command.
func (c *SummarizeCmd) Run(deps *Dependencies) error {
	length, err := skim.ParseLength(c.Length)
	if err != nil {
		return fail(deps, err)
	}
	text, err := readInput(deps, c.Input)
	if err != nil {
		return fail(deps, err)
	}

	res, err := deps.Summarizer.Summarize(deps.Ctx, skim.SummaryRequest{Text: text, Length: length})
	if err != nil {
		return fail(deps, err)
	}
	if c.JSON {
		return printJSON(deps.Stdout, res)
	}
	printSummary(deps.Stdout, res)
	return nil
}

// Run executes the batch command. Individual length failures are printed
// in place and do not fail the command unless every length failed.
func (c *BatchCmd) Run(deps *Dependencies) error {
	lengths, err := parseLengths(c.Lengths)
	if err != nil {
		return fail(deps, err)
	}
	text, err := readInput(deps, c.Input)
	if err != nil {
		return fail(deps, err)
	}

	results, err := deps.Summarizer.SummarizeBatch(deps.Ctx, text, lengths)
	if err != nil {
		return fail(deps, err)
	}
	if c.JSON {
		if err := printJSON(deps.Stdout, results); err != nil {
			return err
		}
	}

	r := &skim.Report{Summaries: results}
	failed := 0
	for i, s := range r.OrderedSummaries() {
		if !s.OK() {
			failed++
		}
		if c.JSON {
			continue
		}
		if i > 0 {
			fmt.Fprintln(deps.Stdout)
		}
		printSummary(deps.Stdout, s)
	}
	if failed > 0 && failed == len(results) {
		return fail(deps, skim.Errorf(skim.EGENERATE, "all %d summaries failed", failed))
	}
	return nil
}
