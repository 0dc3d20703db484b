package main

import (
	"fmt"

	"github.com/fwojciec/skim"
)

// Run executes the demo command.
func (c *DemoCmd) Run(deps *Dependencies) error {
	for _, d := range skim.DemoArticles() {
		fmt.Fprintf(deps.Stdout, "%-16s %s\n", d.Name, d.URL)
	}
	return nil
}
