package main

import (
	"fmt"

	"github.com/fwojciec/skim/dashboard"
)

// Run executes the serve command. It blocks until the context is cancelled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	srv := dashboard.NewServer(deps.Extractor, deps.Summarizer, deps.Analyzer, deps.Logger)
	fmt.Fprintf(deps.Stdout, "Dashboard listening on %s\n", deps.Config.Addr)
	if err := srv.ListenAndServe(deps.Ctx, deps.Config.Addr); err != nil {
		return fail(deps, err)
	}
	return nil
}
