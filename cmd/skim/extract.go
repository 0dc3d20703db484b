package main

import (
	"fmt"
	"strings"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	a, err := deps.Extractor.ExtractArticle(deps.Ctx, c.URL)
	if err != nil {
		return fail(deps, err)
	}
	if c.JSON {
		return printJSON(deps.Stdout, a)
	}

	w := deps.Stdout
	if a.Title != "" {
		fmt.Fprintf(w, "# %s\n", a.Title)
	}
	fmt.Fprintln(w, a.URL)
	if len(a.Authors) > 0 {
		fmt.Fprintf(w, "By %s\n", strings.Join(a.Authors, ", "))
	}
	if a.PublishDate != nil {
		fmt.Fprintf(w, "Published %s\n", a.PublishDate.Format("2006-01-02"))
	}
	fmt.Fprintf(w, "%d words, quality %d/100, extracted with %s\n\n", a.WordCount, a.QualityScore, a.Method)

	if c.Markdown && a.Markdown != "" {
		fmt.Fprintln(w, a.Markdown)
	} else {
		fmt.Fprintln(w, a.Text)
	}
	return nil
}
