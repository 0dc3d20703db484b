package main

import (
	"fmt"
)

// Run executes the keywords command.
func (c *KeywordsCmd) Run(deps *Dependencies) error {
	text, err := readInput(deps, c.Input)
	if err != nil {
		return fail(deps, err)
	}
	for _, k := range deps.Analyzer.Keywords(text, c.Limit) {
		fmt.Fprintln(deps.Stdout, k)
	}
	return nil
}

// Run executes the sentiment command.
func (c *SentimentCmd) Run(deps *Dependencies) error {
	text, err := readInput(deps, c.Input)
	if err != nil {
		return fail(deps, err)
	}
	fmt.Fprintln(deps.Stdout, deps.Analyzer.Sentiment(text))
	return nil
}

// Run executes the stats command.
func (c *StatsCmd) Run(deps *Dependencies) error {
	a, err := deps.Extractor.ExtractArticle(deps.Ctx, c.URL)
	if err != nil {
		return fail(deps, err)
	}
	s := deps.Analyzer.Stats(a)
	if c.JSON {
		return printJSON(deps.Stdout, s)
	}

	w := deps.Stdout
	fmt.Fprintf(w, "Words:                %d\n", s.WordCount)
	fmt.Fprintf(w, "Characters:           %d\n", s.CharacterCount)
	fmt.Fprintf(w, "Sentences:            %d\n", s.SentenceCount)
	fmt.Fprintf(w, "Paragraphs:           %d\n", s.ParagraphCount)
	fmt.Fprintf(w, "Reading time:         %d min\n", s.ReadingTime)
	fmt.Fprintf(w, "Avg sentence length:  %.1f words\n", s.AverageSentenceLength)
	fmt.Fprintf(w, "Avg paragraph length: %.1f words\n", s.AverageParagraphLength)
	fmt.Fprintf(w, "Has authors:          %t\n", s.HasAuthors)
	fmt.Fprintf(w, "Has date:             %t\n", s.HasDate)
	fmt.Fprintf(w, "Quality:              %d/100\n", s.QualityScore)
	fmt.Fprintf(w, "Method:               %s\n", s.Method)
	return nil
}
