// Package pipeline runs one dashboard request end to end: extract the
// article, summarize it at the requested lengths and derive analytics.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/fwojciec/skim"
)

// Request describes one digest run.
type Request struct {
	URL     string
	Lengths []skim.Length
	Analyze bool
}

// Pipeline sequences extraction, summarization and analysis.
type Pipeline struct {
	Extractor  skim.ArticleExtractor
	Summarizer skim.Summarizer
	Analyzer   skim.Analyzer
}

// Run extracts req.URL and builds a report. Extraction failures abort the
// run. Summarization failures are kept per length in the report and
// analysis failures only add a warning.
func (p *Pipeline) Run(ctx context.Context, req Request) (*skim.Report, error) {
	start := time.Now()

	lengths := req.Lengths
	if len(lengths) == 0 {
		lengths = skim.Lengths()
	}
	for _, l := range lengths {
		if !l.Valid() {
			return nil, skim.Errorf(skim.EINVALID, "unknown summary length %q", l)
		}
	}

	a, err := p.Extractor.ExtractArticle(ctx, req.URL)
	if err != nil {
		return nil, err
	}

	r := &skim.Report{
		Article:   a,
		Stats:     p.Analyzer.Stats(a),
		Summaries: map[skim.Length]*skim.SummaryResult{},
	}
	if a.QualityScore < skim.QualityWarnThreshold {
		r.Warnings = append(r.Warnings, fmt.Sprintf(
			"low content quality (%d/100): the extracted text may include navigation or boilerplate", a.QualityScore))
	}

	summaries, err := p.Summarizer.SummarizeBatch(ctx, a.Text, lengths)
	if err != nil {
		r.Warnings = append(r.Warnings, "summarization unavailable: "+skim.ErrorMessage(err))
	} else {
		r.Summaries = summaries
	}

	if req.Analyze {
		analysis, err := p.Analyzer.Analyze(ctx, a.Text)
		if err != nil {
			r.Warnings = append(r.Warnings, "analysis unavailable")
		} else {
			r.Analysis = analysis
		}
	}

	r.TotalTime = time.Since(start)
	return r, nil
}
