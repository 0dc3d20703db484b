package mock

import (
	"context"

	"github.com/fwojciec/skim"
)

var _ skim.Summarizer = (*Summarizer)(nil)

// Summarizer is a mock implementation of skim.Summarizer.
type Summarizer struct {
	SummarizeFn      func(ctx context.Context, req skim.SummaryRequest) (*skim.SummaryResult, error)
	SummarizeBatchFn func(ctx context.Context, text string, lengths []skim.Length) (map[skim.Length]*skim.SummaryResult, error)
	ModelInfoFn      func() skim.ModelInfo
}

func (s *Summarizer) Summarize(ctx context.Context, req skim.SummaryRequest) (*skim.SummaryResult, error) {
	return s.SummarizeFn(ctx, req)
}

func (s *Summarizer) SummarizeBatch(ctx context.Context, text string, lengths []skim.Length) (map[skim.Length]*skim.SummaryResult, error) {
	return s.SummarizeBatchFn(ctx, text, lengths)
}

func (s *Summarizer) ModelInfo() skim.ModelInfo {
	return s.ModelInfoFn()
}

var _ skim.Generator = (*Generator)(nil)

// Generator is a mock implementation of skim.Generator.
type Generator struct {
	GenerateFn func(ctx context.Context, req skim.GenerateRequest) (string, error)
}

func (g *Generator) Generate(ctx context.Context, req skim.GenerateRequest) (string, error) {
	return g.GenerateFn(ctx, req)
}
