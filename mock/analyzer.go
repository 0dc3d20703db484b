package mock

import (
	"context"

	"github.com/fwojciec/skim"
)

var _ skim.Analyzer = (*Analyzer)(nil)

// Analyzer is a mock implementation of skim.Analyzer.
type Analyzer struct {
	AnalyzeFn   func(ctx context.Context, text string) (*skim.Analysis, error)
	KeywordsFn  func(text string, limit int) []string
	SentimentFn func(text string) skim.Sentiment
	StatsFn     func(a *skim.Article) skim.ArticleStats
}

func (a *Analyzer) Analyze(ctx context.Context, text string) (*skim.Analysis, error) {
	return a.AnalyzeFn(ctx, text)
}

func (a *Analyzer) Keywords(text string, limit int) []string {
	return a.KeywordsFn(text, limit)
}

func (a *Analyzer) Sentiment(text string) skim.Sentiment {
	return a.SentimentFn(text)
}

func (a *Analyzer) Stats(article *skim.Article) skim.ArticleStats {
	return a.StatsFn(article)
}
