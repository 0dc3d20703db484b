package heuristic

import (
	"context"
	"strings"

	"github.com/fwojciec/skim"
)

// Ensure Analyzer implements skim.Analyzer at compile time.
var _ skim.Analyzer = (*Analyzer)(nil)

// Analyzer implements skim.Analyzer with the package's heuristics.
type Analyzer struct {
	// KeywordLimit caps Analyze's keyword list. Zero means
	// skim.DefaultKeywordLimit.
	KeywordLimit int
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{KeywordLimit: skim.DefaultKeywordLimit}
}

// Analyze returns keywords and sentiment for text.
func (a *Analyzer) Analyze(ctx context.Context, text string) (*skim.Analysis, error) {
	if strings.TrimSpace(text) == "" {
		return nil, skim.Errorf(skim.EINVALID, "text required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &skim.Analysis{
		Keywords:  a.Keywords(text, a.KeywordLimit),
		Sentiment: a.Sentiment(text),
	}, nil
}

// Keywords returns up to limit keywords; limit <= 0 uses the default.
func (a *Analyzer) Keywords(text string, limit int) []string {
	if limit <= 0 {
		limit = skim.DefaultKeywordLimit
	}
	return Keywords(text, limit)
}

// Sentiment classifies text.
func (a *Analyzer) Sentiment(text string) skim.Sentiment {
	return Sentiment(text)
}

// Stats computes article statistics.
func (a *Analyzer) Stats(article *skim.Article) skim.ArticleStats {
	return Stats(article)
}
