package mock

import (
	"context"

	"github.com/fwojciec/skim"
)

var _ skim.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of skim.Extractor.
type Extractor struct {
	NameFn    func() string
	ExtractFn func(html, pageURL string) (*skim.Extraction, error)
}

func (e *Extractor) Name() string {
	return e.NameFn()
}

func (e *Extractor) Extract(html, pageURL string) (*skim.Extraction, error) {
	return e.ExtractFn(html, pageURL)
}

var _ skim.ArticleExtractor = (*ArticleExtractor)(nil)

// ArticleExtractor is a mock implementation of skim.ArticleExtractor.
type ArticleExtractor struct {
	ExtractArticleFn func(ctx context.Context, url string) (*skim.Article, error)
}

func (e *ArticleExtractor) ExtractArticle(ctx context.Context, url string) (*skim.Article, error) {
	return e.ExtractArticleFn(ctx, url)
}

var _ skim.QualityScorer = (*QualityScorer)(nil)

// QualityScorer is a mock implementation of skim.QualityScorer.
type QualityScorer struct {
	ScoreFn func(a *skim.Article) int
}

func (s *QualityScorer) Score(a *skim.Article) int {
	return s.ScoreFn(a)
}
