package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/skim"
)

// Ensure LoggingExtractor implements skim.Extractor.
var _ skim.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps one extraction strategy with debug logging.
type LoggingExtractor struct {
	next   skim.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next skim.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Name returns the wrapped strategy's name.
func (e *LoggingExtractor) Name() string {
	return e.next.Name()
}

// Extract delegates to the wrapped strategy and logs how much text it found.
func (e *LoggingExtractor) Extract(html, pageURL string) (ext *skim.Extraction, err error) {
	defer func(begin time.Time) {
		var words int
		if ext != nil {
			words = skim.CountWords(ext.Text)
		}
		e.logger.Debug("extract strategy",
			"strategy", e.next.Name(),
			"url", pageURL,
			"words", words,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html, pageURL)
}

// Ensure LoggingArticleExtractor implements skim.ArticleExtractor.
var _ skim.ArticleExtractor = (*LoggingArticleExtractor)(nil)

// LoggingArticleExtractor wraps an ArticleExtractor with logging.
type LoggingArticleExtractor struct {
	next   skim.ArticleExtractor
	logger *slog.Logger
}

// NewLoggingArticleExtractor creates a new LoggingArticleExtractor.
func NewLoggingArticleExtractor(next skim.ArticleExtractor, logger *slog.Logger) *LoggingArticleExtractor {
	return &LoggingArticleExtractor{next: next, logger: logger}
}

// ExtractArticle delegates to the wrapped extractor and logs the outcome.
func (e *LoggingArticleExtractor) ExtractArticle(ctx context.Context, url string) (a *skim.Article, err error) {
	defer func(begin time.Time) {
		attrs := []any{"url", url}
		if a != nil {
			attrs = append(attrs,
				"method", a.Method,
				"words", a.WordCount,
				"quality", a.QualityScore,
			)
		}
		attrs = append(attrs, "duration", time.Since(begin), "err", err)
		e.logger.Info("extract article", attrs...)
	}(time.Now())
	return e.next.ExtractArticle(ctx, url)
}
