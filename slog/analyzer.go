package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/skim"
)

// Ensure LoggingAnalyzer implements skim.Analyzer.
var _ skim.Analyzer = (*LoggingAnalyzer)(nil)

// LoggingAnalyzer wraps an Analyzer, logging Analyze calls.
type LoggingAnalyzer struct {
	next   skim.Analyzer
	logger *slog.Logger
}

// NewLoggingAnalyzer creates a new LoggingAnalyzer.
func NewLoggingAnalyzer(next skim.Analyzer, logger *slog.Logger) *LoggingAnalyzer {
	return &LoggingAnalyzer{next: next, logger: logger}
}

// Analyze delegates to the wrapped analyzer and logs the result.
func (a *LoggingAnalyzer) Analyze(ctx context.Context, text string) (res *skim.Analysis, err error) {
	defer func(begin time.Time) {
		attrs := []any{"words", skim.CountWords(text)}
		if res != nil {
			attrs = append(attrs, "keywords", len(res.Keywords), "sentiment", res.Sentiment)
		}
		attrs = append(attrs, "duration", time.Since(begin), "err", err)
		a.logger.Info("analyze", attrs...)
	}(time.Now())
	return a.next.Analyze(ctx, text)
}

// Keywords delegates to the wrapped analyzer.
func (a *LoggingAnalyzer) Keywords(text string, limit int) []string {
	return a.next.Keywords(text, limit)
}

// Sentiment delegates to the wrapped analyzer.
func (a *LoggingAnalyzer) Sentiment(text string) skim.Sentiment {
	return a.next.Sentiment(text)
}

// Stats delegates to the wrapped analyzer.
func (a *LoggingAnalyzer) Stats(article *skim.Article) skim.ArticleStats {
	return a.next.Stats(article)
}
