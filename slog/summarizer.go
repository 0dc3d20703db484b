package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/skim"
)

// Ensure LoggingSummarizer implements skim.Summarizer.
var _ skim.Summarizer = (*LoggingSummarizer)(nil)

// LoggingSummarizer wraps a Summarizer with logging.
type LoggingSummarizer struct {
	next   skim.Summarizer
	logger *slog.Logger
}

// NewLoggingSummarizer creates a new LoggingSummarizer.
func NewLoggingSummarizer(next skim.Summarizer, logger *slog.Logger) *LoggingSummarizer {
	return &LoggingSummarizer{next: next, logger: logger}
}

// Summarize delegates to the wrapped summarizer and logs the result metrics.
func (s *LoggingSummarizer) Summarize(ctx context.Context, req skim.SummaryRequest) (res *skim.SummaryResult, err error) {
	defer func(begin time.Time) {
		attrs := []any{"length", req.Length}
		if res != nil {
			attrs = append(attrs,
				"status", res.Status,
				"originalWords", res.OriginalWords,
				"summaryWords", res.SummaryWords,
				"compression", res.CompressionRatio,
				"truncated", res.Truncated,
			)
		}
		attrs = append(attrs, "duration", time.Since(begin), "err", err)
		s.logger.Info("summarize", attrs...)
	}(time.Now())
	return s.next.Summarize(ctx, req)
}

// SummarizeBatch delegates to the wrapped summarizer and logs how many
// lengths failed.
func (s *LoggingSummarizer) SummarizeBatch(ctx context.Context, text string, lengths []skim.Length) (results map[skim.Length]*skim.SummaryResult, err error) {
	defer func(begin time.Time) {
		var failed int
		for _, r := range results {
			if !r.OK() {
				failed++
			}
		}
		s.logger.Info("summarize batch",
			"lengths", lengths,
			"results", len(results),
			"failed", failed,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SummarizeBatch(ctx, text, lengths)
}

// ModelInfo delegates to the wrapped summarizer.
func (s *LoggingSummarizer) ModelInfo() skim.ModelInfo {
	return s.next.ModelInfo()
}

// Ensure LoggingGenerator implements skim.Generator.
var _ skim.Generator = (*LoggingGenerator)(nil)

// LoggingGenerator wraps a Generator with debug logging of each inference call.
type LoggingGenerator struct {
	next   skim.Generator
	logger *slog.Logger
}

// NewLoggingGenerator creates a new LoggingGenerator.
func NewLoggingGenerator(next skim.Generator, logger *slog.Logger) *LoggingGenerator {
	return &LoggingGenerator{next: next, logger: logger}
}

// Generate delegates to the wrapped generator.
func (g *LoggingGenerator) Generate(ctx context.Context, req skim.GenerateRequest) (out string, err error) {
	defer func(begin time.Time) {
		g.logger.Debug("generate",
			"length", req.Length,
			"inputChars", len(req.Text),
			"maxTokens", req.MaxTokens,
			"temperature", req.Temperature,
			"seed", req.Seed,
			"outputChars", len(out),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return g.next.Generate(ctx, req)
}
