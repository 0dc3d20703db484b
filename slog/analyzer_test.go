package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/skim"
	"github.com/fwojciec/skim/mock"
	skimslog "github.com/fwojciec/skim/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingAnalyzer_Analyze(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.Analyzer{
		AnalyzeFn: func(_ context.Context, _ string) (*skim.Analysis, error) {
			return &skim.Analysis{Keywords: []string{"Budget", "council"}, Sentiment: skim.SentimentNeutral}, nil
		},
	}

	got, err := skimslog.NewLoggingAnalyzer(inner, logger).Analyze(context.Background(), "the council budget")

	require.NoError(t, err)
	assert.Len(t, got.Keywords, 2)
	output := buf.String()
	assert.Contains(t, output, "analyze")
	assert.Contains(t, output, "words=3")
	assert.Contains(t, output, "keywords=2")
	assert.Contains(t, output, "sentiment=neutral")
}

func TestLoggingAnalyzer_Delegates(t *testing.T) {
	t.Parallel()

	inner := &mock.Analyzer{
		KeywordsFn:  func(_ string, limit int) []string { return []string{"a"}[:min(1, limit)] },
		SentimentFn: func(_ string) skim.Sentiment { return skim.SentimentPositive },
		StatsFn:     func(a *skim.Article) skim.ArticleStats { return skim.ArticleStats{WordCount: a.WordCount} },
	}
	a := skimslog.NewLoggingAnalyzer(inner, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

	assert.Equal(t, []string{"a"}, a.Keywords("text", 8))
	assert.Equal(t, skim.SentimentPositive, a.Sentiment("text"))
	assert.Equal(t, 12, a.Stats(&skim.Article{WordCount: 12}).WordCount)
}
