package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/skim"
	"github.com/fwojciec/skim/mock"
	skimslog "github.com/fwojciec/skim/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("logs strategy name and word count at debug level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		inner := &mock.Extractor{
			NameFn: func() string { return "trafilatura" },
			ExtractFn: func(_, _ string) (*skim.Extraction, error) {
				return &skim.Extraction{Text: "one two three"}, nil
			},
		}

		ext := skimslog.NewLoggingExtractor(inner, logger)
		got, err := ext.Extract("<html></html>", "https://example.com/a")

		require.NoError(t, err)
		assert.Equal(t, "one two three", got.Text)
		assert.Equal(t, "trafilatura", ext.Name())
		output := buf.String()
		assert.Contains(t, output, "extract strategy")
		assert.Contains(t, output, "strategy=trafilatura")
		assert.Contains(t, output, "words=3")
	})

	t.Run("is silent at info level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			NameFn: func() string { return "jsonld" },
			ExtractFn: func(_, _ string) (*skim.Extraction, error) {
				return nil, errors.New("bad json")
			},
		}

		_, err := skimslog.NewLoggingExtractor(inner, logger).Extract("", "")

		require.Error(t, err)
		assert.Empty(t, buf.String())
	})
}

func TestLoggingArticleExtractor_ExtractArticle(t *testing.T) {
	t.Parallel()

	t.Run("logs method, words and quality", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ArticleExtractor{
			ExtractArticleFn: func(_ context.Context, url string) (*skim.Article, error) {
				return &skim.Article{URL: url, Method: "readability", WordCount: 640, QualityScore: 72}, nil
			},
		}

		a, err := skimslog.NewLoggingArticleExtractor(inner, logger).ExtractArticle(context.Background(), "https://example.com/a")

		require.NoError(t, err)
		assert.Equal(t, "readability", a.Method)
		output := buf.String()
		assert.Contains(t, output, "extract article")
		assert.Contains(t, output, "url=https://example.com/a")
		assert.Contains(t, output, "method=readability")
		assert.Contains(t, output, "words=640")
		assert.Contains(t, output, "quality=72")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ArticleExtractor{
			ExtractArticleFn: func(_ context.Context, _ string) (*skim.Article, error) {
				return nil, errors.New("insufficient content")
			},
		}

		_, err := skimslog.NewLoggingArticleExtractor(inner, logger).ExtractArticle(context.Background(), "https://example.com/a")

		require.Error(t, err)
		assert.Contains(t, buf.String(), `err="insufficient content"`)
		assert.NotContains(t, buf.String(), "method=")
	})
}
