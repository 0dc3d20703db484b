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

func TestLoggingSummarizer_Summarize(t *testing.T) {
	t.Parallel()

	t.Run("logs result metrics", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Summarizer{
			SummarizeFn: func(_ context.Context, req skim.SummaryRequest) (*skim.SummaryResult, error) {
				return &skim.SummaryResult{
					Length:           req.Length,
					Status:           skim.SummaryOK,
					OriginalWords:    1000,
					SummaryWords:     50,
					CompressionRatio: 95,
				}, nil
			},
		}

		res, err := skimslog.NewLoggingSummarizer(inner, logger).Summarize(context.Background(), skim.SummaryRequest{Text: "x", Length: skim.LengthShort})

		require.NoError(t, err)
		assert.True(t, res.OK())
		output := buf.String()
		assert.Contains(t, output, "summarize")
		assert.Contains(t, output, "length=short")
		assert.Contains(t, output, "status=ok")
		assert.Contains(t, output, "summaryWords=50")
		assert.Contains(t, output, "compression=95")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Summarizer{
			SummarizeFn: func(_ context.Context, req skim.SummaryRequest) (*skim.SummaryResult, error) {
				return &skim.SummaryResult{Length: req.Length, Status: skim.SummaryFailed}, errors.New("model down")
			},
		}

		_, err := skimslog.NewLoggingSummarizer(inner, logger).Summarize(context.Background(), skim.SummaryRequest{Length: skim.LengthMedium})

		require.Error(t, err)
		assert.Contains(t, buf.String(), "status=failed")
		assert.Contains(t, buf.String(), `err="model down"`)
	})
}

func TestLoggingSummarizer_SummarizeBatch(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.Summarizer{
		SummarizeBatchFn: func(_ context.Context, _ string, _ []skim.Length) (map[skim.Length]*skim.SummaryResult, error) {
			return map[skim.Length]*skim.SummaryResult{
				skim.LengthShort:  {Status: skim.SummaryOK},
				skim.LengthMedium: {Status: skim.SummaryFailed},
			}, nil
		},
	}

	got, err := skimslog.NewLoggingSummarizer(inner, logger).SummarizeBatch(context.Background(), "x", []skim.Length{skim.LengthShort, skim.LengthMedium})

	require.NoError(t, err)
	assert.Len(t, got, 2)
	output := buf.String()
	assert.Contains(t, output, "summarize batch")
	assert.Contains(t, output, "results=2")
	assert.Contains(t, output, "failed=1")
}

func TestLoggingSummarizer_ModelInfo(t *testing.T) {
	t.Parallel()

	inner := &mock.Summarizer{
		ModelInfoFn: func() skim.ModelInfo { return skim.ModelInfo{Model: "m"} },
	}

	info := skimslog.NewLoggingSummarizer(inner, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))).ModelInfo()

	assert.Equal(t, "m", info.Model)
}

func TestLoggingGenerator_Generate(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	inner := &mock.Generator{
		GenerateFn: func(_ context.Context, _ skim.GenerateRequest) (string, error) {
			return "Summary.", nil
		},
	}

	out, err := skimslog.NewLoggingGenerator(inner, logger).Generate(context.Background(), skim.GenerateRequest{
		Text: "abc", Length: skim.LengthDetailed, MaxTokens: 300, Seed: 7,
	})

	require.NoError(t, err)
	assert.Equal(t, "Summary.", out)
	output := buf.String()
	assert.Contains(t, output, "generate")
	assert.Contains(t, output, "length=detailed")
	assert.Contains(t, output, "maxTokens=300")
	assert.Contains(t, output, "seed=7")
	assert.Contains(t, output, "outputChars=8")
}
