package heuristic_test

import (
	"context"
	"testing"

	"github.com/fwojciec/skim"
	"github.com/fwojciec/skim/heuristic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzer_Analyze(t *testing.T) {
	t.Parallel()

	t.Run("returns keywords and sentiment", func(t *testing.T) {
		t.Parallel()

		text := "Flooding in Valencia caused a crisis. The flooding damaged homes and the threat remains."

		got, err := heuristic.NewAnalyzer().Analyze(context.Background(), text)

		require.NoError(t, err)
		assert.Equal(t, []string{"Flooding", "Valencia"}, got.Keywords)
		assert.Equal(t, skim.SentimentNegative, got.Sentiment)
	})

	t.Run("rejects empty text", func(t *testing.T) {
		t.Parallel()

		_, err := heuristic.NewAnalyzer().Analyze(context.Background(), "   ")

		require.Error(t, err)
		assert.Equal(t, skim.EINVALID, skim.ErrorCode(err))
	})

	t.Run("is deterministic", func(t *testing.T) {
		t.Parallel()

		text := "Markets rallied. Markets closed higher as growth improved and growth forecasts rose."
		a := heuristic.NewAnalyzer()

		first, err := a.Analyze(context.Background(), text)
		require.NoError(t, err)
		second, err := a.Analyze(context.Background(), text)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})
}
