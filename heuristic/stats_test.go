package heuristic_test

import (
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/skim"
	"github.com/fwojciec/skim/heuristic"
	"github.com/stretchr/testify/assert"
)

func TestStats(t *testing.T) {
	t.Parallel()

	t.Run("computes counts and averages", func(t *testing.T) {
		t.Parallel()

		published := time.Now()
		a := &skim.Article{
			Text:         "First sentence is here. Second sentence is here.\nThird sentence stands alone.",
			Authors:      []string{"A. Writer"},
			PublishDate:  &published,
			QualityScore: 55,
			Method:       "trafilatura",
		}

		s := heuristic.Stats(a)

		assert.Equal(t, 12, s.WordCount)
		assert.Equal(t, 3, s.SentenceCount)
		assert.Equal(t, 2, s.ParagraphCount)
		assert.Equal(t, 1, s.ReadingTime)
		assert.InDelta(t, 4.0, s.AverageSentenceLength, 0.001)
		assert.InDelta(t, 6.0, s.AverageParagraphLength, 0.001)
		assert.True(t, s.HasAuthors)
		assert.True(t, s.HasDate)
		assert.Equal(t, 55, s.QualityScore)
		assert.Equal(t, "trafilatura", s.Method)
	})

	t.Run("reports at least one paragraph", func(t *testing.T) {
		t.Parallel()

		s := heuristic.Stats(&skim.Article{Text: "Short."})

		assert.Equal(t, 1, s.ParagraphCount)
		assert.False(t, s.HasAuthors)
		assert.False(t, s.HasDate)
	})

	t.Run("counts characters as runes", func(t *testing.T) {
		t.Parallel()

		s := heuristic.Stats(&skim.Article{Text: "café"})

		assert.Equal(t, 4, s.CharacterCount)
	})

	t.Run("estimates reading time at 200 words per minute", func(t *testing.T) {
		t.Parallel()

		s := heuristic.Stats(&skim.Article{Text: strings.Repeat("word ", 1274)})

		assert.Equal(t, 6, s.ReadingTime)
	})
}

func TestReadingTime(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, heuristic.ReadingTime(0))
	assert.Equal(t, 1, heuristic.ReadingTime(299))
	assert.Equal(t, 2, heuristic.ReadingTime(300))
	assert.Equal(t, 5, heuristic.ReadingTime(1000))
}
