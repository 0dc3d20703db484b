package heuristic_test

import (
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/skim"
	"github.com/fwojciec/skim/heuristic"
	"github.com/stretchr/testify/assert"
)

// longArticle builds n paragraphs of three sentences each.
func longArticle(paragraphs int) string {
	var b strings.Builder
	for i := 0; i < paragraphs; i++ {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(strings.Repeat("The regional council debated the new housing plan at length today. ", 3))
	}
	return b.String()
}

func TestQualityScorer_Score(t *testing.T) {
	t.Parallel()

	t.Run("rates a well-formed article highly", func(t *testing.T) {
		t.Parallel()

		published := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		text := longArticle(12)
		a := &skim.Article{
			Title:       "Council Approves Housing Plan After Long Debate",
			Text:        text,
			WordCount:   skim.CountWords(text),
			Authors:     []string{"Jane Doe"},
			PublishDate: &published,
		}

		score := heuristic.NewQualityScorer().Score(a)

		// 396 words (30) + 12 paragraphs (20) + 36 sentences (10) + title (10)
		// + metadata (10) + clean lines (10)
		assert.Equal(t, 90, score)
	})

	t.Run("rates boilerplate low", func(t *testing.T) {
		t.Parallel()

		text := "Accept cookies to continue\nSubscribe to our newsletter\nAll rights reserved 2024"
		a := &skim.Article{Title: "Home", Text: text}

		score := heuristic.NewQualityScorer().Score(a)

		assert.Less(t, score, skim.QualityWarnThreshold)
	})

	t.Run("scales boilerplate points by clean line share", func(t *testing.T) {
		t.Parallel()

		clean := &skim.Article{Text: "First real paragraph.\nSecond real paragraph."}
		mixed := &skim.Article{Text: "First real paragraph.\nSign up for alerts now."}

		scorer := heuristic.NewQualityScorer()

		assert.Equal(t, 5, scorer.Score(clean)-scorer.Score(mixed))
	})

	t.Run("is deterministic", func(t *testing.T) {
		t.Parallel()

		a := &skim.Article{Title: "Some title here", Text: longArticle(3)}
		scorer := heuristic.NewQualityScorer()

		assert.Equal(t, scorer.Score(a), scorer.Score(a))
	})

	t.Run("stays within range", func(t *testing.T) {
		t.Parallel()

		scorer := heuristic.NewQualityScorer()

		assert.Equal(t, 0, scorer.Score(nil))
		assert.GreaterOrEqual(t, scorer.Score(&skim.Article{}), 0)
		assert.LessOrEqual(t, scorer.Score(&skim.Article{Text: longArticle(100)}), 100)
	})
}
