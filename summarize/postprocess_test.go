package summarize_test

import (
	"testing"

	"github.com/fwojciec/skim"
	"github.com/fwojciec/skim/summarize"
	"github.com/stretchr/testify/assert"
)

func TestPostProcess(t *testing.T) {
	t.Parallel()

	t.Run("drops a trailing incomplete sentence", func(t *testing.T) {
		t.Parallel()

		got := summarize.PostProcess("The city approved the harbor plan after a long debate. Work begins", skim.LengthMedium, 100)

		assert.Equal(t, "The city approved the harbor plan after a long debate.", got)
	})

	t.Run("keeps the fragment when the last sentence end is early", func(t *testing.T) {
		t.Parallel()

		in := "Plan approved. Work begins in spring after the council finalizes the budget and contracts"

		assert.Equal(t, in, summarize.PostProcess(in, skim.LengthMedium, 100))
	})

	t.Run("keeps two sentences for short summaries", func(t *testing.T) {
		t.Parallel()

		got := summarize.PostProcess("One happened. Two followed! Three ended? Four.", skim.LengthShort, 100)

		assert.Equal(t, "One happened. Two followed!", got)
	})

	t.Run("does not limit sentences for detailed summaries", func(t *testing.T) {
		t.Parallel()

		in := "One happened. Two followed. Three ended. Four."

		assert.Equal(t, in, summarize.PostProcess(in, skim.LengthDetailed, 100))
	})

	t.Run("never exceeds the word limit", func(t *testing.T) {
		t.Parallel()

		got := summarize.PostProcess("alpha beta gamma delta epsilon.", skim.LengthMedium, 3)

		assert.Equal(t, "alpha beta gamma", got)
	})

	t.Run("collapses whitespace", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "A b.", summarize.PostProcess("  A \n  b. ", skim.LengthMedium, 0))
	})

	t.Run("returns empty for blank output", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, summarize.PostProcess(" \n", skim.LengthShort, 10))
	})
}
