package skim_test

import (
	"testing"

	"github.com/fwojciec/skim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticle_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts a complete article", func(t *testing.T) {
		t.Parallel()

		a := &skim.Article{URL: "https://example.com/a", Text: "Body", QualityScore: 55}

		require.NoError(t, a.Validate())
	})

	t.Run("requires url", func(t *testing.T) {
		t.Parallel()

		a := &skim.Article{Text: "Body"}

		err := a.Validate()
		assert.Equal(t, skim.EINVALID, skim.ErrorCode(err))
		assert.Contains(t, skim.ErrorMessage(err), "URL required")
	})

	t.Run("requires text", func(t *testing.T) {
		t.Parallel()

		a := &skim.Article{URL: "https://example.com/a"}

		err := a.Validate()
		assert.Equal(t, skim.EINVALID, skim.ErrorCode(err))
		assert.Contains(t, skim.ErrorMessage(err), "text required")
	})

	t.Run("rejects out of range score", func(t *testing.T) {
		t.Parallel()

		a := &skim.Article{URL: "https://example.com/a", Text: "Body", QualityScore: 101}

		err := a.Validate()
		assert.Equal(t, skim.EINVALID, skim.ErrorCode(err))
	})
}
