package extract_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/skim"
	"github.com/fwojciec/skim/extract"
	"github.com/fwojciec/skim/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pageHTML = `<html><head><title>Harbor Expansion Approved | Coast Daily</title>
<meta name="author" content="Rita Moreno">
<meta property="article:published_time" content="2024-04-01T10:00:00Z">
</head><body></body></html>`

func words(n int) string {
	return strings.TrimSpace(strings.Repeat("harbor ", n))
}

func strategy(name string, ext *skim.Extraction, err error) *mock.Extractor {
	return &mock.Extractor{
		NameFn: func() string { return name },
		ExtractFn: func(_, _ string) (*skim.Extraction, error) {
			return ext, err
		},
	}
}

func fetcherReturning(html string) *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(_ context.Context, _ string) (string, error) {
			return html, nil
		},
	}
}

func TestChain_ExtractArticle(t *testing.T) {
	t.Parallel()

	t.Run("returns first strategy with enough words", func(t *testing.T) {
		t.Parallel()

		var secondCalled bool
		fixed := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
		c := &extract.Chain{
			Fetcher: fetcherReturning(pageHTML),
			Strategies: []skim.Extractor{
				strategy("short", &skim.Extraction{Text: words(10)}, nil),
				strategy("long", &skim.Extraction{Title: "Harbor Plan", Text: words(60)}, nil),
				&mock.Extractor{
					NameFn: func() string { return "never" },
					ExtractFn: func(_, _ string) (*skim.Extraction, error) {
						secondCalled = true
						return nil, nil
					},
				},
			},
			Scorer: &mock.QualityScorer{ScoreFn: func(_ *skim.Article) int { return 77 }},
			Now:    func() time.Time { return fixed },
		}

		a, err := c.ExtractArticle(context.Background(), "https://example.com/story")

		require.NoError(t, err)
		assert.False(t, secondCalled)
		assert.Equal(t, "long", a.Method)
		assert.Equal(t, "Harbor Plan", a.Title)
		assert.Equal(t, 60, a.WordCount)
		assert.Equal(t, 77, a.QualityScore)
		assert.Equal(t, fixed, a.ExtractedAt)
		assert.Equal(t, "https://example.com/story", a.URL)
	})

	t.Run("fills missing metadata from the page", func(t *testing.T) {
		t.Parallel()

		c := &extract.Chain{
			Fetcher:    fetcherReturning(pageHTML),
			Strategies: []skim.Extractor{strategy("s", &skim.Extraction{Text: words(60)}, nil)},
		}

		a, err := c.ExtractArticle(context.Background(), "https://example.com/story")

		require.NoError(t, err)
		assert.Equal(t, "Harbor Expansion Approved", a.Title)
		assert.Equal(t, []string{"Rita Moreno"}, a.Authors)
		require.NotNil(t, a.PublishDate)
		assert.Equal(t, 2024, a.PublishDate.Year())
	})

	t.Run("continues past failing strategies", func(t *testing.T) {
		t.Parallel()

		c := &extract.Chain{
			Fetcher: fetcherReturning(pageHTML),
			Strategies: []skim.Extractor{
				strategy("broken", nil, errors.New("parse error")),
				strategy("ok", &skim.Extraction{Text: words(60)}, nil),
			},
		}

		a, err := c.ExtractArticle(context.Background(), "https://example.com/story")

		require.NoError(t, err)
		assert.Equal(t, "ok", a.Method)
	})

	t.Run("cleans text before counting words", func(t *testing.T) {
		t.Parallel()

		text := words(45) + " https://a.example/x https://b.example/y https://c.example/z https://d.example/w https://e.example/v"
		c := &extract.Chain{
			Fetcher:    fetcherReturning(pageHTML),
			Strategies: []skim.Extractor{strategy("s", &skim.Extraction{Text: text}, nil)},
		}

		_, err := c.ExtractArticle(context.Background(), "https://example.com/story")

		require.Error(t, err)
		assert.Equal(t, skim.EEXTRACT, skim.ErrorCode(err))
		assert.Equal(t, "insufficient content: 45 words", skim.ErrorMessage(err))
	})

	t.Run("honors a custom word threshold", func(t *testing.T) {
		t.Parallel()

		c := &extract.Chain{
			Fetcher:    fetcherReturning(pageHTML),
			Strategies: []skim.Extractor{strategy("s", &skim.Extraction{Text: words(20)}, nil)},
			MinWords:   20,
		}

		a, err := c.ExtractArticle(context.Background(), "https://example.com/story")

		require.NoError(t, err)
		assert.Equal(t, 20, a.WordCount)
	})

	t.Run("renders markdown from content HTML", func(t *testing.T) {
		t.Parallel()

		var gotURL string
		c := &extract.Chain{
			Fetcher: fetcherReturning(pageHTML),
			Strategies: []skim.Extractor{
				strategy("s", &skim.Extraction{Text: words(60), ContentHTML: "<p>body</p>"}, nil),
			},
			Converter: &mock.Converter{
				ConvertFn: func(html, pageURL string) (string, error) {
					gotURL = pageURL
					return "**body**", nil
				},
			},
		}

		a, err := c.ExtractArticle(context.Background(), "https://example.com/story")

		require.NoError(t, err)
		assert.Equal(t, "**body**", a.Markdown)
		assert.Equal(t, "https://example.com/story", gotURL)
	})

	t.Run("falls back to plain text markdown without content HTML", func(t *testing.T) {
		t.Parallel()

		c := &extract.Chain{
			Fetcher:    fetcherReturning(pageHTML),
			Strategies: []skim.Extractor{strategy("s", &skim.Extraction{Text: words(60)}, nil)},
			Converter: &mock.Converter{
				ConvertFn: func(_, _ string) (string, error) {
					t.Fatal("converter should not be called")
					return "", nil
				},
			},
		}

		a, err := c.ExtractArticle(context.Background(), "https://example.com/story")

		require.NoError(t, err)
		assert.Equal(t, a.Text, a.Markdown)
	})

	t.Run("caps title length", func(t *testing.T) {
		t.Parallel()

		c := &extract.Chain{
			Fetcher: fetcherReturning(pageHTML),
			Strategies: []skim.Extractor{
				strategy("s", &skim.Extraction{Title: strings.Repeat("t", 300), Text: words(60)}, nil),
			},
		}

		a, err := c.ExtractArticle(context.Background(), "https://example.com/story")

		require.NoError(t, err)
		assert.Len(t, a.Title, skim.MaxTitleLength)
	})

	t.Run("fetches exactly once", func(t *testing.T) {
		t.Parallel()

		var calls int
		c := &extract.Chain{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, _ string) (string, error) {
					calls++
					return pageHTML, nil
				},
			},
			Strategies: []skim.Extractor{
				strategy("a", &skim.Extraction{Text: words(5)}, nil),
				strategy("b", &skim.Extraction{Text: words(5)}, nil),
			},
		}

		_, err := c.ExtractArticle(context.Background(), "https://example.com/story")

		require.Error(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("waits on the limiter with the host", func(t *testing.T) {
		t.Parallel()

		var gotHost string
		c := &extract.Chain{
			Fetcher: fetcherReturning(pageHTML),
			Limiter: &mock.Limiter{
				WaitFn: func(_ context.Context, host string) error {
					gotHost = host
					return nil
				},
			},
			Strategies: []skim.Extractor{strategy("s", &skim.Extraction{Text: words(60)}, nil)},
		}

		_, err := c.ExtractArticle(context.Background(), "https://news.example.com/story")

		require.NoError(t, err)
		assert.Equal(t, "news.example.com", gotHost)
	})

	t.Run("returns EFETCH when fetch fails", func(t *testing.T) {
		t.Parallel()

		c := &extract.Chain{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, _ string) (string, error) {
					return "", skim.Errorf(skim.EFETCH, "HTTP 404 for https://example.com/missing")
				},
			},
		}

		_, err := c.ExtractArticle(context.Background(), "https://example.com/missing")

		require.Error(t, err)
		assert.Equal(t, skim.EFETCH, skim.ErrorCode(err))
		assert.Equal(t, "HTTP 404 for https://example.com/missing", skim.ErrorMessage(err))
	})

	t.Run("wraps plain fetch errors as EFETCH", func(t *testing.T) {
		t.Parallel()

		c := &extract.Chain{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, _ string) (string, error) {
					return "", errors.New("connection reset")
				},
			},
		}

		_, err := c.ExtractArticle(context.Background(), "https://example.com/story")

		assert.Equal(t, skim.EFETCH, skim.ErrorCode(err))
	})

	t.Run("rejects invalid URLs without fetching", func(t *testing.T) {
		t.Parallel()

		c := &extract.Chain{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, _ string) (string, error) {
					t.Fatal("fetch should not be called")
					return "", nil
				},
			},
		}

		for _, raw := range []string{"", "not a url", "ftp://example.com/file", "https://"} {
			_, err := c.ExtractArticle(context.Background(), raw)
			assert.Equal(t, skim.EINVALID, skim.ErrorCode(err), raw)
		}
	})
}
