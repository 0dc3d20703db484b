// Package extract turns a news URL into a clean skim.Article by fetching
// the page once and running a prioritized chain of extraction strategies
// over the HTML.
package extract

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/skim"
	"github.com/fwojciec/skim/goquery"
)

// DefaultMinWords is the word count a strategy's cleaned text must reach
// to be accepted.
const DefaultMinWords = 50

var _ skim.ArticleExtractor = (*Chain)(nil)

// Chain fetches a page and tries each strategy in order until one yields
// enough text.
type Chain struct {
	Fetcher    skim.Fetcher
	Limiter    skim.Limiter
	Strategies []skim.Extractor
	Converter  skim.Converter
	Scorer     skim.QualityScorer
	MinWords   int

	// Now returns the extraction timestamp. Defaults to time.Now.
	Now func() time.Time
}

// ExtractArticle fetches rawURL once and returns the first strategy result
// with at least MinWords words after cleaning.
func (c *Chain) ExtractArticle(ctx context.Context, rawURL string) (*skim.Article, error) {
	u, err := ValidateURL(rawURL)
	if err != nil {
		return nil, err
	}

	if c.Limiter != nil {
		if err := c.Limiter.Wait(ctx, u.Host); err != nil {
			return nil, skim.WrapError(skim.EFETCH, err, "request to %s canceled", u.Host)
		}
	}

	html, err := c.Fetcher.Fetch(ctx, u.String())
	if err != nil {
		if skim.ErrorCode(err) == skim.EFETCH {
			return nil, err
		}
		return nil, skim.WrapError(skim.EFETCH, err, "failed to fetch %s", u.String())
	}

	minWords := c.MinWords
	if minWords <= 0 {
		minWords = DefaultMinWords
	}

	var best int
	for _, s := range c.Strategies {
		ext, err := s.Extract(html, u.String())
		if err != nil || ext == nil {
			continue
		}
		text := skim.CleanText(ext.Text)
		words := skim.CountWords(text)
		if words < minWords {
			best = max(best, words)
			continue
		}
		return c.buildArticle(u.String(), html, s.Name(), ext, text, words), nil
	}

	return nil, skim.Errorf(skim.EEXTRACT, "insufficient content: %d words", best)
}

func (c *Chain) buildArticle(pageURL, html, method string, ext *skim.Extraction, text string, words int) *skim.Article {
	a := &skim.Article{
		URL:         pageURL,
		Title:       ext.Title,
		Text:        text,
		WordCount:   words,
		Authors:     goquery.NormalizeAuthors(ext.Authors),
		PublishDate: ext.PublishDate,
		Method:      method,
		ExtractedAt: c.now(),
	}

	if a.Title == "" || len(a.Authors) == 0 || a.PublishDate == nil {
		if meta, err := goquery.ExtractMetadata(html); err == nil {
			if a.Title == "" {
				a.Title = meta.Title
			}
			if len(a.Authors) == 0 {
				a.Authors = meta.Authors
			}
			if a.PublishDate == nil {
				a.PublishDate = meta.PublishDate
			}
		}
	}
	a.Title = skim.TruncateRunes(strings.TrimSpace(a.Title), skim.MaxTitleLength)
	if a.Authors == nil {
		a.Authors = []string{}
	}

	a.Markdown = text
	if c.Converter != nil && ext.ContentHTML != "" {
		if md, err := c.Converter.Convert(ext.ContentHTML, pageURL); err == nil && md != "" {
			a.Markdown = md
		}
	}

	if c.Scorer != nil {
		a.QualityScore = c.Scorer.Score(a)
	}
	return a
}

func (c *Chain) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

// ValidateURL parses rawURL and requires an http or https scheme and a
// host. Returns EINVALID otherwise.
func ValidateURL(rawURL string) (*url.URL, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil, skim.Errorf(skim.EINVALID, "URL required")
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, skim.Errorf(skim.EINVALID, "invalid URL %q", rawURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, skim.Errorf(skim.EINVALID, "invalid URL %q: scheme must be http or https", rawURL)
	}
	if u.Host == "" {
		return nil, skim.Errorf(skim.EINVALID, "invalid URL %q: missing host", rawURL)
	}
	return u, nil
}
