package skim

import (
	"context"
	"time"
)

// MaxTitleLength is the maximum number of characters kept in Article.Title.
const MaxTitleLength = 200

// MaxAuthors is the maximum number of authors kept on an Article.
const MaxAuthors = 5

// Article represents an extracted news article.
type Article struct {
	URL          string     `json:"url"`
	Title        string     `json:"title"`
	Text         string     `json:"text"`
	Markdown     string     `json:"markdown,omitempty"`
	WordCount    int        `json:"wordCount"`
	Authors      []string   `json:"authors"`
	PublishDate  *time.Time `json:"publishDate,omitempty"`
	QualityScore int        `json:"qualityScore"`
	Method       string     `json:"method"`
	ExtractedAt  time.Time  `json:"extractedAt"`
}

// Validate returns an error if the article contains invalid fields.
func (a *Article) Validate() error {
	if a.URL == "" {
		return Errorf(EINVALID, "article URL required")
	}
	if a.Text == "" {
		return Errorf(EINVALID, "article text required")
	}
	if a.QualityScore < 0 || a.QualityScore > 100 {
		return Errorf(EINVALID, "article quality score %d out of range", a.QualityScore)
	}
	return nil
}

// ArticleExtractor turns a URL into an Article.
type ArticleExtractor interface {
	// ExtractArticle fetches the URL once and extracts the article.
	// Returns EINVALID for malformed URLs, EFETCH when the page cannot be
	// retrieved and EEXTRACT when no strategy yields enough text.
	ExtractArticle(ctx context.Context, url string) (*Article, error)
}

// QualityScorer rates how likely extracted text is genuine article content.
type QualityScorer interface {
	// Score returns a value in [0,100]. It must be deterministic.
	Score(a *Article) int
}

// QualityWarnThreshold is the score below which callers warn the user that
// extraction may have picked up boilerplate.
const QualityWarnThreshold = 40

// ArticleStats holds derived statistics about an article.
type ArticleStats struct {
	WordCount              int     `json:"wordCount"`
	CharacterCount         int     `json:"characterCount"`
	SentenceCount          int     `json:"sentenceCount"`
	ParagraphCount         int     `json:"paragraphCount"`
	ReadingTime            int     `json:"readingTimeMinutes"`
	AverageSentenceLength  float64 `json:"averageSentenceLength"`
	AverageParagraphLength float64 `json:"averageParagraphLength"`
	HasAuthors             bool    `json:"hasAuthors"`
	HasDate                bool    `json:"hasDate"`
	QualityScore           int     `json:"qualityScore"`
	Method                 string  `json:"method"`
}
