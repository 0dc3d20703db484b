package skim

import "context"

// Sentiment is a coarse sentiment label.
type Sentiment string

// Sentiment labels.
const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// DefaultKeywordLimit is the number of keywords returned when no limit is given.
const DefaultKeywordLimit = 8

// Analysis holds analytics derived from article text.
type Analysis struct {
	Keywords  []string  `json:"keywords"`
	Sentiment Sentiment `json:"sentiment"`
}

// Analyzer derives keywords and sentiment from text independently of the
// summarization model. Results are deterministic for identical input.
type Analyzer interface {
	// Analyze returns keywords and sentiment for text.
	// Returns EINVALID for empty text.
	Analyze(ctx context.Context, text string) (*Analysis, error)

	// Keywords returns up to limit keywords ranked by frequency and position.
	Keywords(text string, limit int) []string

	// Sentiment classifies text as positive, neutral or negative.
	Sentiment(text string) Sentiment

	// Stats computes statistics for an extracted article.
	Stats(a *Article) ArticleStats
}
