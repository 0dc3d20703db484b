package heuristic

import (
	"math"
	"unicode/utf8"

	"github.com/fwojciec/skim"
)

// WordsPerMinute is the reading speed behind reading-time estimates.
const WordsPerMinute = 200

// Stats computes statistics for a. Reading time is at least one minute.
func Stats(a *skim.Article) skim.ArticleStats {
	if a == nil {
		return skim.ArticleStats{}
	}

	words := skim.CountWords(a.Text)
	sentences := len(skim.SplitSentences(a.Text))
	paragraphs := len(skim.SplitParagraphs(a.Text))

	return skim.ArticleStats{
		WordCount:              words,
		CharacterCount:         utf8.RuneCountInString(a.Text),
		SentenceCount:          sentences,
		ParagraphCount:         max(1, paragraphs),
		ReadingTime:            ReadingTime(words),
		AverageSentenceLength:  round1(float64(words) / float64(max(1, sentences))),
		AverageParagraphLength: round1(float64(words) / float64(max(1, paragraphs))),
		HasAuthors:             len(a.Authors) > 0,
		HasDate:                a.PublishDate != nil,
		QualityScore:           a.QualityScore,
		Method:                 a.Method,
	}
}

// ReadingTime returns the estimated minutes needed to read words words.
func ReadingTime(words int) int {
	return max(1, int(math.Round(float64(words)/WordsPerMinute)))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
