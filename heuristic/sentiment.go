package heuristic

import (
	"github.com/fwojciec/skim"
	"golang.org/x/text/unicode/norm"
)

var positiveWords = toSet(
	"good", "great", "excellent", "positive", "success", "win", "growth",
	"improve", "benefit", "breakthrough", "achievement", "advance",
	"innovation", "opportunity", "progress", "successful", "effective",
	"outstanding", "remarkable", "impressive", "valuable", "promising",
)

var negativeWords = toSet(
	"bad", "terrible", "negative", "loss", "fail", "decline", "problem",
	"crisis", "concern", "worry", "fear", "threat", "dangerous", "risk",
	"criticism", "controversy", "challenge", "difficulty", "useless",
	"disappointing", "alarming", "troubling", "concerning", "warning",
)

var neutralWords = toSet(
	"said", "announced", "reported", "stated", "mentioned", "discussed",
	"explained", "described", "noted", "indicated", "revealed",
)

// Sentiment classifies text by counting lexicon words. Text is negative
// when negative words make up more than 40% of all lexicon hits, or
// outnumber positive ones with at least two hits; positive is symmetric.
func Sentiment(text string) skim.Sentiment {
	var pos, neg, neu int
	for _, tok := range tokenize(norm.NFKC.String(text)) {
		key := fold.String(tok)
		switch {
		case positiveWords[key]:
			pos++
		case negativeWords[key]:
			neg++
		case neutralWords[key]:
			neu++
		}
	}

	total := pos + neg + neu
	if total == 0 {
		return skim.SentimentNeutral
	}
	posRatio := float64(pos) / float64(total)
	negRatio := float64(neg) / float64(total)

	switch {
	case negRatio > 0.4 || (neg > pos && neg >= 2):
		return skim.SentimentNegative
	case posRatio > 0.4 || (pos > neg && pos >= 2):
		return skim.SentimentPositive
	default:
		return skim.SentimentNeutral
	}
}
