package heuristic

import (
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/skim"
)

// Ensure QualityScorer implements skim.QualityScorer at compile time.
var _ skim.QualityScorer = (*QualityScorer)(nil)

// boilerplateMarkers flag lines that are site chrome rather than article text.
var boilerplateMarkers = []string{
	"cookie",
	"subscribe",
	"newsletter",
	"advertisement",
	"sponsored",
	"privacy policy",
	"terms of service",
	"sign up",
	"all rights reserved",
}

// QualityScorer rates extracted text on length, structure, metadata and
// the share of boilerplate lines.
type QualityScorer struct{}

// NewQualityScorer creates a new QualityScorer.
func NewQualityScorer() *QualityScorer {
	return &QualityScorer{}
}

// Score returns a value in [0,100].
func (s *QualityScorer) Score(a *skim.Article) int {
	if a == nil {
		return 0
	}

	words := a.WordCount
	if words == 0 {
		words = skim.CountWords(a.Text)
	}
	paragraphs := skim.SplitParagraphs(a.Text)

	score := lengthPoints(words) +
		structurePoints(len(paragraphs)) +
		sentencePoints(len(skim.SplitSentences(a.Text))) +
		titlePoints(utf8.RuneCountInString(strings.TrimSpace(a.Title))) +
		boilerplatePoints(paragraphs)
	if len(a.Authors) > 0 {
		score += 5
	}
	if a.PublishDate != nil {
		score += 5
	}

	return min(max(score, 0), 100)
}

func lengthPoints(words int) int {
	switch {
	case words > 1000:
		return 40
	case words > 500:
		return 35
	case words > 300:
		return 30
	case words > 200:
		return 25
	case words > 100:
		return 20
	default:
		return 10
	}
}

func structurePoints(paragraphs int) int {
	switch {
	case paragraphs >= 8:
		return 20
	case paragraphs >= 4:
		return 15
	case paragraphs >= 2:
		return 10
	default:
		return 0
	}
}

func sentencePoints(sentences int) int {
	switch {
	case sentences > 20:
		return 10
	case sentences > 10:
		return 7
	case sentences > 5:
		return 4
	default:
		return 0
	}
}

func titlePoints(chars int) int {
	switch {
	case chars > 20:
		return 10
	case chars > 10:
		return 7
	case chars > 5:
		return 4
	default:
		return 0
	}
}

// boilerplatePoints awards up to 10 points scaled by the share of clean lines.
func boilerplatePoints(lines []string) int {
	if len(lines) == 0 {
		return 0
	}
	var dirty int
	for _, line := range lines {
		if isBoilerplate(line) {
			dirty++
		}
	}
	return 10 * (len(lines) - dirty) / len(lines)
}

func isBoilerplate(line string) bool {
	line = strings.ToLower(line)
	for _, m := range boilerplateMarkers {
		if strings.Contains(line, m) {
			return true
		}
	}
	return false
}
