package heuristic

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// stopWords are frequent words that carry no topic. Lookups use the
// case-folded form.
var stopWords = toSet(
	// reporting verbs and connectives common in news copy
	"this", "that", "these", "those", "said", "says", "told", "added",
	"according", "also", "however", "therefore", "moreover", "furthermore",
	"meanwhile", "since", "while", "though", "although", "because",
	"article", "report", "news", "story", "information", "content",
	"statement", "announcement", "update", "development",
	// function words
	"about", "after", "again", "before", "being", "between", "could",
	"does", "during", "each", "from", "have", "here", "into", "just",
	"many", "more", "most", "much", "only", "other", "over", "some",
	"such", "than", "their", "them", "then", "there", "they", "under",
	"very", "were", "what", "when", "where", "which", "will", "with",
	"would", "your", "been", "year", "years",
)

var fold = cases.Fold()

type candidate struct {
	word        string
	key         string
	count       int
	first       int
	capitalized bool
}

// Keywords returns up to limit topic words from text. Candidates are
// capitalized words or lowercase words of four or more letters, excluding
// stop words. A candidate qualifies when it occurs at least twice or is
// capitalized. Results are ordered by frequency, then length, then first
// position, and deduplicated case-insensitively.
func Keywords(text string, limit int) []string {
	if limit <= 0 {
		limit = 8
	}

	byWord := make(map[string]*candidate)
	for pos, tok := range tokenize(norm.NFKC.String(text)) {
		capitalized, ok := classify(tok)
		if !ok {
			continue
		}
		key := fold.String(tok)
		if stopWords[key] {
			continue
		}
		c, seen := byWord[tok]
		if !seen {
			c = &candidate{word: tok, key: key, first: pos, capitalized: capitalized}
			byWord[tok] = c
		}
		c.count++
	}

	ranked := make([]*candidate, 0, len(byWord))
	for _, c := range byWord {
		if c.count >= 2 || c.capitalized {
			ranked = append(ranked, c)
		}
	}
	sort.Slice(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.count != b.count {
			return a.count > b.count
		}
		if la, lb := utf8.RuneCountInString(a.word), utf8.RuneCountInString(b.word); la != lb {
			return la > lb
		}
		return a.first < b.first
	})

	seen := make(map[string]bool)
	var out []string
	for _, c := range ranked {
		if seen[c.key] {
			continue
		}
		seen[c.key] = true
		out = append(out, c.word)
		if len(out) == limit {
			break
		}
	}
	return out
}

// tokenize splits text into runs of letters.
func tokenize(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r)
	})
}

// classify reports whether tok is a keyword candidate and whether it is
// capitalized. Mixed-case and all-caps tokens are rejected.
func classify(tok string) (capitalized bool, ok bool) {
	if utf8.RuneCountInString(tok) < 4 {
		return false, false
	}
	for i, r := range tok {
		if i == 0 {
			capitalized = unicode.IsUpper(r)
			if !capitalized && !unicode.IsLower(r) {
				return false, false
			}
			continue
		}
		if !unicode.IsLower(r) {
			return false, false
		}
	}
	return capitalized, true
}

func toSet(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}
