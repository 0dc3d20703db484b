package summarize

import (
	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/skim"
)

// sampling holds per-length decoding settings. Short summaries decode
// greedily; longer ones sample with increasing temperature for variety.
var sampling = map[skim.Length]struct {
	Temperature float32
	TopP        float32
}{
	skim.LengthShort:    {Temperature: 0, TopP: 1},
	skim.LengthMedium:   {Temperature: 0.8, TopP: 0.85},
	skim.LengthDetailed: {Temperature: 1.0, TopP: 0.9},
}

// Params returns the generation request for text at length. The seed is
// derived from the text and length so identical input yields identical
// requests. Deterministic forces greedy decoding for every length.
func Params(text string, length skim.Length, deterministic bool) skim.GenerateRequest {
	bounds := length.Bounds()
	s := sampling[length]
	if deterministic {
		s.Temperature = 0
		s.TopP = 1
	}
	return skim.GenerateRequest{
		Text:        text,
		Length:      length,
		MinTokens:   bounds.Min,
		MaxTokens:   bounds.Max,
		Temperature: s.Temperature,
		TopP:        s.TopP,
		Seed:        Seed(text, length),
	}
}

// Seed returns a non-negative seed for text at length.
func Seed(text string, length skim.Length) int32 {
	d := xxhash.New()
	_, _ = d.WriteString(string(length))
	_, _ = d.WriteString("\x00")
	_, _ = d.WriteString(text)
	return int32(d.Sum64() & 0x7fffffff)
}
