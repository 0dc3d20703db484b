// Package heuristic implements the model-free analytics: content quality
// scoring, keyword extraction, lexicon sentiment and article statistics.
// Everything here is deterministic and safe for concurrent use.
package heuristic
