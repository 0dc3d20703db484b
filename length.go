package skim

import "strings"

// Length is a named summary-size preset.
type Length string

// Supported summary lengths.
const (
	LengthShort    Length = "short"
	LengthMedium   Length = "medium"
	LengthDetailed Length = "detailed"
)

// Bounds is a (min, max) generated-length pair measured in model tokens.
type Bounds struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

var lengthBounds = map[Length]Bounds{
	LengthShort:    {Min: 40, Max: 80},
	LengthMedium:   {Min: 80, Max: 150},
	LengthDetailed: {Min: 150, Max: 300},
}

var lengthDescriptions = map[Length]string{
	LengthShort:    "Brief overview",
	LengthMedium:   "Balanced summary",
	LengthDetailed: "Comprehensive summary",
}

// Lengths returns all supported lengths from shortest to longest.
func Lengths() []Length {
	return []Length{LengthShort, LengthMedium, LengthDetailed}
}

// ParseLength parses a length name. Matching is case-insensitive.
func ParseLength(s string) (Length, error) {
	l := Length(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := lengthBounds[l]; !ok {
		return "", Errorf(EINVALID, "unknown summary length %q (want short, medium or detailed)", s)
	}
	return l, nil
}

// Valid reports whether l is a supported length.
func (l Length) Valid() bool {
	_, ok := lengthBounds[l]
	return ok
}

// Bounds returns the generation bounds for l.
// Unknown lengths return the zero Bounds.
func (l Length) Bounds() Bounds {
	return lengthBounds[l]
}

// Description returns a human-readable description of l.
func (l Length) Description() string {
	return lengthDescriptions[l]
}
