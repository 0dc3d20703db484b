package mock

import "github.com/fwojciec/skim"

var _ skim.Converter = (*Converter)(nil)

// Converter is a mock implementation of skim.Converter.
type Converter struct {
	ConvertFn func(html, pageURL string) (string, error)
}

func (c *Converter) Convert(html, pageURL string) (string, error) {
	return c.ConvertFn(html, pageURL)
}
