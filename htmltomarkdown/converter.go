package htmltomarkdown

import (
	"net/url"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/skim"
)

// Ensure Converter implements skim.Converter at compile time.
var _ skim.Converter = (*Converter)(nil)

// Converter renders article content HTML as Markdown.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms article HTML into Markdown, resolving relative links
// and images against the scheme and host of pageURL.
func (c *Converter) Convert(html string, pageURL string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", skim.Errorf(skim.EINVALID, "empty HTML input")
	}

	var md string
	var err error
	if domain := siteRoot(pageURL); domain != "" {
		md, err = c.conv.ConvertString(html, converter.WithDomain(domain))
	} else {
		md, err = c.conv.ConvertString(html)
	}
	if err != nil {
		return "", skim.WrapError(skim.EEXTRACT, err, "failed to render markdown")
	}
	return strings.TrimSpace(md), nil
}

func siteRoot(pageURL string) string {
	u, err := url.Parse(pageURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host
}
