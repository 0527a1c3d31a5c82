// Package htmltomarkdown converts full-content pages served as HTML into
// Markdown so they read the same as pages served as raw .md files.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/PuerkitoBio/goquery"
	"github.com/jeongil-dev/llmsdoc"
)

// Ensure Converter implements llmsdoc.Converter at compile time.
var _ llmsdoc.Converter = (*Converter)(nil)

// contentSelectors locate the main body of a blog page, most specific first.
var contentSelectors = []string{"article", "main", "[role='main']"}

// chromeSelectors are removed before conversion.
const chromeSelectors = "script, style, noscript, nav, header, footer, aside"

// Converter wraps html-to-markdown to convert HTML to Markdown.
type Converter struct {
	conv   *converter.Converter
	domain string
}

// Option configures a Converter.
type Option func(*Converter)

// WithDomain resolves relative links and images against domain.
func WithDomain(domain string) Option {
	return func(c *Converter) {
		c.domain = strings.TrimRight(domain, "/")
	}
}

// NewConverter creates a new Converter.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		conv: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
				table.NewTablePlugin(),
			),
		),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert transforms HTML content into Markdown. When the page has an
// article or main element only that element is converted, and page
// chrome such as navigation and footers is dropped.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", llmsdoc.Errorf(llmsdoc.EINVALID, "empty HTML input")
	}

	body, err := mainContent(html)
	if err != nil {
		return "", err
	}

	var result string
	if c.domain != "" {
		result, err = c.conv.ConvertString(body, converter.WithDomain(c.domain))
	} else {
		result, err = c.conv.ConvertString(body)
	}
	if err != nil {
		return "", llmsdoc.WrapError(llmsdoc.EINVALID, err, "failed to convert HTML")
	}

	return strings.TrimSpace(result), nil
}

// mainContent returns the HTML of the main content element, or the whole
// document when none is found.
func mainContent(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", llmsdoc.Errorf(llmsdoc.EINVALID, "failed to parse HTML: %v", err)
	}

	doc.Find(chromeSelectors).Remove()

	for _, selector := range contentSelectors {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		return goquery.OuterHtml(sel)
	}

	return doc.Html()
}
