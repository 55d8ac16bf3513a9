// Package readability provides an article-mode implementation of
// netpull.PageParser built on go-readability. It extracts the main
// article title and paragraphs with boilerplate removed; image, table,
// form, and metadata artifacts are not produced in this mode.
package readability

import (
	"strings"

	"github.com/fwojciec/netpull"
	"github.com/go-shiori/go-readability"
)

// Ensure Parser implements netpull.PageParser at compile time.
var _ netpull.PageParser = (*Parser)(nil)

// Parser wraps go-readability.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse extracts the main article content from rendered HTML. The
// artifact toggles for images, tables, forms, and metadata are ignored
// in article mode; those fields stay nil.
func (p *Parser) Parse(html string, opts netpull.ExtractionOptions) (*netpull.ParsedPage, error) {
	if html == "" {
		return nil, netpull.Errorf(netpull.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(html), nil)
	if err != nil {
		return nil, err
	}

	return &netpull.ParsedPage{
		Structured: &netpull.StructuredData{
			Title:      article.Title,
			Paragraphs: splitParagraphs(article.TextContent),
		},
	}, nil
}

// splitParagraphs splits extracted article text into non-empty
// paragraphs.
func splitParagraphs(text string) []string {
	var paragraphs []string
	for _, block := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(block); trimmed != "" {
			paragraphs = append(paragraphs, trimmed)
		}
	}
	return paragraphs
}
