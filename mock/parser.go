package mock

import "github.com/fwojciec/netpull"

var _ netpull.PageParser = (*PageParser)(nil)

// PageParser is a mock implementation of netpull.PageParser.
type PageParser struct {
	ParseFn func(html string, opts netpull.ExtractionOptions) (*netpull.ParsedPage, error)
}

func (p *PageParser) Parse(html string, opts netpull.ExtractionOptions) (*netpull.ParsedPage, error) {
	return p.ParseFn(html, opts)
}
