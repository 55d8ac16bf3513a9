package mock

import (
	"context"

	"github.com/fwojciec/netpull"
)

var _ netpull.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of netpull.Extractor.
type Extractor struct {
	ExtractFn func(ctx context.Context, url string, cfg netpull.BrowserConfig, opts netpull.ExtractionOptions) (*netpull.ExtractionResult, error)
	CloseFn   func() error
}

func (e *Extractor) Extract(ctx context.Context, url string, cfg netpull.BrowserConfig, opts netpull.ExtractionOptions) (*netpull.ExtractionResult, error) {
	return e.ExtractFn(ctx, url, cfg, opts)
}

func (e *Extractor) Close() error {
	if e.CloseFn == nil {
		return nil
	}
	return e.CloseFn()
}
