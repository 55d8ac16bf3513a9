package mock

import "github.com/fwojciec/netpull"

var _ netpull.ResultPresenter = (*Presenter)(nil)

// Presenter is a mock implementation of netpull.ResultPresenter.
type Presenter struct {
	PresentExtractionFn func(res *netpull.ExtractionResult, sig netpull.EnrichedSignals, links *netpull.OutboundLinks) error
	PresentLocalFn      func(records []*netpull.LocalFileRecord) error
	PresentFailureFn    func(reason string) error
}

func (p *Presenter) PresentExtraction(res *netpull.ExtractionResult, sig netpull.EnrichedSignals, links *netpull.OutboundLinks) error {
	return p.PresentExtractionFn(res, sig, links)
}

func (p *Presenter) PresentLocal(records []*netpull.LocalFileRecord) error {
	return p.PresentLocalFn(records)
}

func (p *Presenter) PresentFailure(reason string) error {
	return p.PresentFailureFn(reason)
}
