// Package pull provides the single-session extraction pipeline. It
// dispatches a resolved input to either one extraction call or a local
// content scan, enriches successful extractions into sharing signals
// and outbound links, and hands the outcome to the presenter.
package pull

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/fwojciec/netpull"
)

// Pipeline orchestrates one user action end to end. The zero value is
// not usable; populate the interface fields before calling Run.
type Pipeline struct {
	Extractor netpull.Extractor
	Reader    netpull.ContentReader
	Links     *netpull.LinkBuilder
	Presenter netpull.ResultPresenter
	Logger    *slog.Logger

	// mu serializes extraction calls: the session supports at most one
	// in-flight extraction.
	mu sync.Mutex
}

// Overrides carries the caller-selected values that take precedence
// over enrichment-derived ones. Empty fields defer to the derived
// values.
type Overrides struct {
	// Theme overrides the URL-detected share theme.
	Theme string

	// VideoURL overrides the metadata-detected video URL.
	VideoURL string
}

// Run executes the pipeline for one resolved input. Validation and
// extraction failures are reported through the presenter, not
// returned; the returned error covers presenter failures only.
func (p *Pipeline) Run(ctx context.Context, sel netpull.InputSelection, cfg netpull.BrowserConfig, opts netpull.ExtractionOptions, ov Overrides) error {
	switch sel.Modality {
	case netpull.ModalityURL:
		return p.runExtraction(ctx, sel.URL, cfg, opts, ov)
	case netpull.ModalityDirectory:
		return p.runDirectory(ctx, sel.Dir)
	case netpull.ModalityUpload:
		return p.runUpload(ctx, sel.Upload)
	}
	return p.Presenter.PresentFailure(fmt.Sprintf("unknown input modality %q", sel.Modality))
}

// runExtraction performs the URL path: one extraction call, then
// enrichment and link building on success.
func (p *Pipeline) runExtraction(ctx context.Context, url string, cfg netpull.BrowserConfig, opts netpull.ExtractionOptions, ov Overrides) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	res := p.invoke(ctx, url, cfg, opts)
	if !res.Success {
		p.logger().Warn("extraction failed", "url", url, "reason", res.Error)
		return p.Presenter.PresentFailure("Extraction failed: " + res.Error)
	}

	sig := netpull.Enrich(res, url)
	if ov.VideoURL != "" {
		sig.VideoURL = ov.VideoURL
	}
	links := p.linkBuilder().Build(sig, url, ov.Theme)

	return p.Presenter.PresentExtraction(res, sig, links)
}

// invoke makes exactly one call to the extraction engine. An error or
// panic from the engine is converted into a failed result; nothing
// raised during extraction crashes the session.
func (p *Pipeline) invoke(ctx context.Context, url string, cfg netpull.BrowserConfig, opts netpull.ExtractionOptions) (res *netpull.ExtractionResult) {
	defer func() {
		if r := recover(); r != nil {
			p.logger().Error("extraction engine panicked", "url", url, "panic", r)
			res = netpull.FailedResult(fmt.Sprintf("extraction engine panicked: %v", r))
		}
	}()

	result, err := p.Extractor.Extract(ctx, url, cfg, opts)
	if err != nil {
		return netpull.FailedResult(err.Error())
	}
	if result == nil {
		return netpull.FailedResult("extraction engine returned no result")
	}
	return result
}

// runDirectory performs the local directory path. The pipeline
// terminates here: no enrichment, no link building.
func (p *Pipeline) runDirectory(ctx context.Context, dir string) error {
	records, err := p.Reader.ReadDir(ctx, dir)
	if err != nil {
		p.logger().Warn("directory scan failed", "dir", dir, "error", err)
		return p.Presenter.PresentFailure(netpull.ErrorMessage(err))
	}
	return p.Presenter.PresentLocal(records)
}

// runUpload performs the uploaded file path.
func (p *Pipeline) runUpload(ctx context.Context, upload *netpull.Upload) error {
	record, err := p.Reader.SaveUpload(ctx, upload)
	if err != nil {
		p.logger().Warn("upload save failed", "error", err)
		return p.Presenter.PresentFailure(netpull.ErrorMessage(err))
	}
	return p.Presenter.PresentLocal([]*netpull.LocalFileRecord{record})
}

func (p *Pipeline) linkBuilder() *netpull.LinkBuilder {
	if p.Links != nil {
		return p.Links
	}
	return netpull.NewLinkBuilder()
}

func (p *Pipeline) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return slog.Default()
}
