package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/netpull"
)

// maxPreviewLen bounds the markdown preview of the saved HTML artifact.
const maxPreviewLen = 5000

// Presenter renders pipeline outcomes as sectioned text.
type Presenter struct {
	w         io.Writer
	converter netpull.Converter
}

var _ netpull.ResultPresenter = (*Presenter)(nil)

// NewPresenter returns a Presenter writing to w. The converter produces
// the markdown preview of a saved HTML artifact; it may be nil, which
// disables the preview.
func NewPresenter(w io.Writer, converter netpull.Converter) *Presenter {
	return &Presenter{w: w, converter: converter}
}

// PresentExtraction renders one successful extraction. A missing or
// unreadable artifact file is reported in its own section and never
// aborts the remaining sections.
func (p *Presenter) PresentExtraction(res *netpull.ExtractionResult, sig netpull.EnrichedSignals, links *netpull.OutboundLinks) error {
	fmt.Fprintln(p.w, "== Extraction ==")

	p.presentArtifacts(res)
	p.presentStructured(res.Structured)
	p.presentImages(res.Images)
	p.presentTables(res.Tables)
	p.presentForms(res.Forms)
	p.presentMetadata(res.Metadata)
	p.presentSignals(sig)
	p.presentLinks(links)
	p.presentPreview(res.HTMLPath)

	return nil
}

// PresentLocal renders the records of a directory scan or an upload.
func (p *Presenter) PresentLocal(records []*netpull.LocalFileRecord) error {
	fmt.Fprintln(p.w, "== Local content ==")
	if len(records) == 0 {
		fmt.Fprintln(p.w, "no supported documents found")
		return nil
	}
	for _, r := range records {
		fmt.Fprintf(p.w, "\n-- %s (%s, %d bytes, %s) --\n", r.Path, r.Extension, r.SizeBytes, r.ContentHash)
		fmt.Fprintln(p.w, r.Content)
	}
	return nil
}

// PresentFailure reports a validation or extraction failure.
func (p *Presenter) PresentFailure(reason string) error {
	fmt.Fprintf(p.w, "== Failure ==\n%s\n", reason)
	return nil
}

func (p *Presenter) presentArtifacts(res *netpull.ExtractionResult) {
	if res.ScreenshotPath == "" && res.HTMLPath == "" {
		return
	}
	fmt.Fprintln(p.w, "\n-- Artifacts --")
	p.presentArtifact("screenshot", res.ScreenshotPath)
	p.presentArtifact("html", res.HTMLPath)
}

func (p *Presenter) presentArtifact(kind, path string) {
	if path == "" {
		return
	}
	if _, err := os.Stat(path); err != nil {
		fmt.Fprintf(p.w, "%s: %s (missing)\n", kind, path)
		return
	}
	fmt.Fprintf(p.w, "%s: %s\n", kind, path)
}

func (p *Presenter) presentStructured(s *netpull.StructuredData) {
	if s == nil {
		return
	}
	fmt.Fprintln(p.w, "\n-- Structured --")
	if s.Title != "" {
		fmt.Fprintf(p.w, "title: %s\n", s.Title)
	}
	for _, h := range s.Headings {
		fmt.Fprintf(p.w, "heading: %s\n", h)
	}
	fmt.Fprintf(p.w, "paragraphs: %d, links: %d\n", len(s.Paragraphs), len(s.Links))
}

func (p *Presenter) presentImages(images []netpull.Image) {
	if len(images) == 0 {
		return
	}
	fmt.Fprintf(p.w, "\n-- Images (%d) --\n", len(images))
	for _, img := range images {
		fmt.Fprintf(p.w, "%s\t%s\n", img.Src, img.Alt)
	}
}

func (p *Presenter) presentTables(tables []netpull.Table) {
	if len(tables) == 0 {
		return
	}
	fmt.Fprintf(p.w, "\n-- Tables (%d) --\n", len(tables))
	for i, t := range tables {
		fmt.Fprintf(p.w, "table %d: %d columns, %d rows\n", i+1, len(t.Headers), len(t.Rows))
	}
}

func (p *Presenter) presentForms(forms []netpull.Form) {
	if len(forms) == 0 {
		return
	}
	fmt.Fprintf(p.w, "\n-- Forms (%d) --\n", len(forms))
	for _, f := range forms {
		fmt.Fprintf(p.w, "%s %s (%d fields)\n", f.Method, f.Action, len(f.Fields))
	}
}

func (p *Presenter) presentMetadata(meta map[string]string) {
	if len(meta) == 0 {
		return
	}
	fmt.Fprintf(p.w, "\n-- Metadata (%d) --\n", len(meta))
	for k, v := range meta {
		fmt.Fprintf(p.w, "%s: %s\n", k, v)
	}
}

func (p *Presenter) presentSignals(sig netpull.EnrichedSignals) {
	fmt.Fprintln(p.w, "\n-- Signals --")
	if sig.Title != "" {
		fmt.Fprintf(p.w, "title: %s\n", sig.Title)
	}
	if sig.Description != "" {
		fmt.Fprintf(p.w, "description: %s\n", sig.Description)
	}
	if sig.OGImage != "" {
		fmt.Fprintf(p.w, "image: %s\n", sig.OGImage)
	}
	if sig.VideoURL != "" {
		fmt.Fprintf(p.w, "video: %s\n", sig.VideoURL)
	}
	if sig.Price != "" {
		fmt.Fprintf(p.w, "price: %s\n", sig.Price)
	}
	fmt.Fprintf(p.w, "theme: %s\n", sig.Theme)
}

func (p *Presenter) presentLinks(links *netpull.OutboundLinks) {
	if links == nil {
		return
	}
	fmt.Fprintln(p.w, "\n-- Share --")
	fmt.Fprintf(p.w, "share: %s\n", links.ShareURL)
	fmt.Fprintf(p.w, "funnel: %s\n", links.FunnelURL)
}

// presentPreview renders a bounded markdown preview of the saved HTML
// artifact. Preview failures degrade to a note; the rest of the output
// stands.
func (p *Presenter) presentPreview(htmlPath string) {
	if htmlPath == "" || p.converter == nil {
		return
	}
	data, err := os.ReadFile(htmlPath)
	if err != nil {
		fmt.Fprintf(p.w, "\n-- Preview --\nunavailable: %s missing\n", htmlPath)
		return
	}
	md, err := p.converter.Convert(string(data))
	if err != nil {
		fmt.Fprintf(p.w, "\n-- Preview --\nunavailable: %s\n", netpull.ErrorMessage(err))
		return
	}
	if len(md) > maxPreviewLen {
		md = md[:maxPreviewLen] + "..."
	}
	fmt.Fprintf(p.w, "\n-- Preview --\n%s\n", md)
}
