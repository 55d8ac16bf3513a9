// Package rod provides a browser-automation implementation of
// netpull.Extractor using Chrome browser automation.
package rod

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/netpull"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Ensure Extractor implements netpull.Extractor at compile time.
var _ netpull.Extractor = (*Extractor)(nil)

// Extractor fetches pages with a browser launched per extraction call,
// matching the one-call-per-action lifecycle: BrowserConfig is
// constructed fresh for each call and never persisted.
//
// rod drives Chromium; BrowserConfig.Engine is carried through the
// configuration surface but the launched browser is always the bundled
// Chromium.
type Extractor struct {
	outputDir string
	parser    netpull.PageParser
}

// NewExtractor creates an Extractor that writes file artifacts under
// outputDir and parses rendered HTML with parser.
func NewExtractor(outputDir string, parser netpull.PageParser) *Extractor {
	return &Extractor{outputDir: outputDir, parser: parser}
}

// Extract navigates to the URL, waits for the page to render, and
// captures the artifacts selected in opts.
func (e *Extractor) Extract(ctx context.Context, rawURL string, cfg netpull.BrowserConfig, opts netpull.ExtractionOptions) (*netpull.ExtractionResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(cfg.TimeoutMS)*time.Millisecond)
	defer cancel()

	l := launcher.New().Headless(cfg.Headless)
	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill() // Clean up launched process on connection failure
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}
	defer func() {
		_ = browser.Close()
		l.Kill()
	}()

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, err
	}
	defer page.Close()

	// Set context for all subsequent operations
	page = page.Context(ctx)

	if err := page.Navigate(rawURL); err != nil {
		return nil, err
	}
	if err := page.WaitLoad(); err != nil {
		return nil, err
	}

	html, err := page.HTML()
	if err != nil {
		return nil, err
	}

	res := &netpull.ExtractionResult{Success: true}
	base := netpull.ArtifactBase(rawURL)

	if opts.HTML {
		path, err := e.writeArtifact(base+".html", []byte(html))
		if err != nil {
			return nil, err
		}
		res.HTMLPath = path
	}

	if opts.Screenshot {
		data, err := page.Screenshot(true, nil)
		if err != nil {
			return nil, fmt.Errorf("capturing screenshot: %w", err)
		}
		path, err := e.writeArtifact(base+".png", data)
		if err != nil {
			return nil, err
		}
		res.ScreenshotPath = path
	}

	parsed, err := e.parser.Parse(html, opts)
	if err != nil {
		return nil, err
	}
	res.Structured = parsed.Structured
	res.Images = parsed.Images
	res.Tables = parsed.Tables
	res.Forms = parsed.Forms
	res.Metadata = parsed.Metadata

	return res, nil
}

// Close releases browser resources. The browser lifetime is scoped to
// each Extract call, so there is nothing to release here.
func (e *Extractor) Close() error {
	return nil
}

func (e *Extractor) writeArtifact(name string, data []byte) (string, error) {
	if err := os.MkdirAll(e.outputDir, 0755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}
	path := filepath.Join(e.outputDir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing artifact %s: %w", name, err)
	}
	return path, nil
}
