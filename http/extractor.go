// Package http provides HTTP-based collaborators: a static-page
// implementation of netpull.Extractor for sites that don't require
// JavaScript rendering, and the background keepalive probe.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/netpull"
)

// Ensure Extractor implements netpull.Extractor at compile time.
var _ netpull.Extractor = (*Extractor)(nil)

// Extractor retrieves pages with plain HTTP requests. Unlike
// rod.Extractor this does not execute JavaScript, and it cannot
// capture screenshots: the Screenshot toggle is ignored and no
// screenshot path is produced.
type Extractor struct {
	client    *http.Client
	outputDir string
	parser    netpull.PageParser
}

// NewExtractor creates an HTTP-based Extractor writing artifacts under
// outputDir and parsing fetched HTML with parser.
func NewExtractor(outputDir string, parser netpull.PageParser) *Extractor {
	return &Extractor{
		client:    &http.Client{},
		outputDir: outputDir,
		parser:    parser,
	}
}

// Extract fetches the URL and captures the artifacts selected in opts.
// The timeout requested by cfg bounds the whole call.
func (e *Extractor) Extract(ctx context.Context, rawURL string, cfg netpull.BrowserConfig, opts netpull.ExtractionOptions) (*netpull.ExtractionResult, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(cfg.TimeoutMS)*time.Millisecond)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, rawURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	html := string(body)

	res := &netpull.ExtractionResult{Success: true}

	if opts.HTML {
		if err := os.MkdirAll(e.outputDir, 0755); err != nil {
			return nil, fmt.Errorf("creating output directory: %w", err)
		}
		path := filepath.Join(e.outputDir, netpull.ArtifactBase(rawURL)+".html")
		if err := os.WriteFile(path, body, 0644); err != nil {
			return nil, fmt.Errorf("writing artifact: %w", err)
		}
		res.HTMLPath = path
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

// Close releases resources. For the HTTP extractor this is a no-op
// since http.Client doesn't require explicit cleanup.
func (e *Extractor) Close() error {
	return nil
}
