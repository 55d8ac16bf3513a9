package main

import (
	"fmt"
	"net/url"

	"github.com/fwojciec/netpull"
	"github.com/fwojciec/netpull/pull"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	rawURL, cfg, err := c.resolveRequest()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", netpull.ErrorMessage(err))
		return err
	}

	sel, err := netpull.ResolveURL(rawURL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", netpull.ErrorMessage(err))
		return err
	}

	extractor := deps.NewExtractor(deps.OutputDir, deps.NewParser(c.Article), c.Static)
	defer extractor.Close()

	p := &pull.Pipeline{
		Extractor: extractor,
		Reader:    deps.Reader,
		Presenter: deps.Presenter,
		Logger:    deps.Logger,
	}

	return p.Run(deps.Ctx, sel, cfg, c.options(), pull.Overrides{Theme: c.Theme, VideoURL: c.Video})
}

// resolveRequest derives the source URL and browser configuration.
// When a deep-link seed is supplied it provides url, browser, headless
// mode, and timeout wholesale, with invalid values falling back to the
// documented defaults; otherwise the flags apply.
func (c *ExtractCmd) resolveRequest() (string, netpull.BrowserConfig, error) {
	if c.Seed != "" {
		q, err := url.ParseQuery(c.Seed)
		if err != nil {
			return "", netpull.BrowserConfig{}, netpull.Errorf(netpull.EINVALID, "invalid seed query string: %v", err)
		}
		state := netpull.StateFromQuery(q)
		rawURL := state.URL
		if rawURL == "" {
			rawURL = c.URL
		}
		return rawURL, netpull.NewBrowserConfig(state.Engine, state.Headless, state.TimeoutSec), nil
	}

	cfg := netpull.NewBrowserConfig(
		netpull.ParseEngine(c.Browser),
		c.Headless,
		netpull.ClampTimeout(c.Timeout),
	)
	return c.URL, cfg, nil
}

func (c *ExtractCmd) options() netpull.ExtractionOptions {
	return netpull.ExtractionOptions{
		Screenshot: c.Screenshot,
		HTML:       c.HTML,
		Images:     c.Images,
		Tables:     c.Tables,
		Forms:      c.Forms,
		Metadata:   c.Metadata,
	}
}
