package main

import (
	"fmt"

	"github.com/fwojciec/netpull"
	"github.com/fwojciec/netpull/pull"
)

// Run executes the dir command.
func (c *DirCmd) Run(deps *Dependencies) error {
	sel, err := netpull.ResolveDirectory(c.Path)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", netpull.ErrorMessage(err))
		return err
	}

	p := &pull.Pipeline{
		Reader:    deps.Reader,
		Presenter: deps.Presenter,
		Logger:    deps.Logger,
	}

	return p.Run(deps.Ctx, sel, netpull.BrowserConfig{}, netpull.ExtractionOptions{}, pull.Overrides{})
}
