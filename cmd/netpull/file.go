package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/netpull"
	"github.com/fwojciec/netpull/pull"
)

// Run executes the file command. The file is treated as an upload: it
// is persisted under the output directory with its original name and
// classified like a directory entry.
func (c *FileCmd) Run(deps *Dependencies) error {
	data, err := os.ReadFile(c.Path)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: cannot read %q\n", c.Path)
		return netpull.Errorf(netpull.ENOTFOUND, "cannot read file %q", c.Path)
	}

	sel, err := netpull.ResolveUpload(c.Path, data)
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
