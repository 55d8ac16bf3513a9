package mock

import "github.com/fwojciec/netpull"

var _ netpull.Converter = (*Converter)(nil)

// Converter is a mock implementation of netpull.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
