package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/netpull"
	"github.com/fwojciec/netpull/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	c := htmltomarkdown.NewConverter()

	md, err := c.Convert("<h1>Title</h1><p>Some <strong>bold</strong> text.</p>")

	require.NoError(t, err)
	assert.Contains(t, md, "# Title")
	assert.Contains(t, md, "**bold**")
}

func TestConverter_Convert_Table(t *testing.T) {
	t.Parallel()

	c := htmltomarkdown.NewConverter()

	md, err := c.Convert("<table><tr><th>A</th></tr><tr><td>1</td></tr></table>")

	require.NoError(t, err)
	assert.Contains(t, md, "| A |")
}

func TestConverter_Convert_EmptyInput(t *testing.T) {
	t.Parallel()

	c := htmltomarkdown.NewConverter()

	_, err := c.Convert("   ")

	assert.Equal(t, netpull.EINVALID, netpull.ErrorCode(err))
}
