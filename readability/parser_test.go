package readability_test

import (
	"testing"

	"github.com/fwojciec/netpull"
	"github.com/fwojciec/netpull/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const articleHTML = `<!DOCTYPE html>
<html>
<head><title>My Article</title></head>
<body>
<nav><a href="/">Home</a><a href="/about">About</a></nav>
<article>
<h1>My Article</h1>
<p>This is the first paragraph of the article, long enough for readability to keep it around as main content.</p>
<p>This is the second paragraph of the article, also long enough to count as meaningful article body text.</p>
</article>
<footer>Copyright</footer>
</body>
</html>`

func TestParser_Parse(t *testing.T) {
	t.Parallel()

	p := readability.NewParser()
	page, err := p.Parse(articleHTML, netpull.ExtractionOptions{Images: true, Metadata: true})

	require.NoError(t, err)
	require.NotNil(t, page.Structured)
	assert.Equal(t, "My Article", page.Structured.Title)
	assert.NotEmpty(t, page.Structured.Paragraphs)

	// Article mode never produces the other artifact kinds.
	assert.Nil(t, page.Images)
	assert.Nil(t, page.Tables)
	assert.Nil(t, page.Forms)
	assert.Nil(t, page.Metadata)
}

func TestParser_Parse_EmptyInput(t *testing.T) {
	t.Parallel()

	p := readability.NewParser()
	_, err := p.Parse("", netpull.ExtractionOptions{})

	assert.Equal(t, netpull.EINVALID, netpull.ErrorCode(err))
}
