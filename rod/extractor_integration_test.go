//go:build integration

package rod_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/fwojciec/netpull"
	"github.com/fwojciec/netpull/goquery"
	"github.com/fwojciec/netpull/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<!DOCTYPE html><html><head><title>Hello</title></head><body><p>Paragraph one.</p></body></html>`))
	}))
	defer srv.Close()

	outputDir := t.TempDir()
	e := rod.NewExtractor(outputDir, goquery.NewParser())
	defer e.Close()

	cfg := netpull.NewBrowserConfig(netpull.EngineChrome, true, 30)
	opts := netpull.ExtractionOptions{Screenshot: true, HTML: true}

	res, err := e.Extract(context.Background(), srv.URL, cfg, opts)
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, "Hello", res.Structured.Title)
	assert.Equal(t, []string{"Paragraph one."}, res.Structured.Paragraphs)

	for _, path := range []string{res.HTMLPath, res.ScreenshotPath} {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}
}

func TestExtractor_Extract_CancelledContext(t *testing.T) {
	t.Parallel()

	e := rod.NewExtractor(t.TempDir(), goquery.NewParser())
	defer e.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.Extract(ctx, "https://example.com", netpull.NewBrowserConfig(netpull.EngineChrome, true, 30), netpull.ExtractionOptions{})
	assert.Error(t, err)
}
