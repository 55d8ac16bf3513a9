package netpull_test

import (
	"net/url"
	"strings"
	"testing"

	"github.com/fwojciec/netpull"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseQuery(t *testing.T, link string) url.Values {
	t.Helper()
	u, err := url.Parse(link)
	require.NoError(t, err)
	return u.Query()
}

func TestLinkBuilder_ShareLink(t *testing.T) {
	t.Parallel()

	t.Run("assembles title, summary and trailer with blank-line separators", func(t *testing.T) {
		t.Parallel()

		b := netpull.NewLinkBuilder()
		sig := netpull.EnrichedSignals{
			Title:       "Hello 2026",
			Description: "A short summary",
			Theme:       netpull.ThemeStars,
		}

		link := b.ShareLink(sig, "https://example.com", "")

		assert.True(t, strings.HasPrefix(link, netpull.DefaultShareBaseURL+"?"))
		q := parseQuery(t, link)
		assert.Equal(t, "📰 Hello 2026\n\nA short summary\n\n🔗 https://example.com", q.Get("message"))
		assert.Equal(t, "netpull", q.Get("from"))
		assert.Equal(t, "friend", q.Get("to"))
		assert.Equal(t, netpull.ThemeStars, q.Get("theme"))
	})

	t.Run("truncates a long summary to 300 characters plus ellipsis", func(t *testing.T) {
		t.Parallel()

		b := netpull.NewLinkBuilder()
		sig := netpull.EnrichedSignals{Description: strings.Repeat("a", 500)}

		q := parseQuery(t, b.ShareLink(sig, "", ""))

		assert.Equal(t, strings.Repeat("a", 300)+"...", q.Get("message"))
	})

	t.Run("caller theme overrides detected theme", func(t *testing.T) {
		t.Parallel()

		b := netpull.NewLinkBuilder()
		sig := netpull.EnrichedSignals{Theme: netpull.ThemeFireworks}

		q := parseQuery(t, b.ShareLink(sig, "https://youtube.com/x", netpull.ThemeChampagne))

		assert.Equal(t, netpull.ThemeChampagne, q.Get("theme"))
	})

	t.Run("empty signals still produce a well-formed link", func(t *testing.T) {
		t.Parallel()

		b := netpull.NewLinkBuilder()

		q := parseQuery(t, b.ShareLink(netpull.EnrichedSignals{}, "", ""))

		assert.Equal(t, "", q.Get("message"))
		assert.Equal(t, netpull.DefaultTheme, q.Get("theme"))
	})
}

func TestLinkBuilder_FunnelLink(t *testing.T) {
	t.Parallel()

	t.Run("truncates a 60-character title to the first 50", func(t *testing.T) {
		t.Parallel()

		b := netpull.NewLinkBuilder()
		title := strings.Repeat("t", 60)

		q := parseQuery(t, b.FunnelLink(netpull.EnrichedSignals{Title: title}))

		assert.Equal(t, "✨ "+strings.Repeat("t", 50), q.Get("headline"))
	})

	t.Run("keeps a short title unmodified", func(t *testing.T) {
		t.Parallel()

		b := netpull.NewLinkBuilder()

		q := parseQuery(t, b.FunnelLink(netpull.EnrichedSignals{Title: "0123456789"}))

		assert.Equal(t, "✨ 0123456789", q.Get("headline"))
	})

	t.Run("appends the price line to an existing offer with a blank line", func(t *testing.T) {
		t.Parallel()

		b := netpull.NewLinkBuilder()
		sig := netpull.EnrichedSignals{Description: "Great deal", Price: "USD 9.99"}

		q := parseQuery(t, b.FunnelLink(sig))

		assert.Equal(t, "Great deal\n\n💰 USD 9.99", q.Get("offer"))
		assert.Equal(t, "USD 9.99", q.Get("price"))
	})

	t.Run("price alone becomes the whole offer", func(t *testing.T) {
		t.Parallel()

		b := netpull.NewLinkBuilder()

		q := parseQuery(t, b.FunnelLink(netpull.EnrichedSignals{Price: "USD 5"}))

		assert.Equal(t, "💰 USD 5", q.Get("offer"))
	})

	t.Run("round-trips exactly the non-empty fields", func(t *testing.T) {
		t.Parallel()

		b := netpull.NewLinkBuilder()

		tests := []struct {
			name     string
			sig      netpull.EnrichedSignals
			wantKeys []string
		}{
			{"all three", netpull.EnrichedSignals{Title: "T", Description: "D", Price: "USD 1"}, []string{"headline", "offer", "price", "utm_source"}},
			{"title only", netpull.EnrichedSignals{Title: "T"}, []string{"headline", "utm_source"}},
			{"description only", netpull.EnrichedSignals{Description: "D"}, []string{"offer", "utm_source"}},
			{"nothing", netpull.EnrichedSignals{}, []string{"utm_source"}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				q := parseQuery(t, b.FunnelLink(tt.sig))

				assert.Len(t, q, len(tt.wantKeys))
				for _, key := range tt.wantKeys {
					assert.NotEmpty(t, q.Get(key), key)
				}
				assert.Equal(t, "netpull", q.Get("utm_source"))
			})
		}
	})
}

func TestLinkBuilder_Build(t *testing.T) {
	t.Parallel()

	b := &netpull.LinkBuilder{
		ShareBase:  "https://share.test/create",
		FunnelBase: "https://funnel.test/offer",
	}

	links := b.Build(netpull.EnrichedSignals{Title: "T"}, "https://example.com", "")

	assert.True(t, strings.HasPrefix(links.ShareURL, "https://share.test/create?"))
	assert.True(t, strings.HasPrefix(links.FunnelURL, "https://funnel.test/offer?"))
}
