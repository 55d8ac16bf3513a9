package netpull

import (
	"net/url"
	"strings"
)

// Fixed downstream endpoints and provenance values. The query keys and
// these values are a compatibility surface; consumers parse them by
// key.
const (
	DefaultShareBaseURL  = "https://glimmer.cards/create"
	DefaultFunnelBaseURL = "https://glimmer.cards/offer"

	shareFrom    = "netpull"
	shareTo      = "friend"
	funnelSource = "netpull"
)

// Truncation limits for outbound message fields.
const (
	maxSummaryLen  = 300
	maxHeadlineLen = 50
	maxOfferLen    = 200
)

// OutboundLinks holds the two deep links derived from one enrichment.
type OutboundLinks struct {
	ShareURL  string
	FunnelURL string
}

// LinkBuilder composes deep links for the downstream consumer
// services. The zero value uses the fixed production endpoints; the
// base URLs are overridable for tests.
type LinkBuilder struct {
	ShareBase  string
	FunnelBase string
}

// NewLinkBuilder returns a LinkBuilder pointing at the production
// endpoints.
func NewLinkBuilder() *LinkBuilder {
	return &LinkBuilder{
		ShareBase:  DefaultShareBaseURL,
		FunnelBase: DefaultFunnelBaseURL,
	}
}

// Build derives both outbound links from one set of signals. The theme
// argument is the caller-selected override; when empty the detected
// theme (or the default) applies.
func (b *LinkBuilder) Build(sig EnrichedSignals, sourceURL, theme string) *OutboundLinks {
	return &OutboundLinks{
		ShareURL:  b.ShareLink(sig, sourceURL, theme),
		FunnelURL: b.FunnelLink(sig),
	}
}

// ShareLink builds the "share as greeting" deep link. The message body
// is assembled from the title, a summary truncated to 300 characters,
// and a source-URL trailer, joined by blank lines. Missing fields
// degrade to a shorter message, never an error.
func (b *LinkBuilder) ShareLink(sig EnrichedSignals, sourceURL, theme string) string {
	var parts []string
	if sig.Title != "" {
		parts = append(parts, "📰 "+sig.Title)
	}
	if sig.Description != "" {
		parts = append(parts, truncateEllipsis(sig.Description, maxSummaryLen))
	}
	if sourceURL != "" {
		parts = append(parts, "🔗 "+sourceURL)
	}

	if theme == "" {
		theme = sig.Theme
	}
	if theme == "" {
		theme = DefaultTheme
	}

	q := url.Values{}
	q.Set("message", strings.Join(parts, "\n\n"))
	q.Set("from", shareFrom)
	q.Set("to", shareTo)
	q.Set("theme", theme)

	return b.base(b.ShareBase, DefaultShareBaseURL) + "?" + q.Encode()
}

// FunnelLink builds the marketing funnel deep link. Only non-empty
// fields become query parameters; absent fields are omitted entirely.
// The utm_source tag identifies the originating tool and is always
// present.
func (b *LinkBuilder) FunnelLink(sig EnrichedSignals) string {
	q := url.Values{}

	if sig.Title != "" {
		q.Set("headline", "✨ "+truncate(sig.Title, maxHeadlineLen))
	}

	offer := truncate(sig.Description, maxOfferLen)
	if sig.Price != "" {
		line := "💰 " + sig.Price
		if offer != "" {
			offer += "\n\n" + line
		} else {
			offer = line
		}
		q.Set("price", sig.Price)
	}
	if offer != "" {
		q.Set("offer", offer)
	}

	q.Set("utm_source", funnelSource)

	return b.base(b.FunnelBase, DefaultFunnelBaseURL) + "?" + q.Encode()
}

func (b *LinkBuilder) base(configured, fallback string) string {
	if configured != "" {
		return configured
	}
	return fallback
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// truncateEllipsis cuts s to at most n runes, appending an ellipsis
// marker when truncation happened.
func truncateEllipsis(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
