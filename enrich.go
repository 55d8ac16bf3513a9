package netpull

import "strings"

// Theme names understood by the glimmer.cards consumers.
const (
	ThemeFireworks = "fireworks"
	ThemeLights    = "lights"
	ThemeConfetti  = "confetti"
	ThemeStars     = "stars"
	ThemeChampagne = "champagne"
)

// DefaultTheme is used when no keyword bucket matches the source URL.
const DefaultTheme = ThemeLights

// EnrichedSignals holds the sharing signals derived from an extraction
// result. Derived, ephemeral, never stored. Absent inputs yield empty
// fields, never an error.
type EnrichedSignals struct {
	Title       string
	Description string
	OGImage     string
	VideoURL    string
	Price       string
	Theme       string
}

// themeBucket pairs URL keywords with the theme they select. Buckets
// are checked in order; the first match wins and buckets are never
// combined.
type themeBucket struct {
	theme    string
	keywords []string
}

var themeBuckets = []themeBucket{
	{ThemeFireworks, []string{"youtube", "youtu.be", "vimeo", "twitch", "tiktok"}},
	{ThemeLights, []string{"news", "bbc", "cnn", "reuters", "nytimes", "guardian"}},
	{ThemeConfetti, []string{"amazon", "ebay", "etsy", "aliexpress", "shop", "store"}},
	{ThemeStars, []string{"github", "gitlab", "stackoverflow", "dev.to", "hackernews"}},
	{ThemeChampagne, []string{"twitter", "x.com", "facebook", "instagram", "linkedin", "reddit"}},
}

// DetectTheme classifies a source URL into a theme by case-insensitive
// substring match against the keyword buckets. Total and
// deterministic; unmatched URLs get DefaultTheme.
func DetectTheme(sourceURL string) string {
	lower := strings.ToLower(sourceURL)
	for _, bucket := range themeBuckets {
		for _, kw := range bucket.keywords {
			if strings.Contains(lower, kw) {
				return bucket.theme
			}
		}
	}
	return DefaultTheme
}

// Enrich derives sharing signals from an extraction result. A nil or
// failed result yields the zero value. On success, each signal is
// independently optional: absent structured data or metadata
// short-circuits to empty fields.
//
// Embedded-player detection inside the page HTML is not performed; the
// video URL comes from Open Graph metadata only.
func Enrich(res *ExtractionResult, sourceURL string) EnrichedSignals {
	if res == nil || !res.Success {
		return EnrichedSignals{}
	}

	var sig EnrichedSignals

	if res.Structured != nil {
		sig.Title = res.Structured.Title
	}

	md := res.Metadata
	sig.Description = metaFirst(md, "og:description", "description")
	sig.OGImage = metaFirst(md, "og:image")
	sig.VideoURL = metaFirst(md, "og:video", "og:video:url")
	sig.Price = detectPrice(md)
	sig.Theme = DetectTheme(sourceURL)

	return sig
}

// metaFirst returns the first non-empty value among keys. A nil map
// yields an empty string.
func metaFirst(md map[string]string, keys ...string) string {
	for _, key := range keys {
		if v := md[key]; v != "" {
			return v
		}
	}
	return ""
}

// detectPrice formats a detected product price as "{currency} {amount}"
// with the currency defaulting to USD.
func detectPrice(md map[string]string) string {
	amount := metaFirst(md, "og:price:amount", "product:price:amount")
	if amount == "" {
		return ""
	}
	currency := metaFirst(md, "og:price:currency", "product:price:currency")
	if currency == "" {
		currency = "USD"
	}
	return currency + " " + amount
}
