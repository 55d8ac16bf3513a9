package netpull

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// ArtifactBase derives a stable file-name base for artifacts captured
// from a URL: the host plus a content-addressed suffix of the full
// URL. Output-directory writes are append-only by filename; the same
// URL maps to the same names within a session.
func ArtifactBase(rawURL string) string {
	host := "page"
	if u, err := url.Parse(rawURL); err == nil && u.Host != "" {
		host = strings.ReplaceAll(u.Host, ":", "_")
	}
	return fmt.Sprintf("%s_%016x", host, xxhash.Sum64String(rawURL))
}
