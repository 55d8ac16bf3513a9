package http

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"
)

// Keepalive defaults. The companion endpoint is probed on a fixed
// interval to keep its host from suspending an idle service.
const (
	DefaultKeepaliveURL      = "https://glimmer.cards/ping"
	DefaultKeepaliveInterval = 1800 * time.Second
	DefaultKeepaliveTimeout  = 30 * time.Second
)

// Keepalive periodically probes a companion endpoint. It runs at most
// one loop per process lifetime regardless of how many times Start is
// called, shares no state with the extraction pipeline, and treats
// every probe failure as non-fatal: outcomes are logged and the loop
// continues.
type Keepalive struct {
	url      string
	interval time.Duration
	client   *http.Client
	logger   *slog.Logger
	once     sync.Once
}

// KeepaliveOption configures a Keepalive.
type KeepaliveOption func(*Keepalive)

// WithInterval sets the probe interval. Defaults to
// DefaultKeepaliveInterval.
func WithInterval(d time.Duration) KeepaliveOption {
	return func(k *Keepalive) {
		k.interval = d
	}
}

// WithTimeout sets the per-probe request timeout. Defaults to
// DefaultKeepaliveTimeout.
func WithTimeout(d time.Duration) KeepaliveOption {
	return func(k *Keepalive) {
		k.client.Timeout = d
	}
}

// NewKeepalive creates a Keepalive probing url. A nil logger falls
// back to slog.Default().
func NewKeepalive(url string, logger *slog.Logger, opts ...KeepaliveOption) *Keepalive {
	if logger == nil {
		logger = slog.Default()
	}
	k := &Keepalive{
		url:      url,
		interval: DefaultKeepaliveInterval,
		client:   &http.Client{Timeout: DefaultKeepaliveTimeout},
		logger:   logger,
	}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

// Start launches the probe loop on its own goroutine. Repeated calls
// are no-ops; the loop runs until ctx is cancelled.
func (k *Keepalive) Start(ctx context.Context) {
	k.once.Do(func() {
		go k.loop(ctx)
	})
}

func (k *Keepalive) loop(ctx context.Context) {
	ticker := time.NewTicker(k.interval)
	defer ticker.Stop()

	k.probe(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			k.probe(ctx)
		}
	}
}

func (k *Keepalive) probe(ctx context.Context) {
	begin := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, k.url, nil)
	if err != nil {
		k.logger.Warn("keepalive probe failed", "url", k.url, "error", err)
		return
	}

	resp, err := k.client.Do(req)
	if err != nil {
		k.logger.Warn("keepalive probe failed", "url", k.url, "error", err, "duration", time.Since(begin))
		return
	}
	defer resp.Body.Close()

	k.logger.Info("keepalive probe",
		"url", k.url,
		"status", resp.StatusCode,
		"duration", time.Since(begin),
	)
}
