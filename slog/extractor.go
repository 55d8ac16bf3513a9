// Package slog provides logging decorators for netpull interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/netpull"
	"github.com/google/uuid"
)

// Ensure LoggingExtractor implements netpull.Extractor.
var _ netpull.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with structured logging. Each
// extraction gets a request ID correlating its start and finish
// entries.
type LoggingExtractor struct {
	next   netpull.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next netpull.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor, logging the outcome.
func (e *LoggingExtractor) Extract(ctx context.Context, url string, cfg netpull.BrowserConfig, opts netpull.ExtractionOptions) (*netpull.ExtractionResult, error) {
	requestID := uuid.NewString()
	begin := time.Now()

	e.logger.Info("extraction started",
		"request_id", requestID,
		"url", url,
		"engine", string(cfg.Engine),
		"headless", cfg.Headless,
		"timeout_ms", cfg.TimeoutMS,
	)

	res, err := e.next.Extract(ctx, url, cfg, opts)

	switch {
	case err != nil:
		e.logger.Error("extraction errored",
			"request_id", requestID,
			"url", url,
			"error", err,
			"duration", time.Since(begin),
		)
	case !res.Success:
		e.logger.Warn("extraction failed",
			"request_id", requestID,
			"url", url,
			"reason", res.Error,
			"duration", time.Since(begin),
		)
	default:
		e.logger.Info("extraction finished",
			"request_id", requestID,
			"url", url,
			"duration", time.Since(begin),
		)
	}

	return res, err
}

// Close delegates to the wrapped extractor.
func (e *LoggingExtractor) Close() error {
	return e.next.Close()
}
