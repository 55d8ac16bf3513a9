package netpull

// ResultPresenter renders pipeline outcomes. The core pipeline only
// decides what to compute and what to pass here; rendering is an
// external capability.
type ResultPresenter interface {
	// PresentExtraction renders a successful extraction together with
	// its enrichment and outbound links. A missing artifact file is
	// reported per-artifact and must not abort rendering of the
	// others.
	PresentExtraction(res *ExtractionResult, sig EnrichedSignals, links *OutboundLinks) error

	// PresentLocal renders the records produced by a directory or
	// upload input.
	PresentLocal(records []*LocalFileRecord) error

	// PresentFailure reports a validation or extraction failure with a
	// human-readable reason.
	PresentFailure(reason string) error
}
