// Package netpull provides a single-session web extraction pipeline.
// It resolves one of three input modalities (a remote URL, a local
// directory of documents, or an uploaded file) into a normalized
// extraction result, then enriches successful URL extractions into
// outbound deep links for the glimmer.cards greeting and funnel
// services.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., rod/,
// goquery/, fs/).
package netpull
