package netpull

import "context"

// LocalFileRecord represents one classified file from a directory scan
// or upload. Records live for a single render cycle and are never
// persisted across actions.
type LocalFileRecord struct {
	Path      string
	Extension string
	SizeBytes int64

	// Content is the full text for markdown and plain-text files. For
	// PDFs it holds a size/name descriptor only; no PDF parsing is
	// performed.
	Content string

	// ContentHash is an xxhash digest of the file bytes.
	ContentHash string
}

// ContentReader reads and classifies local content for the directory
// and upload modalities.
type ContentReader interface {
	// ReadDir enumerates immediate (non-recursive) entries of dir with
	// allowed extensions and returns one record per file. A directory
	// with zero matching files yields an empty slice, not an error.
	ReadDir(ctx context.Context, dir string) ([]*LocalFileRecord, error)

	// SaveUpload persists the uploaded file under the output directory
	// using its original name, then classifies it the same way.
	SaveUpload(ctx context.Context, upload *Upload) (*LocalFileRecord, error)
}
