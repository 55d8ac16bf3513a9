// Package fs provides file-system based content reading for the
// directory and upload input modalities.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/netpull"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds concurrent file reads during a directory
// scan.
const DefaultConcurrency = 8

// Ensure Reader implements netpull.ContentReader at compile time.
var _ netpull.ContentReader = (*Reader)(nil)

// Reader reads and classifies local files. Text and markdown files are
// read fully as UTF-8 text; PDFs are represented by a descriptor only.
type Reader struct {
	outputDir   string
	concurrency int
}

// Option configures a Reader.
type Option func(*Reader)

// WithConcurrency sets the concurrent read limit for directory scans.
// Defaults to DefaultConcurrency if not specified.
func WithConcurrency(n int) Option {
	return func(r *Reader) {
		r.concurrency = n
	}
}

// NewReader creates a Reader that persists uploads under outputDir.
func NewReader(outputDir string, opts ...Option) *Reader {
	r := &Reader{
		outputDir:   outputDir,
		concurrency: DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ReadDir enumerates immediate entries of dir with allowed extensions
// and returns one record per file, in directory order. Files are read
// concurrently with a bounded limit. A directory with zero matching
// files yields an empty slice.
func (r *Reader) ReadDir(ctx context.Context, dir string) ([]*netpull.LocalFileRecord, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, netpull.Errorf(netpull.ENOTFOUND, "cannot read directory %q: %v", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if netpull.ExtensionAllowed(filepath.Ext(entry.Name())) {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}

	records := make([]*netpull.LocalFileRecord, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rec, err := classify(path)
			if err != nil {
				return err
			}
			records[i] = rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return records, nil
}

// SaveUpload persists the uploaded file under the output directory
// using its original name, then classifies it the same way as a
// directory entry. The output directory is created if absent, never
// cleared.
func (r *Reader) SaveUpload(ctx context.Context, upload *netpull.Upload) (*netpull.LocalFileRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if upload == nil {
		return nil, netpull.Errorf(netpull.EINVALID, "no file provided")
	}

	if err := os.MkdirAll(r.outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	path := filepath.Join(r.outputDir, filepath.Base(upload.Name))
	if err := os.WriteFile(path, upload.Data, 0644); err != nil {
		return nil, fmt.Errorf("saving upload: %w", err)
	}

	return classify(path)
}

// classify reads a file and builds its record.
func classify(path string) (*netpull.LocalFileRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	rec := &netpull.LocalFileRecord{
		Path:        path,
		Extension:   ext,
		SizeBytes:   int64(len(data)),
		ContentHash: fmt.Sprintf("%016x", xxhash.Sum64(data)),
	}

	if ext == ".pdf" {
		rec.Content = fmt.Sprintf("PDF document: %s (%d bytes)", filepath.Base(path), len(data))
	} else {
		rec.Content = string(data)
	}

	return rec, nil
}
