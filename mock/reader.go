package mock

import (
	"context"

	"github.com/fwojciec/netpull"
)

var _ netpull.ContentReader = (*ContentReader)(nil)

// ContentReader is a mock implementation of netpull.ContentReader.
type ContentReader struct {
	ReadDirFn    func(ctx context.Context, dir string) ([]*netpull.LocalFileRecord, error)
	SaveUploadFn func(ctx context.Context, upload *netpull.Upload) (*netpull.LocalFileRecord, error)
}

func (r *ContentReader) ReadDir(ctx context.Context, dir string) ([]*netpull.LocalFileRecord, error) {
	return r.ReadDirFn(ctx, dir)
}

func (r *ContentReader) SaveUpload(ctx context.Context, upload *netpull.Upload) (*netpull.LocalFileRecord, error) {
	return r.SaveUploadFn(ctx, upload)
}
