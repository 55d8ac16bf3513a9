package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/netpull"
	main "github.com/fwojciec/netpull/cmd/netpull"
	"github.com/fwojciec/netpull/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("saves and presents a supported file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "notes.md")
		require.NoError(t, os.WriteFile(path, []byte("# Notes"), 0644))

		var gotUpload *netpull.Upload
		reader := &mock.ContentReader{
			SaveUploadFn: func(_ context.Context, upload *netpull.Upload) (*netpull.LocalFileRecord, error) {
				gotUpload = upload
				return &netpull.LocalFileRecord{Path: path, Extension: ".md", Content: "# Notes"}, nil
			},
		}

		var gotRecords []*netpull.LocalFileRecord
		presenter := &mock.Presenter{
			PresentLocalFn: func(records []*netpull.LocalFileRecord) error {
				gotRecords = records
				return nil
			},
		}

		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    &bytes.Buffer{},
			Stderr:    &bytes.Buffer{},
			Reader:    reader,
			Presenter: presenter,
		}

		cmd := &main.FileCmd{Path: path}

		require.NoError(t, cmd.Run(deps))
		require.NotNil(t, gotUpload)
		assert.Equal(t, "notes.md", gotUpload.Name)
		assert.Equal(t, []byte("# Notes"), gotUpload.Data)
		require.Len(t, gotRecords, 1)
	})

	t.Run("returns error for an unsupported extension", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "binary.exe")
		require.NoError(t, os.WriteFile(path, []byte{0x4d, 0x5a}, 0644))

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    &bytes.Buffer{},
			Stderr:    stderr,
			Reader:    &mock.ContentReader{},
			Presenter: &mock.Presenter{},
		}

		cmd := &main.FileCmd{Path: path}

		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Equal(t, netpull.EINVALID, netpull.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error:")
	})

	t.Run("returns error for a missing file", func(t *testing.T) {
		t.Parallel()

		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    &bytes.Buffer{},
			Stderr:    &bytes.Buffer{},
			Reader:    &mock.ContentReader{},
			Presenter: &mock.Presenter{},
		}

		cmd := &main.FileCmd{Path: filepath.Join(t.TempDir(), "missing.md")}

		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Equal(t, netpull.ENOTFOUND, netpull.ErrorCode(err))
	})
}
