package netpull_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/netpull"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveURL(t *testing.T) {
	t.Parallel()

	t.Run("accepts any non-empty string", func(t *testing.T) {
		t.Parallel()

		sel, err := netpull.ResolveURL("https://example.com")

		require.NoError(t, err)
		assert.Equal(t, netpull.ModalityURL, sel.Modality)
		assert.Equal(t, "https://example.com", sel.URL)
	})

	t.Run("accepts malformed URLs (engine is the authority)", func(t *testing.T) {
		t.Parallel()

		sel, err := netpull.ResolveURL("not a url")

		require.NoError(t, err)
		assert.Equal(t, "not a url", sel.URL)
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		_, err := netpull.ResolveURL("   ")

		assert.Equal(t, netpull.EINVALID, netpull.ErrorCode(err))
		assert.NotEmpty(t, netpull.ErrorMessage(err))
	})
}

func TestResolveDirectory(t *testing.T) {
	t.Parallel()

	t.Run("accepts an existing directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		sel, err := netpull.ResolveDirectory(dir)

		require.NoError(t, err)
		assert.Equal(t, netpull.ModalityDirectory, sel.Modality)
		assert.Equal(t, dir, sel.Dir)
	})

	t.Run("rejects a missing path", func(t *testing.T) {
		t.Parallel()

		_, err := netpull.ResolveDirectory(filepath.Join(t.TempDir(), "missing"))

		assert.Equal(t, netpull.EINVALID, netpull.ErrorCode(err))
	})

	t.Run("rejects a regular file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "file.txt")
		require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

		_, err := netpull.ResolveDirectory(path)

		assert.Equal(t, netpull.EINVALID, netpull.ErrorCode(err))
	})
}

func TestResolveUpload(t *testing.T) {
	t.Parallel()

	t.Run("accepts allowed extensions", func(t *testing.T) {
		t.Parallel()

		for _, name := range []string{"notes.md", "notes.txt", "notes.pdf", "NOTES.PDF"} {
			sel, err := netpull.ResolveUpload(name, []byte("hello"))

			require.NoError(t, err, name)
			assert.Equal(t, netpull.ModalityUpload, sel.Modality)
			require.NotNil(t, sel.Upload)
			assert.Equal(t, int64(5), sel.Upload.Size)
		}
	})

	t.Run("rejects disallowed extensions", func(t *testing.T) {
		t.Parallel()

		_, err := netpull.ResolveUpload("malware.exe", nil)

		assert.Equal(t, netpull.EINVALID, netpull.ErrorCode(err))
	})

	t.Run("rejects missing file", func(t *testing.T) {
		t.Parallel()

		_, err := netpull.ResolveUpload("", nil)

		assert.Equal(t, netpull.EINVALID, netpull.ErrorCode(err))
	})

	t.Run("strips directory components from the name", func(t *testing.T) {
		t.Parallel()

		sel, err := netpull.ResolveUpload("some/dir/notes.md", []byte("x"))

		require.NoError(t, err)
		assert.Equal(t, "notes.md", sel.Upload.Name)
	})
}
