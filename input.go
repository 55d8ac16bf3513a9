package netpull

import (
	"os"
	"path/filepath"
	"strings"
)

// Modality identifies the active input-selection variant.
type Modality string

// Modality constants for InputSelection.
const (
	ModalityURL       Modality = "url"
	ModalityDirectory Modality = "directory"
	ModalityUpload    Modality = "upload"
)

// AllowedExtensions lists the file extensions accepted for directory
// scans and uploads.
var AllowedExtensions = []string{".pdf", ".md", ".txt"}

// InputSelection is a tagged variant over the three input modalities.
// Exactly one variant is active; construct values through the Resolve
// functions so the per-variant invariants hold.
type InputSelection struct {
	Modality Modality

	// URL is set when Modality is ModalityURL.
	URL string

	// Dir is set when Modality is ModalityDirectory. The path exists
	// and is a directory.
	Dir string

	// Upload is set when Modality is ModalityUpload. Its extension is
	// in AllowedExtensions.
	Upload *Upload
}

// Upload holds an uploaded file.
type Upload struct {
	Name string
	Data []byte
	Size int64
}

// ResolveURL resolves the URL modality. The string must be non-empty;
// URL-syntax validation is left to the extraction engine.
func ResolveURL(rawURL string) (InputSelection, error) {
	if strings.TrimSpace(rawURL) == "" {
		return InputSelection{}, Errorf(EINVALID, "please enter a URL")
	}
	return InputSelection{Modality: ModalityURL, URL: rawURL}, nil
}

// ResolveDirectory resolves the local directory modality. The path
// must exist and be a directory. An empty matching-file set is not an
// error at resolution time.
func ResolveDirectory(path string) (InputSelection, error) {
	info, err := os.Stat(path)
	if err != nil {
		return InputSelection{}, Errorf(EINVALID, "directory %q does not exist", path)
	}
	if !info.IsDir() {
		return InputSelection{}, Errorf(EINVALID, "path %q is not a directory", path)
	}
	return InputSelection{Modality: ModalityDirectory, Dir: path}, nil
}

// ResolveUpload resolves the upload modality. The file name must carry
// an allowed extension; size and content are not validated further.
func ResolveUpload(name string, data []byte) (InputSelection, error) {
	if name == "" {
		return InputSelection{}, Errorf(EINVALID, "no file provided")
	}
	if !ExtensionAllowed(filepath.Ext(name)) {
		return InputSelection{}, Errorf(EINVALID, "file type %q is not supported (allowed: pdf, md, txt)", filepath.Ext(name))
	}
	return InputSelection{
		Modality: ModalityUpload,
		Upload: &Upload{
			Name: filepath.Base(name),
			Data: data,
			Size: int64(len(data)),
		},
	}, nil
}

// ExtensionAllowed reports whether ext (including the leading dot) is
// in the allow-list. Matching is case-insensitive.
func ExtensionAllowed(ext string) bool {
	ext = strings.ToLower(ext)
	for _, allowed := range AllowedExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}
