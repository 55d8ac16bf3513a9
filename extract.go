package netpull

import "context"

// Engine identifies the browser engine requested for extraction.
type Engine string

// Engine constants for BrowserConfig.
const (
	EngineFirefox Engine = "firefox"
	EngineChrome  Engine = "chrome"
	EngineWebKit  Engine = "webkit"
)

// ParseEngine parses a browser engine name, falling back to
// EngineFirefox for unknown values.
func ParseEngine(s string) Engine {
	switch Engine(s) {
	case EngineFirefox, EngineChrome, EngineWebKit:
		return Engine(s)
	}
	return EngineFirefox
}

// BrowserConfig configures the browser used for a single extraction
// call. It is constructed fresh per call and never persisted.
type BrowserConfig struct {
	Engine    Engine
	Headless  bool
	TimeoutMS int
}

// NewBrowserConfig builds a BrowserConfig from user-facing units. The
// timeout is given in seconds and converted to the engine's native
// millisecond unit. The [10,60] second domain is clamped by the input
// surface, not re-validated here.
func NewBrowserConfig(engine Engine, headless bool, timeoutSec int) BrowserConfig {
	return BrowserConfig{
		Engine:    engine,
		Headless:  headless,
		TimeoutMS: timeoutSec * 1000,
	}
}

// ExtractionOptions selects which artifact kinds an extraction should
// produce. Every combination, including none, is legal.
type ExtractionOptions struct {
	Screenshot bool
	HTML       bool
	Images     bool
	Tables     bool
	Forms      bool
	Metadata   bool
}

// StructuredData holds the structured content extracted from a page.
type StructuredData struct {
	Title      string   `json:"title"`
	Headings   []string `json:"headings,omitempty"`
	Paragraphs []string `json:"paragraphs"`
	Links      []string `json:"links,omitempty"`
}

// Image describes an image found on a page.
type Image struct {
	Src string `json:"src"`
	Alt string `json:"alt,omitempty"`
}

// Table describes a table found on a page.
type Table struct {
	Headers []string   `json:"headers,omitempty"`
	Rows    [][]string `json:"rows"`
}

// FormField describes a single input within a form.
type FormField struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Form describes a form found on a page.
type Form struct {
	Action string      `json:"action,omitempty"`
	Method string      `json:"method,omitempty"`
	Fields []FormField `json:"fields,omitempty"`
}

// ExtractionResult is the normalized outcome of one extraction call.
// Artifact fields are only populated for the kinds requested in
// ExtractionOptions. When Success is false, Error is set and all
// artifact fields are absent; callers must not read artifact paths in
// that case.
type ExtractionResult struct {
	Success        bool              `json:"success"`
	Error          string            `json:"error,omitempty"`
	ScreenshotPath string            `json:"screenshotPath,omitempty"`
	HTMLPath       string            `json:"htmlPath,omitempty"`
	Structured     *StructuredData   `json:"structuredData,omitempty"`
	Images         []Image           `json:"images,omitempty"`
	Tables         []Table           `json:"tables,omitempty"`
	Forms          []Form            `json:"forms,omitempty"`
	Metadata       map[string]string `json:"metadata,omitempty"`
}

// FailedResult builds an ExtractionResult for a failed call.
func FailedResult(msg string) *ExtractionResult {
	return &ExtractionResult{Success: false, Error: msg}
}

// Extractor drives a browser (or plain HTTP) to fetch a page and
// capture the requested artifacts. Implementations write file
// artifacts (screenshot, HTML) under their configured output
// directory.
type Extractor interface {
	// Extract fetches the URL and returns the requested artifacts.
	// The context controls cancellation in addition to the timeout
	// requested by cfg.
	Extract(ctx context.Context, url string, cfg BrowserConfig, opts ExtractionOptions) (*ExtractionResult, error)

	// Close releases browser resources. Must be called when the
	// Extractor is no longer needed.
	Close() error
}

// ParsedPage holds the in-memory artifacts parsed from rendered HTML.
type ParsedPage struct {
	Structured *StructuredData
	Images     []Image
	Tables     []Table
	Forms      []Form
	Metadata   map[string]string
}

// PageParser turns rendered HTML into the artifact kinds selected in
// opts. Unselected kinds are left nil.
type PageParser interface {
	Parse(html string, opts ExtractionOptions) (*ParsedPage, error)
}
