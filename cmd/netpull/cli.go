package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/netpull"
)

// Dependencies holds all services and configuration for command
// execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	// OutputDir receives uploaded files and extraction artifacts.
	OutputDir string

	Reader    netpull.ContentReader
	Presenter netpull.ResultPresenter

	// NewExtractor builds the extraction engine for one extract
	// command. Injected so tests can substitute a fake engine.
	NewExtractor func(outputDir string, parser netpull.PageParser, static bool) netpull.Extractor

	// NewParser builds the page parser for one extract command.
	NewParser func(article bool) netpull.PageParser
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Extract ExtractCmd `cmd:"" help:"Extract content from a URL"`
	Dir     DirCmd     `cmd:"" help:"Scan a local directory of documents"`
	File    FileCmd    `cmd:"" help:"Classify a single document file"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URL string `arg:"" optional:"" help:"URL to extract"`

	Browser  string `default:"firefox" enum:"firefox,chrome,webkit" help:"Browser engine"`
	Headless bool   `default:"true" negatable:"" help:"Run the browser headless"`
	Timeout  int    `default:"30" help:"Extraction timeout in seconds (10-60)"`

	Screenshot bool `default:"true" negatable:"" help:"Capture a screenshot"`
	HTML       bool `default:"true" negatable:"" help:"Save the rendered HTML"`
	Images     bool `help:"Extract images"`
	Tables     bool `help:"Extract tables"`
	Forms      bool `help:"Extract forms"`
	Metadata   bool `help:"Extract meta tags"`

	Article bool   `help:"Use article-mode (readability) parsing"`
	Static  bool   `help:"Fetch with plain HTTP instead of a browser"`
	Theme   string `help:"Override the detected share theme"`
	Video   string `help:"Override the detected video URL"`
	Seed    string `help:"Deep-link query string supplying url/browser/headlessMode/timeout"`
}

// DirCmd is the "dir" subcommand.
type DirCmd struct {
	Path string `arg:"" help:"Directory to scan for pdf/md/txt files"`
}

// FileCmd is the "file" subcommand.
type FileCmd struct {
	Path string `arg:"" help:"File to classify (pdf/md/txt)"`
}
