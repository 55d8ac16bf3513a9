package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/netpull"
	"github.com/fwojciec/netpull/fs"
	"github.com/fwojciec/netpull/goquery"
	"github.com/fwojciec/netpull/htmltomarkdown"
	nethttp "github.com/fwojciec/netpull/http"
	"github.com/fwojciec/netpull/readability"
	"github.com/fwojciec/netpull/rod"
	netslog "github.com/fwojciec/netpull/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// OutputDir receives uploads and extraction artifacts. Set before
	// calling Run().
	OutputDir string

	// Keepalive for the glimmer.cards companion service. Started once
	// per process; repeated Run calls are no-ops on it.
	Keepalive *nethttp.Keepalive
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		OutputDir: defaultOutputDir(),
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	logger := slog.New(slog.NewTextHandler(stderr, nil))

	// Start the companion keepalive. It shares no state with the
	// pipeline; failures are logged and never surface here.
	if os.Getenv("NETPULL_NO_KEEPALIVE") == "" {
		if m.Keepalive == nil {
			m.Keepalive = nethttp.NewKeepalive(nethttp.DefaultKeepaliveURL, logger)
		}
		m.Keepalive.Start(ctx)
	}

	deps := &Dependencies{
		Ctx:       ctx,
		Stdout:    stdout,
		Stderr:    stderr,
		Logger:    logger,
		OutputDir: m.OutputDir,
		Reader:    fs.NewReader(m.OutputDir),
		Presenter: NewPresenter(stdout, htmltomarkdown.NewConverter()),
		NewExtractor: func(outputDir string, parser netpull.PageParser, static bool) netpull.Extractor {
			var e netpull.Extractor
			if static {
				e = nethttp.NewExtractor(outputDir, parser)
			} else {
				e = rod.NewExtractor(outputDir, parser)
			}
			return netslog.NewLoggingExtractor(e, logger)
		},
		NewParser: func(article bool) netpull.PageParser {
			if article {
				return readability.NewParser()
			}
			return goquery.NewParser()
		},
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("netpull"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'netpull --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	return kongCtx.Run(deps)
}

func defaultOutputDir() string {
	if dir := os.Getenv("NETPULL_OUTPUT"); dir != "" {
		return dir
	}
	return "netpull_output"
}
