package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/newshoundlabs/newshound"
	"github.com/newshoundlabs/newshound/crawl"
	"github.com/newshoundlabs/newshound/extract"
	"github.com/newshoundlabs/newshound/gofeed"
	"github.com/newshoundlabs/newshound/htmlquery"
	"github.com/newshoundlabs/newshound/htmltomarkdown"
	nshttp "github.com/newshoundlabs/newshound/http"
	"github.com/newshoundlabs/newshound/rod"
	nsslog "github.com/newshoundlabs/newshound/slog"
	"github.com/newshoundlabs/newshound/stopwords"
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
	// Fetcher override for end-to-end testing. When nil, Run wires an
	// HTTP or browser fetcher from the command flags.
	Fetcher newshound.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("newshound"),
		kong.Description("Extract structured articles from news sites."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'newshound --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	var opts fetchOptions
	switch cmd {
	case "process":
		opts = cli.Process.options()
	case "extract":
		opts = cli.Extract.options()
	}

	config := newshound.Config{
		Language:     opts.Language,
		FetchTimeout: opts.Timeout,
		Concurrency:  opts.Concurrency,
	}
	if cli.Process.SkipSiblings {
		config.OnMismatch = newshound.SiblingSkip
	}

	var logger *slog.Logger
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	fetcher := m.Fetcher
	if fetcher == nil {
		if opts.Rod {
			browserFetcher, err := rod.NewFetcher(rod.WithUserAgent(config.UserAgentOrDefault()))
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			fetcher = browserFetcher
		} else {
			fetcher = nshttp.NewFetcher(
				nshttp.WithTimeout(config.FetchTimeoutOrDefault()),
				nshttp.WithConcurrency(config.ConcurrencyOrDefault()),
			)
		}
		defer fetcher.Close()
	}
	if logger != nil {
		fetcher = nsslog.NewLoggingFetcher(fetcher, logger)
	}

	dom := htmlquery.NewDOM()
	analyzer := stopwords.NewAnalyzer(config.LanguageOrDefault())

	deps.DOM = dom
	deps.Fetcher = fetcher
	deps.Resolver = extract.NewResolver(dom, config)
	deps.Scorer = extract.NewScorer(dom, analyzer)
	deps.Templates = extract.NewEngine(dom)
	if logger != nil {
		deps.Templates = nsslog.NewLoggingTemplateEngine(deps.Templates, logger)
	}
	if opts.Markdown {
		deps.Converter = htmltomarkdown.NewConverter()
	}

	sitemaps := newshound.SitemapService(nshttp.NewSitemapService(nil))
	if logger != nil {
		sitemaps = nsslog.NewLoggingSitemapService(sitemaps, logger)
	}
	rps := cli.Process.RPS
	if rps <= 0 {
		rps = 1
	}
	deps.Crawler = &crawl.Crawler{
		DOM:         dom,
		Fetcher:     fetcher,
		Resolver:    deps.Resolver,
		Scorer:      deps.Scorer,
		Templates:   deps.Templates,
		Feeds:       gofeed.NewParser(),
		Sitemaps:    sitemaps,
		Converter:   deps.Converter,
		RateLimiter: crawl.NewDomainLimiter(rps),
		Config:      config,
	}

	return kongCtx.Run(deps)
}
