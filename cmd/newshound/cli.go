package main

import (
	"context"
	"io"
	"time"

	"github.com/newshoundlabs/newshound"
	"github.com/newshoundlabs/newshound/crawl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	DOM       newshound.DOM
	Fetcher   newshound.Fetcher
	Resolver  newshound.Resolver
	Scorer    newshound.ContentScorer
	Templates newshound.TemplateEngine
	Crawler   *crawl.Crawler
	Converter newshound.Converter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Process ProcessCmd `cmd:"" help:"Crawl a news site and extract its articles, grouped by section"`
	Extract ExtractCmd `cmd:"" help:"Extract a single article page"`

	Verbose bool `short:"v" help:"Log fetch and template activity to stderr"`
}

// fetchOptions are the flags shared by both commands.
type fetchOptions struct {
	Language    string
	Timeout     time.Duration
	Concurrency int
	Rod         bool
	Markdown    bool
}

// ProcessCmd is the "process" subcommand.
type ProcessCmd struct {
	URL          string        `arg:"" help:"News site homepage URL"`
	Language     string        `short:"l" default:"en" help:"Stop-word language for content scoring"`
	Timeout      time.Duration `short:"t" default:"10s" help:"Per-fetch timeout"`
	Concurrency  int           `short:"c" default:"10" help:"Concurrent fetch limit"`
	SkipSiblings bool          `help:"Drop siblings on template mismatch instead of re-resolving them"`
	Rod          bool          `help:"Fetch with a headless browser (requires Chrome/Chromium)"`
	Markdown     bool          `short:"m" help:"Render article bodies to Markdown"`
	RPS          float64       `default:"1" help:"Per-domain requests per second"`
}

func (c *ProcessCmd) options() fetchOptions {
	return fetchOptions{
		Language:    c.Language,
		Timeout:     c.Timeout,
		Concurrency: c.Concurrency,
		Rod:         c.Rod,
		Markdown:    c.Markdown,
	}
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URL      string        `arg:"" help:"Article page URL"`
	Language string        `short:"l" default:"en" help:"Stop-word language for content scoring"`
	Timeout  time.Duration `short:"t" default:"10s" help:"Fetch timeout"`
	Rod      bool          `help:"Fetch with a headless browser (requires Chrome/Chromium)"`
	Markdown bool          `short:"m" help:"Render the article body to Markdown"`
}

func (c *ExtractCmd) options() fetchOptions {
	return fetchOptions{
		Language: c.Language,
		Timeout:  c.Timeout,
		Rod:      c.Rod,
		Markdown: c.Markdown,
	}
}
