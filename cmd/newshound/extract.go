package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/newshoundlabs/newshound"
	"golang.org/x/net/html"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	markup, err := deps.Fetcher.FetchOne(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newshound.ErrorMessage(err))
		return err
	}

	doc, err := deps.DOM.Parse(markup, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newshound.ErrorMessage(err))
		return err
	}

	article := deps.Crawler.ResolveArticle(doc)

	if deps.Converter != nil && article.Content.Element != nil {
		var b strings.Builder
		if err := html.Render(&b, article.Content.Element); err == nil {
			if markdown, err := deps.Converter.Convert(b.String()); err == nil {
				article.Markdown = markdown
			}
		}
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(article)
}
