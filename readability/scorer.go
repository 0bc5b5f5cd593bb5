// Package readability provides an alternative newshound.ContentScorer
// backed by go-readability's Arc90-style scoring. Like the trafilatura
// scorer it maps the extracted content back onto the document's own tree
// so the returned locator replays against sibling pages.
package readability

import (
	"bytes"
	"strings"

	"github.com/go-shiori/go-readability"
	"github.com/newshoundlabs/newshound"
	"github.com/newshoundlabs/newshound/htmlquery"
	"golang.org/x/net/html"
)

// Ensure Scorer implements newshound.ContentScorer at compile time.
var _ newshound.ContentScorer = (*Scorer)(nil)

// Scorer locates the article body with go-readability.
type Scorer struct{}

// NewScorer creates a new readability-backed content scorer.
func NewScorer() *Scorer {
	return &Scorer{}
}

// ScoreContent extracts the main content and returns the deepest element
// of the original document containing it, with a text-bearing path. A
// document readability cannot extract from yields a zero reference.
func (s *Scorer) ScoreContent(doc *newshound.Document) newshound.NodeRef {
	if doc == nil || doc.Root == nil {
		return newshound.NodeRef{}
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, doc.Root); err != nil {
		return newshound.NodeRef{}
	}

	article, err := readability.FromReader(&buf, nil)
	if err != nil {
		return newshound.NodeRef{}
	}

	text := htmlquery.InnerTrim(article.TextContent)
	if text == "" {
		return newshound.NodeRef{}
	}

	// Readability rebuilds the content in its own tree; anchor on a
	// snippet of the extracted text to relocate it in ours.
	snippet := text
	if len(snippet) > 60 {
		snippet = snippet[:60]
	}

	host := deepestContaining(doc.Root, snippet)
	if host == nil {
		return newshound.NodeRef{}
	}

	return newshound.NodeRef{
		Element: host,
		Path:    htmlquery.PathTo(host) + "//text()",
		Text:    htmlquery.InnerTrim(innerText(host)),
	}
}

// deepestContaining returns the deepest element whose normalized text
// contains the snippet.
func deepestContaining(root *html.Node, snippet string) *html.Node {
	var best *html.Node
	var visit func(*html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style":
				return
			}
			if strings.Contains(htmlquery.InnerTrim(innerText(n)), snippet) {
				best = n
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(root)
	return best
}

func innerText(n *html.Node) string {
	var b strings.Builder
	var visit func(*html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(n)
	return b.String()
}
