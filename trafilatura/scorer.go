// Package trafilatura provides an alternative newshound.ContentScorer
// backed by go-trafilatura's boilerplate removal. It trades the
// stop-word heuristics for trafilatura's precision/recall balance while
// keeping the same replayable-locator contract.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/markusmobius/go-trafilatura"
	"github.com/newshoundlabs/newshound"
	"github.com/newshoundlabs/newshound/htmlquery"
	"golang.org/x/net/html"
)

// Ensure Scorer implements newshound.ContentScorer at compile time.
var _ newshound.ContentScorer = (*Scorer)(nil)

// Scorer locates the article body with trafilatura and maps the result
// back onto the document's own tree so the returned locator replays.
type Scorer struct{}

// NewScorer creates a new trafilatura-backed content scorer.
func NewScorer() *Scorer {
	return &Scorer{}
}

// ScoreContent extracts the main content and returns the deepest element
// of the original document containing it, with a text-bearing path. A
// document trafilatura cannot extract from yields a zero reference.
func (s *Scorer) ScoreContent(doc *newshound.Document) newshound.NodeRef {
	if doc == nil || doc.Root == nil {
		return newshound.NodeRef{}
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, doc.Root); err != nil {
		return newshound.NodeRef{}
	}

	result, err := trafilatura.Extract(&buf, trafilatura.Options{EnableFallback: true})
	if err != nil || result == nil {
		return newshound.NodeRef{}
	}

	text := htmlquery.InnerTrim(result.ContentText)
	if text == "" {
		return newshound.NodeRef{}
	}

	// Trafilatura builds its own output tree, so its nodes carry no
	// position in ours. Anchor on a snippet of the extracted text and
	// find the deepest original element that contains it.
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
