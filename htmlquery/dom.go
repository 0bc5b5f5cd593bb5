// Package htmlquery implements the newshound.DOM provider on top of
// antchfx/htmlquery (XPath evaluation) and PuerkitoBio/goquery (CSS
// selection), both operating on the same x/net/html node tree.
package htmlquery

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/antchfx/htmlquery"
	"github.com/newshoundlabs/newshound"
	"golang.org/x/net/html"
)

// Ensure DOM implements newshound.DOM at compile time.
var _ newshound.DOM = (*DOM)(nil)

// DOM parses markup and resolves path expressions against the resulting
// tree. The zero value is ready to use.
type DOM struct{}

// NewDOM creates a new DOM provider.
func NewDOM() *DOM {
	return &DOM{}
}

// Parse builds a document from raw markup.
func (d *DOM) Parse(markup, url string) (*newshound.Document, error) {
	if strings.TrimSpace(markup) == "" {
		return nil, newshound.Errorf(newshound.EUNPARSABLE, "empty markup for %s", url)
	}

	root, err := htmlquery.Parse(strings.NewReader(markup))
	if err != nil {
		return nil, newshound.Errorf(newshound.EUNPARSABLE, "parse %s: %v", url, err)
	}

	return &newshound.Document{Root: root, URL: url}, nil
}

// Evaluate replays a path expression against the document. Every returned
// reference carries the expression itself as its path, mirroring how the
// reference will be replayed against sibling documents.
func (d *DOM) Evaluate(doc *newshound.Document, path string) ([]newshound.NodeRef, error) {
	if doc == nil || doc.Root == nil {
		return nil, newshound.Errorf(newshound.EINVALID, "evaluate against nil document")
	}

	nodes, err := htmlquery.QueryAll(doc.Root, path)
	if err != nil {
		return nil, newshound.Errorf(newshound.EINVALID, "bad path expression %q: %v", path, err)
	}

	scalar := isScalarPath(path)
	refs := make([]newshound.NodeRef, 0, len(nodes))
	for _, n := range nodes {
		ref := newshound.NodeRef{Path: path}
		if scalar {
			// Attribute and text() matches come back as synthetic
			// nodes; only the scalar value is usable.
			ref.Text = strings.TrimSpace(htmlquery.InnerText(n))
		} else {
			ref.Element = n
			ref.Text = InnerTrim(htmlquery.InnerText(n))
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

// Select returns references for all nodes matching a CSS selector, each
// addressed by its absolute path expression.
func (d *DOM) Select(doc *newshound.Document, selector string) []newshound.NodeRef {
	if doc == nil || doc.Root == nil {
		return nil
	}

	var refs []newshound.NodeRef
	gq := goquery.NewDocumentFromNode(doc.Root)
	gq.Find(selector).Each(func(_ int, sel *goquery.Selection) {
		for _, n := range sel.Nodes {
			refs = append(refs, newshound.NodeRef{
				Element: n,
				Path:    PathTo(n),
				Text:    InnerTrim(htmlquery.InnerText(n)),
			})
		}
	})
	return refs
}

// CandidateNodes returns the text-bearing nodes worth examining during
// content scoring: p, pre and td elements in document order.
func (d *DOM) CandidateNodes(doc *newshound.Document) []newshound.NodeRef {
	if doc == nil || doc.Root == nil {
		return nil
	}

	var refs []newshound.NodeRef
	walk(doc.Root, func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return true
		}
		switch n.Data {
		case "p", "pre", "td":
			refs = append(refs, newshound.NodeRef{
				Element: n,
				Path:    PathTo(n),
				Text:    InnerTrim(htmlquery.InnerText(n)),
			})
		}
		return true
	})
	return refs
}

// PathTo builds an absolute path expression for an element node, with
// positional predicates only where a tag repeats among its siblings
// (e.g. /html/body/div[2]/p). The expression relocates the equivalent
// node in any document sharing the same shape.
func PathTo(n *html.Node) string {
	if n == nil || n.Type != html.ElementNode {
		return ""
	}

	var segments []string
	for cur := n; cur != nil && cur.Type == html.ElementNode; cur = cur.Parent {
		segments = append(segments, segment(cur))
	}

	// Reverse into document order.
	var b strings.Builder
	for i := len(segments) - 1; i >= 0; i-- {
		b.WriteString("/")
		b.WriteString(segments[i])
	}
	return b.String()
}

// segment renders one path step, adding a positional predicate when the
// element's tag is not unique among its siblings.
func segment(n *html.Node) string {
	index, total := 1, 1
	for sib := n.PrevSibling; sib != nil; sib = sib.PrevSibling {
		if sib.Type == html.ElementNode && sib.Data == n.Data {
			index++
			total++
		}
	}
	for sib := n.NextSibling; sib != nil; sib = sib.NextSibling {
		if sib.Type == html.ElementNode && sib.Data == n.Data {
			total++
		}
	}
	if total == 1 {
		return n.Data
	}
	return n.Data + "[" + strconv.Itoa(index) + "]"
}

// Attr returns the value of the named attribute, or "".
func Attr(n *html.Node, name string) string {
	if n == nil {
		return ""
	}
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

// InnerTrim collapses all runs of whitespace in s to single spaces and
// trims the ends.
func InnerTrim(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// isScalarPath reports whether the expression selects attribute values or
// text nodes rather than elements.
func isScalarPath(path string) bool {
	return strings.Contains(path, "/@") || strings.HasSuffix(path, "text()")
}

// walk visits n and its descendants in document order. The visitor
// returns false to prune a subtree.
func walk(n *html.Node, visit func(*html.Node) bool) {
	if !visit(n) {
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, visit)
	}
}
