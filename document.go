package newshound

import "golang.org/x/net/html"

// Document is a parsed HTML document together with the URL it came from.
// The document owns all nodes reachable from Root; NodeRef elements are
// only valid for the document that produced them.
type Document struct {
	Root *html.Node
	URL  string
}

// DOM provides parsing and node addressing over HTML markup.
// Implementations hide the XPath/CSS engines behind a narrow surface; a
// nil document or an error on Parse is the sole failure signal the
// extraction core relies on.
type DOM interface {
	// Parse builds a document from raw markup.
	// Returns EUNPARSABLE if the markup cannot produce a tree.
	Parse(markup, url string) (*Document, error)

	// Evaluate replays a path expression against the document and
	// returns a reference per match, in document order. Attribute and
	// text() expressions yield references with a nil Element and the
	// scalar in Text.
	Evaluate(doc *Document, path string) ([]NodeRef, error)

	// Select returns references for all nodes matching a CSS selector,
	// each with its absolute path expression populated.
	Select(doc *Document, selector string) []NodeRef

	// Clean returns a copy of the document with boilerplate removed
	// (scripts, styles, comments, known chrome containers). The input
	// document is left untouched.
	Clean(doc *Document) *Document

	// CandidateNodes returns the text-bearing nodes worth examining
	// during content scoring, in document order.
	CandidateNodes(doc *Document) []NodeRef
}
