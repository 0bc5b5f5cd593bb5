package newshound

import (
	"encoding/json"

	"golang.org/x/net/html"
)

// NodeRef pairs a live DOM node with the path expression that can relocate
// the equivalent node in any document of the same structure, plus a cached
// text snapshot.
//
// The value has two validity scopes: Element and Text are only meaningful
// for the document that produced them; Path is the only field that may be
// trusted across document instances, and is the sole payload a template
// carries between documents.
type NodeRef struct {
	// Element is the live node within its owning document. It may be nil
	// for references produced by evaluating a query expression that
	// matched a raw scalar (e.g. an attribute value).
	Element *html.Node

	// Path is a replayable expression (XPath) locating the node. An
	// attribute-valued reference carries a "/@attr" suffix; a text-bearing
	// reference carries a "//text()" suffix.
	Path string

	// Text is the node's normalized text at resolution time.
	Text string
}

// Zero reports whether the reference carries neither a node, a path, nor
// text.
func (r *NodeRef) Zero() bool {
	return r.Element == nil && r.Path == "" && r.Text == ""
}

// MarshalJSON emits the path and text only. The live element is
// process-local and its sibling pointers would cycle; the serialized form
// is exactly what a template carries between documents.
func (r NodeRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Path string `json:"path,omitempty"`
		Text string `json:"text,omitempty"`
	}{Path: r.Path, Text: r.Text})
}

// Clear detaches the reference from its document by nulling all three
// fields. Used when the underlying node is removed from the tree.
func (r *NodeRef) Clear() {
	r.Element = nil
	r.Path = ""
	r.Text = ""
}

// TagSet holds the tag references resolved from a document.
//
// A nil Refs slice means tag resolution was never attempted (the document
// was structurally empty); a non-nil empty slice means both tag selectors
// ran and matched nothing. NoTags is the canonical not-attempted value.
type TagSet struct {
	Refs []NodeRef `json:"refs,omitempty"`
}

// NoTags is the sentinel returned when a document has no elements to
// inspect, distinguishable from an attempted resolution with no matches.
var NoTags = TagSet{}

// Attempted reports whether tag resolution actually ran against the
// document.
func (t TagSet) Attempted() bool {
	return t.Refs != nil
}

// Paths returns the unique path expressions in the set, preserving
// first-seen order.
func (t TagSet) Paths() []string {
	seen := make(map[string]bool, len(t.Refs))
	var paths []string
	for _, ref := range t.Refs {
		if ref.Path == "" || seen[ref.Path] {
			continue
		}
		seen[ref.Path] = true
		paths = append(paths, ref.Path)
	}
	return paths
}
