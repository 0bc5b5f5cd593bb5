package htmlquery

import (
	"regexp"
	"strings"

	"github.com/newshoundlabs/newshound"
	"golang.org/x/net/html"
)

// chromeRE matches id/class/name values of containers that are almost
// always site chrome rather than article content.
var chromeRE = regexp.MustCompile(`(?i)` +
	`caption|combx|comment\b|community|disqus|extra|foot|header|menu|` +
	`remark|rss|shoutbox|sidebar|sponsor|ad-break|agegate|pagination|` +
	`pager|popup|breadcrumbs|social|mediaarticlerelated|menucontainer|` +
	`navbar|subscribe|storytopbar-bucket|utility-bar|inline-share-tools`)

// droppedTags are removed outright during cleaning.
var droppedTags = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
}

// Clean returns a deep copy of the document with boilerplate removed:
// comments, scripts, styles and elements whose id/class/name mark them as
// chrome. The input document is left untouched so that field locators
// resolved before cleaning stay valid.
func (d *DOM) Clean(doc *newshound.Document) *newshound.Document {
	if doc == nil || doc.Root == nil {
		return doc
	}

	root := cloneTree(doc.Root)
	clean(root)
	return &newshound.Document{Root: root, URL: doc.URL}
}

// clean prunes unwanted nodes beneath n in place.
func clean(n *html.Node) {
	var next *html.Node
	for c := n.FirstChild; c != nil; c = next {
		next = c.NextSibling
		if removable(c) {
			n.RemoveChild(c)
			continue
		}
		clean(c)
	}
}

func removable(n *html.Node) bool {
	switch n.Type {
	case html.CommentNode:
		return true
	case html.ElementNode:
		if droppedTags[n.Data] {
			return true
		}
		// The html element itself commonly carries chrome-sounding
		// classes on themed sites; never drop structural tags.
		switch n.Data {
		case "html", "head", "body":
			return false
		}
		marker := strings.Join([]string{Attr(n, "id"), Attr(n, "class"), Attr(n, "name")}, " ")
		return strings.TrimSpace(marker) != "" && chromeRE.MatchString(marker)
	default:
		return false
	}
}

// cloneTree deep-copies a node and its descendants. Parent/sibling links
// of the copy are fully rebuilt; attributes are copied by value.
func cloneTree(n *html.Node) *html.Node {
	clone := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
	}
	if len(n.Attr) > 0 {
		clone.Attr = make([]html.Attribute, len(n.Attr))
		copy(clone.Attr, n.Attr)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		clone.AppendChild(cloneTree(c))
	}
	return clone
}
