package extract

import (
	"regexp"
	"strings"

	"github.com/newshoundlabs/newshound"
	"github.com/newshoundlabs/newshound/htmlquery"
)

// Author-bearing attribute names and the marker values probed within
// them. The cross-product is scanned in this order, matching values
// case-insensitively as substrings.
var (
	authorAttrs  = []string{"name", "rel", "itemprop", "class", "id"}
	authorValues = []string{"author", "byline", "dc.creator"}
)

var (
	// htmlRemnantRE removes markup fragments that survive inside
	// byline text.
	htmlRemnantRE = regexp.MustCompile(`<[^<]+?>`)

	// bylineMarkerRE strips a leading "by:" / "from:" statement.
	bylineMarkerRE = regexp.MustCompile(`(?i)by[:\s]|from[:\s]`)

	// nameTokenRE chunks a byline into tokens on anything that is not a
	// word character, apostrophe, hyphen or period. Single-character
	// split on purpose: runs of delimiters produce empty tokens, which
	// close the name being accumulated.
	nameTokenRE = regexp.MustCompile(`[^\w'.\-]`)

	digitRE = regexp.MustCompile(`\d`)
)

// ResolveAuthors scans byline-marked elements and returns the source
// reference of each detected name, deduplicated by case-insensitive text
// equality in first-seen order.
func (r *Resolver) ResolveAuthors(doc *newshound.Document) []newshound.NodeRef {
	elements := r.dom.Select(doc, "*")

	var matches []newshound.NodeRef
	for _, attr := range authorAttrs {
		for _, value := range authorValues {
			for _, ref := range elements {
				v := htmlquery.Attr(ref.Element, attr)
				if v == "" || !strings.Contains(strings.ToLower(v), value) {
					continue
				}
				matches = append(matches, ref)
			}
		}
	}

	var authors []newshound.NodeRef
	for _, match := range matches {
		ref := match
		if ref.Element != nil && ref.Element.Data == "meta" {
			ref.Path += "/@content"
			ref.Text = htmlquery.InnerTrim(htmlquery.Attr(ref.Element, "content"))
		}
		if ref.Text == "" {
			continue
		}
		authors = append(authors, parseByline(ref)...)
	}

	return uniquify(authors)
}

// parseByline extracts the names out of one candidate line, emitting the
// source reference once per closed name.
//
//	"<div>By: <strong>Lucas Ou-Yang</strong>, <strong>Alex Smith</strong></div>"
//
// yields two entries.
func parseByline(ref newshound.NodeRef) []newshound.NodeRef {
	text := htmlRemnantRE.ReplaceAllString(ref.Text, "")
	text = bylineMarkerRE.ReplaceAllString(text, "")
	text = strings.TrimSpace(text)

	var out []newshound.NodeRef
	accumulated := 0

	closeName := func() {
		if accumulated >= 2 {
			out = append(out, ref)
		}
		accumulated = 0
	}

	for _, token := range nameTokenRE.Split(text, -1) {
		token = strings.TrimSpace(token)
		switch {
		case token == "and" || token == "," || token == "":
			closeName()
		case digitRE.MatchString(token):
			// Dates, ages and ids masquerading as name parts.
		default:
			accumulated++
		}
	}
	closeName()

	return out
}

// uniquify removes duplicates by lowercased text, maintaining original
// order.
func uniquify(refs []newshound.NodeRef) []newshound.NodeRef {
	seen := make(map[string]bool, len(refs))
	var out []newshound.NodeRef
	for _, ref := range refs {
		key := strings.ToLower(ref.Text)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, ref)
	}
	return out
}
