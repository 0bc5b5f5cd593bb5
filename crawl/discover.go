package crawl

import (
	"net/url"
	"strings"

	"github.com/newshoundlabs/newshound"
	"golang.org/x/net/html"
)

// Single path segments that mark site chrome rather than news sections.
var nonCategorySegments = map[string]bool{
	"about":      true,
	"account":    true,
	"advertise":  true,
	"careers":    true,
	"contact":    true,
	"help":       true,
	"jobs":       true,
	"legal":      true,
	"login":      true,
	"mail":       true,
	"media":      true,
	"newsletter": true,
	"privacy":    true,
	"signup":     true,
	"site-map":   true,
	"sitemap":    true,
	"static":     true,
	"subscribe":  true,
	"terms":      true,
}

// anchorHrefs resolves every anchor's href against base, dropping
// fragment-only links and non-HTTP schemes.
func anchorHrefs(dom newshound.DOM, doc *newshound.Document, base *url.URL) []*url.URL {
	var links []*url.URL
	for _, ref := range dom.Select(doc, "a") {
		if link := resolveHref(ref.Element, base); link != nil {
			links = append(links, link)
		}
	}
	return links
}

// titledAnchorHrefs is anchorHrefs restricted to anchors carrying a
// non-empty title attribute, the strongest cheap signal that a link
// points at an article rather than site chrome.
func titledAnchorHrefs(dom newshound.DOM, doc *newshound.Document, base *url.URL) []*url.URL {
	var links []*url.URL
	for _, ref := range dom.Select(doc, "a[title]") {
		if strings.TrimSpace(nodeAttr(ref.Element, "title")) == "" {
			continue
		}
		if link := resolveHref(ref.Element, base); link != nil {
			links = append(links, link)
		}
	}
	return links
}

func resolveHref(n *html.Node, base *url.URL) *url.URL {
	href := strings.TrimSpace(nodeAttr(n, "href"))
	if href == "" || strings.HasPrefix(href, "#") {
		return nil
	}
	resolved, err := base.Parse(href)
	if err != nil {
		return nil
	}
	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return nil
	}
	resolved.Fragment = ""
	return resolved
}

// isCategoryURL reports whether a homepage link looks like a news section:
// same host as the site and at most one path segment deep.
func isCategoryURL(link, base *url.URL) bool {
	if !sameHost(link, base) {
		return false
	}
	segments := pathSegments(link.Path)
	if len(segments) > 1 {
		return false
	}
	if len(segments) == 1 && nonCategorySegments[strings.ToLower(segments[0])] {
		return false
	}
	return true
}

func sameHost(link, base *url.URL) bool {
	return normalizeHost(link.Host) == normalizeHost(base.Host)
}

func normalizeHost(host string) string {
	return strings.TrimPrefix(strings.ToLower(host), "www.")
}

func pathSegments(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

func nodeAttr(n *html.Node, key string) string {
	if n == nil {
		return ""
	}
	for _, attr := range n.Attr {
		if strings.EqualFold(attr.Key, key) {
			return attr.Val
		}
	}
	return ""
}
