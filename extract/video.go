package extract

import (
	"strconv"
	"strings"

	"github.com/newshoundlabs/newshound"
	"github.com/newshoundlabs/newshound/htmlquery"
	"golang.org/x/net/html"
)

// videoProviders maps src substrings to provider names.
var videoProviders = []struct {
	marker   string
	provider string
}{
	{marker: "youtube", provider: "youtube"},
	{marker: "youtu.be", provider: "youtube"},
	{marker: "vimeo", provider: "vimeo"},
	{marker: "dailymotion", provider: "dailymotion"},
}

// ResolveVideos finds media elements embedded within the content node.
// Embeds outside the article body are navigation or ads and are skipped.
func (r *Resolver) ResolveVideos(doc *newshound.Document, content newshound.NodeRef) []newshound.Video {
	if content.Element == nil {
		return nil
	}

	var videos []newshound.Video
	for _, ref := range r.dom.Select(doc, "object, embed, iframe, video") {
		if !isDescendant(ref.Element, content.Element) {
			continue
		}

		src := htmlquery.Attr(ref.Element, "src")
		if src == "" {
			src = htmlquery.Attr(ref.Element, "data-src")
		}
		if src == "" {
			continue
		}

		videos = append(videos, newshound.Video{
			Ref:      ref,
			Provider: providerOf(src),
			Src:      src,
			Width:    intAttr(ref.Element, "width"),
			Height:   intAttr(ref.Element, "height"),
		})
	}
	return videos
}

func providerOf(src string) string {
	lower := strings.ToLower(src)
	for _, p := range videoProviders {
		if strings.Contains(lower, p.marker) {
			return p.provider
		}
	}
	return ""
}

func intAttr(n *html.Node, name string) int {
	v, err := strconv.Atoi(htmlquery.Attr(n, name))
	if err != nil {
		return 0
	}
	return v
}

// isDescendant reports whether n sits within ancestor's subtree. The node
// itself counts.
func isDescendant(n, ancestor *html.Node) bool {
	for cur := n; cur != nil; cur = cur.Parent {
		if cur == ancestor {
			return true
		}
	}
	return false
}
