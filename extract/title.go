package extract

import (
	"regexp"
	"strings"

	"github.com/newshoundlabs/newshound"
)

// og:title expressions, tried in order. The expression itself is the
// locator, so it replays against sibling documents unchanged.
const (
	ogTitlePropertyPath = `//meta[@property="og:title"]/@content`
	ogTitleNamePath     = `//meta[@name="og:title"]/@content`
)

// titleFilterRE strips everything outside [A-Za-z0-9 ] for the fuzzy
// title comparisons; raw equality is often too strict.
var titleFilterRE = regexp.MustCompile(`[^a-zA-Z0-9 ]`)

// ResolveTitle fetches the article title and analyzes it.
//
// Assumptions: the <title> tag is the most reliable starting point; an
// <h1>, if properly detected, is the best (it is what readers see);
// og:title helps arbitrate between the two.
//
// Rules, first match wins:
//  1. h1 text equals title text: keep the <title> locator.
//  2. h1 similar to og:title: use the <h1> locator.
//  3. title contains both h1 and og:title, and h1 is the longer: use
//     the <h1> locator.
//  4. title starts with og:title: use the og:title locator.
//  5. otherwise no locator; the raw <title> text rides along as a
//     fallback value.
func (r *Resolver) ResolveTitle(doc *newshound.Document) newshound.NodeRef {
	titles := r.dom.Select(doc, "title")
	if len(titles) == 0 {
		return newshound.NodeRef{}
	}
	titleRef := titles[0]

	// Longest h1 wins; ties keep the first; whitespace-collapsed empty
	// texts are ignored.
	var h1Ref newshound.NodeRef
	for _, h := range r.dom.Select(doc, "h1") {
		if h.Text == "" {
			continue
		}
		if len(h.Text) > len(h1Ref.Text) {
			h1Ref = h
		}
	}

	ogRef := r.first(doc, ogTitlePropertyPath)
	if ogRef.Zero() {
		ogRef = r.first(doc, ogTitleNamePath)
	}

	filterTitle := normalizeTitle(titleRef.Text)
	filterH1 := normalizeTitle(h1Ref.Text)
	filterOG := normalizeTitle(ogRef.Text)

	switch {
	case h1Ref.Text != "" && h1Ref.Text == titleRef.Text:
		return titleRef
	case filterH1 != "" && filterH1 == filterOG:
		return h1Ref
	case filterH1 != "" && strings.Contains(filterTitle, filterH1) &&
		filterOG != "" && strings.Contains(filterTitle, filterOG) &&
		len(h1Ref.Text) > len(ogRef.Text):
		return h1Ref
	case filterOG != "" && filterOG != filterTitle && strings.HasPrefix(filterTitle, filterOG):
		return ogRef
	default:
		return newshound.NodeRef{Text: titleRef.Text}
	}
}

func normalizeTitle(s string) string {
	return strings.ToLower(titleFilterRE.ReplaceAllString(s, ""))
}
