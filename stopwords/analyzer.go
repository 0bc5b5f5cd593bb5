// Package stopwords implements the newshound.Analyzer interface: stop-word
// counting, link density and boostability checks used by the content
// scorer. Word tables ship embedded, one file per language.
package stopwords

import (
	"embed"
	"regexp"
	"strings"

	"github.com/newshoundlabs/newshound"
	"golang.org/x/net/html"
)

//go:embed data/*.txt
var tables embed.FS

// Ensure Analyzer implements newshound.Analyzer at compile time.
var _ newshound.Analyzer = (*Analyzer)(nil)

// punctRE strips everything that is not a letter, digit or whitespace
// before tokenizing.
var punctRE = regexp.MustCompile(`[^\p{L}\p{N}\s]`)

const (
	// minimumStopwordCount is the stop-word count a nearby paragraph
	// needs before its neighbor becomes boostable.
	minimumStopwordCount = 5

	// maxStepsAwayFromNode bounds how far back the boostability probe
	// looks among preceding paragraph siblings.
	maxStepsAwayFromNode = 3

	// highLinkDensityScore is the link-words-to-words score at which a
	// node is considered navigation-like.
	highLinkDensityScore = 1.0
)

// Analyzer provides language-dependent text statistics.
type Analyzer struct {
	words map[string]struct{}
}

// NewAnalyzer creates an analyzer for the given language code. Unknown
// languages fall back to the English table.
func NewAnalyzer(language string) *Analyzer {
	data, err := tables.ReadFile("data/" + strings.ToLower(language) + ".txt")
	if err != nil {
		data, _ = tables.ReadFile("data/en.txt")
	}

	words := make(map[string]struct{})
	for _, line := range strings.Split(string(data), "\n") {
		if w := strings.TrimSpace(line); w != "" {
			words[w] = struct{}{}
		}
	}
	return &Analyzer{words: words}
}

// StopwordCount returns the number of stop words in the text.
func (a *Analyzer) StopwordCount(text string) int {
	if text == "" {
		return 0
	}
	count := 0
	stripped := punctRE.ReplaceAllString(strings.ToLower(text), "")
	for _, token := range strings.Fields(stripped) {
		if _, ok := a.words[token]; ok {
			count++
		}
	}
	return count
}

// IsHighLinkDensity reports whether the node's text is dominated by anchor
// text. The score is the ratio of link words to total words multiplied by
// the number of links; navigation blocks cross 1.0 easily.
func (a *Analyzer) IsHighLinkDensity(ref newshound.NodeRef) bool {
	if ref.Element == nil {
		return false
	}

	links := descendants(ref.Element, "a")
	if len(links) == 0 {
		return false
	}

	words := strings.Fields(ref.Text)
	if len(words) == 0 {
		return true
	}

	var linkWords int
	for _, link := range links {
		linkWords += len(strings.Fields(nodeText(link)))
	}

	score := float64(linkWords) / float64(len(words)) * float64(len(links))
	return score >= highLinkDensityScore
}

// IsBoostable probes the preceding paragraph siblings of the node: if one
// within reach carries real content (more than minimumStopwordCount stop
// words), the node deserves a boost.
func (a *Analyzer) IsBoostable(ref newshound.NodeRef) bool {
	if ref.Element == nil {
		return false
	}

	steps := 0
	for sib := ref.Element.PrevSibling; sib != nil; sib = sib.PrevSibling {
		if sib.Type != html.ElementNode || sib.Data != "p" {
			continue
		}
		if steps >= maxStepsAwayFromNode {
			return false
		}
		if a.StopwordCount(nodeText(sib)) > minimumStopwordCount {
			return true
		}
		steps++
	}
	return false
}

// descendants collects descendant elements with the given tag.
func descendants(n *html.Node, tag string) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == tag {
			out = append(out, c)
		}
		out = append(out, descendants(c, tag)...)
	}
	return out
}

// nodeText concatenates the text beneath a node, whitespace-collapsed.
func nodeText(n *html.Node) string {
	var b strings.Builder
	var visit func(*html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteString(" ")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(n)
	return strings.Join(strings.Fields(b.String()), " ")
}
