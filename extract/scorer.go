package extract

import (
	"github.com/newshoundlabs/newshound"
	"github.com/newshoundlabs/newshound/htmlquery"
	"golang.org/x/net/html"
)

// Ensure Scorer implements newshound.ContentScorer at compile time.
var _ newshound.ContentScorer = (*Scorer)(nil)

// Scorer locates the article body by accumulating stop-word scores up
// from paragraph-level candidates into their parents, then picking the
// highest-scoring ancestor.
type Scorer struct {
	dom      newshound.DOM
	analyzer newshound.Analyzer
}

// NewScorer creates a content scorer backed by the given DOM provider and
// text analyzer.
func NewScorer(dom newshound.DOM, analyzer newshound.Analyzer) *Scorer {
	return &Scorer{dom: dom, analyzer: analyzer}
}

// ScoreContent returns the winning node with a text-bearing path, or a
// zero reference when no candidate qualifies. Pass a cleaned document;
// boilerplate skews the link density filter.
func (s *Scorer) ScoreContent(doc *newshound.Document) newshound.NodeRef {
	var nodes []newshound.NodeRef
	for _, ref := range s.dom.CandidateNodes(doc) {
		if s.analyzer.StopwordCount(ref.Text) > 2 && !s.analyzer.IsHighLinkDensity(ref) {
			nodes = append(nodes, ref)
		}
	}
	if len(nodes) == 0 {
		return newshound.NodeRef{}
	}

	tallies, touched := s.accumulate(nodes)

	var top *html.Node
	topScore := 0
	for _, n := range touched {
		if tallies[n].score > topScore {
			top = n
			topScore = tallies[n].score
		}
		if top == nil {
			top = n
		}
	}
	if top == nil {
		return newshound.NodeRef{}
	}

	return newshound.NodeRef{
		Element: top,
		Path:    htmlquery.PathTo(top) + "//text()",
		Text:    htmlquery.InnerTrim(nodeText(top)),
	}
}

// tally is the running record for one container element: the accumulated
// score and the number of paragraph nodes that contributed to it.
// Selection reads the score; the hit count describes how broad the
// winning container is.
type tally struct {
	score int
	hits  int
}

// accumulate pushes each qualifying node's upscore onto its parent and
// half of it onto its grandparent, counting one hit per contribution.
// touched preserves first-bump order so ties resolve deterministically.
func (s *Scorer) accumulate(nodes []newshound.NodeRef) (map[*html.Node]*tally, []*html.Node) {
	tallies := make(map[*html.Node]*tally)
	var touched []*html.Node
	bump := func(n *html.Node, delta int) {
		if n == nil {
			return
		}
		t, ok := tallies[n]
		if !ok {
			t = &tally{}
			tallies[n] = t
			touched = append(touched, n)
		}
		t.score += delta
		t.hits++
	}

	total := len(nodes)
	bottomNodes := float64(total) * 0.25
	boostDivisor := 1.0
	negativeScoring := 0.0

	for i, ref := range nodes {
		boost := 0.0
		if s.analyzer.IsBoostable(ref) {
			boost = 50.0 / boostDivisor
			boostDivisor++
		}

		// Long documents trail off into related-links and comment
		// boilerplate; penalize the tail quadratically, but rescue nodes
		// once the accumulated penalty grows implausibly large.
		if total > 15 {
			if remaining := float64(total - i); remaining <= bottomNodes {
				booster := bottomNodes - remaining
				boost = -(booster * booster)
				negativeScoring += -boost
				if negativeScoring > 40 {
					boost = 5
				}
			}
		}

		upscore := int(float64(s.analyzer.StopwordCount(ref.Text)) + boost)
		parent := parentElement(ref.Element)
		bump(parent, upscore)
		bump(parentElement(parent), upscore/2)
	}

	return tallies, touched
}

func parentElement(n *html.Node) *html.Node {
	if n == nil {
		return nil
	}
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode {
			return p
		}
	}
	return nil
}

func nodeText(n *html.Node) string {
	var b []byte
	var visit func(*html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.TextNode {
			b = append(b, n.Data...)
			b = append(b, ' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(n)
	return string(b)
}
