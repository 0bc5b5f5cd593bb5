package mock

import "github.com/newshoundlabs/newshound"

var _ newshound.ContentScorer = (*ContentScorer)(nil)

// ContentScorer is a mock implementation of newshound.ContentScorer.
type ContentScorer struct {
	ScoreContentFn func(doc *newshound.Document) newshound.NodeRef
}

func (s *ContentScorer) ScoreContent(doc *newshound.Document) newshound.NodeRef {
	return s.ScoreContentFn(doc)
}

var _ newshound.Analyzer = (*Analyzer)(nil)

// Analyzer is a mock implementation of newshound.Analyzer.
type Analyzer struct {
	StopwordCountFn     func(text string) int
	IsHighLinkDensityFn func(ref newshound.NodeRef) bool
	IsBoostableFn       func(ref newshound.NodeRef) bool
}

func (a *Analyzer) StopwordCount(text string) int {
	return a.StopwordCountFn(text)
}

func (a *Analyzer) IsHighLinkDensity(ref newshound.NodeRef) bool {
	if a.IsHighLinkDensityFn == nil {
		return false
	}
	return a.IsHighLinkDensityFn(ref)
}

func (a *Analyzer) IsBoostable(ref newshound.NodeRef) bool {
	if a.IsBoostableFn == nil {
		return false
	}
	return a.IsBoostableFn(ref)
}
