package mock

import "github.com/newshoundlabs/newshound"

var _ newshound.DOM = (*DOM)(nil)

// DOM is a mock implementation of newshound.DOM.
type DOM struct {
	ParseFn          func(markup, url string) (*newshound.Document, error)
	EvaluateFn       func(doc *newshound.Document, path string) ([]newshound.NodeRef, error)
	SelectFn         func(doc *newshound.Document, selector string) []newshound.NodeRef
	CleanFn          func(doc *newshound.Document) *newshound.Document
	CandidateNodesFn func(doc *newshound.Document) []newshound.NodeRef
}

func (d *DOM) Parse(markup, url string) (*newshound.Document, error) {
	return d.ParseFn(markup, url)
}

func (d *DOM) Evaluate(doc *newshound.Document, path string) ([]newshound.NodeRef, error) {
	return d.EvaluateFn(doc, path)
}

func (d *DOM) Select(doc *newshound.Document, selector string) []newshound.NodeRef {
	return d.SelectFn(doc, selector)
}

func (d *DOM) Clean(doc *newshound.Document) *newshound.Document {
	if d.CleanFn == nil {
		return doc
	}
	return d.CleanFn(doc)
}

func (d *DOM) CandidateNodes(doc *newshound.Document) []newshound.NodeRef {
	return d.CandidateNodesFn(doc)
}
