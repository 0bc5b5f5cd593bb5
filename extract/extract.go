// Package extract implements the heuristic field resolvers, the
// boilerplate-removal content scorer and the template replay engine.
// Everything here is a pure function of the document it is handed; the
// only state a resolver carries is its configuration.
package extract

import (
	"github.com/newshoundlabs/newshound"
)

// Ensure Resolver implements newshound.Resolver at compile time.
var _ newshound.Resolver = (*Resolver)(nil)

// Resolver is the concrete resolver set for news article pages.
type Resolver struct {
	dom    newshound.DOM
	config newshound.Config
}

// NewResolver creates a resolver backed by the given DOM provider.
func NewResolver(dom newshound.DOM, config newshound.Config) *Resolver {
	return &Resolver{dom: dom, config: config}
}

// first returns the first reference matching the path expression, or a
// zero reference.
func (r *Resolver) first(doc *newshound.Document, path string) newshound.NodeRef {
	refs, err := r.dom.Evaluate(doc, path)
	if err != nil || len(refs) == 0 {
		return newshound.NodeRef{}
	}
	return refs[0]
}
