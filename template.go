package newshound

// TemplateEngine replays a known-good extraction's path expressions
// against a new document, bypassing the heuristics entirely.
//
// The mechanism trades heuristic accuracy for speed: it assumes sibling
// pages share exact DOM shape with the representative. Callers must fall
// back to full heuristic resolution when an EMISMATCH error is returned.
type TemplateEngine interface {
	// Apply re-evaluates each field locator stored in template against
	// doc and returns the resulting article.
	//
	// Returns EMISMATCH when a structurally required locator (title,
	// content) yields zero matches; optional fields degrade to empty
	// instead. The template itself is never mutated.
	Apply(template *Article, doc *Document) (*Article, error)
}
