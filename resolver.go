package newshound

// Resolver is the capability interface for the per-field extraction
// heuristics. Each method is a pure function of the document (plus the
// configuration the implementation was constructed with) and is
// independent of the others; swapping extraction strategy means swapping
// the implementation, not subclassing.
type Resolver interface {
	// ResolveTitle applies the title comparison rules across <title>,
	// the longest <h1> and og:title. A zero reference means no <title>
	// element existed; a reference with text but no path means the raw
	// <title> text is the best available fallback.
	ResolveTitle(doc *Document) NodeRef

	// ResolveAuthors scans byline-marked elements and returns one source
	// reference per detected name, deduplicated case-insensitively in
	// first-seen order.
	ResolveAuthors(doc *Document) []NodeRef

	// ResolveLanguage prefers the document root's lang attribute, then
	// content-language and lang metas. Text carries the lowercased value.
	ResolveLanguage(doc *Document) NodeRef

	// ResolveFavicon returns the first link[rel*=icon] href locator.
	ResolveFavicon(doc *Document) NodeRef

	// ResolveDescription returns the meta description content locator.
	ResolveDescription(doc *Document) NodeRef

	// ResolveKeywords returns the meta keywords content locator.
	ResolveKeywords(doc *Document) NodeRef

	// ResolveCanonical prefers link[rel=canonical], then og:url.
	ResolveCanonical(doc *Document) NodeRef

	// ResolveTags collects anchor tag locators. Returns NoTags when the
	// document is structurally empty.
	ResolveTags(doc *Document) TagSet

	// ResolveMetadata builds the namespaced locator map from all meta
	// declarations.
	ResolveMetadata(doc *Document) MetaMap

	// ResolvePublishDate tries the URL date pattern, then the known meta
	// tag priority list. A zero reference means no strategy succeeded.
	ResolvePublishDate(url string, doc *Document) NodeRef

	// ResolveVideos finds media embedded within the content node.
	ResolveVideos(doc *Document, content NodeRef) []Video
}

// ContentScorer locates the single node judged most likely to be the
// article's main body. Kept separate from Resolver so the scoring strategy
// can be swapped independently of the field heuristics.
type ContentScorer interface {
	// ScoreContent returns the winning node with a text-bearing path, or
	// a zero reference if no candidate qualifies. The document passed in
	// should already be cleaned.
	ScoreContent(doc *Document) NodeRef
}

// Analyzer supplies the language-dependent text statistics the content
// scorer consumes.
type Analyzer interface {
	// StopwordCount returns the number of stop words in the text.
	StopwordCount(text string) int

	// IsHighLinkDensity reports whether the node's text is dominated by
	// anchor text, marking navigation-like blocks.
	IsHighLinkDensity(ref NodeRef) bool

	// IsBoostable reports whether the node sits close to other
	// paragraphs with real content and deserves a score boost.
	IsBoostable(ref NodeRef) bool
}
