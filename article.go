package newshound

// Article is the aggregate record of all resolved fields for one document.
// It is created once per processed document and treated as immutable after
// resolution completes; the crawl orchestrator reuses it as the template
// source for as long as the owning domain group is alive.
type Article struct {
	// ID uniquely identifies the article within a crawl run.
	ID string `json:"id"`

	// URL is the address the source markup was fetched from.
	URL string `json:"url"`

	// LinkHash fingerprints the URL for cheap duplicate checks.
	LinkHash string `json:"linkHash"`

	// Templated marks an article produced by template replay rather than
	// full heuristic resolution.
	Templated bool `json:"templated"`

	Title       NodeRef   `json:"title"`
	Authors     []NodeRef `json:"authors"`
	Language    NodeRef   `json:"language"`
	Favicon     NodeRef   `json:"favicon"`
	Description NodeRef   `json:"description"`
	Keywords    NodeRef   `json:"keywords"`
	Canonical   NodeRef   `json:"canonical"`
	Tags        TagSet    `json:"tags"`
	Metadata    MetaMap   `json:"metadata"`
	PublishDate NodeRef   `json:"publishDate"`

	// Content is the winning node from the content scorer. Its Path
	// carries a trailing "//text()" so replay retrieves rendered text,
	// not markup.
	Content NodeRef `json:"content"`

	// Videos embedded within the content node.
	Videos []Video `json:"videos,omitempty"`

	// Markdown is the formatted article body, populated by the
	// orchestrator's terminal formatting stage.
	Markdown string `json:"markdown,omitempty"`
}

// Validate returns an error if the article is missing required fields.
func (a *Article) Validate() error {
	if a.URL == "" {
		return Errorf(EINVALID, "article URL required")
	}
	return nil
}

// Video describes a media element embedded in the article body.
type Video struct {
	Ref      NodeRef `json:"ref"`
	Provider string  `json:"provider,omitempty"`
	Src      string  `json:"src"`
	Width    int     `json:"width,omitempty"`
	Height   int     `json:"height,omitempty"`
}
