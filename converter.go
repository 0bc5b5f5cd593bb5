package newshound

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input should be the rendered markup of a content node.
	// Returns the Markdown representation of the content.
	Convert(html string) (string, error)
}
