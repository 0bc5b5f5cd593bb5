package extract_test

import (
	"testing"

	"github.com/newshoundlabs/newshound"
	"github.com/newshoundlabs/newshound/extract"
	"github.com/newshoundlabs/newshound/htmlquery"
	"github.com/stretchr/testify/require"
)

// parseDoc parses markup into a document, failing the test on error.
func parseDoc(t *testing.T, markup string) *newshound.Document {
	t.Helper()
	doc, err := htmlquery.NewDOM().Parse(markup, "https://example.com/story")
	require.NoError(t, err)
	return doc
}

// newResolver builds a resolver with default configuration.
func newResolver() *extract.Resolver {
	return extract.NewResolver(htmlquery.NewDOM(), newshound.Config{})
}
