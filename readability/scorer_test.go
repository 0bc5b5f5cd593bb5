package readability_test

import (
	"testing"

	"github.com/newshoundlabs/newshound"
	"github.com/newshoundlabs/newshound/htmlquery"
	"github.com/newshoundlabs/newshound/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseDoc(t *testing.T, markup string) *newshound.Document {
	t.Helper()
	doc, err := htmlquery.NewDOM().Parse(markup, "https://example.com/story")
	require.NoError(t, err)
	return doc
}

func TestScorer_ScoreContent(t *testing.T) {
	t.Parallel()

	s := readability.NewScorer()

	t.Run("finds the article body past navigation", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<html><body>
			<nav><a href="/">Home</a> <a href="/world">World</a> <a href="/sport">Sport</a></nav>
			<div id="story">
			<p>The committee spent the better part of the morning arguing over the wording of the final communique, with delegates from several countries insisting on stronger language about enforcement.</p>
			<p>By early afternoon a compromise had emerged, though few of those present seemed entirely satisfied with it, and several told reporters they expected the matter to resurface next year.</p>
			<p>The closing session was brief, and the chair adjourned the meeting without taking further questions from the floor.</p>
			</div>
			</body></html>`)

		ref := s.ScoreContent(doc)
		require.NotNil(t, ref.Element)
		assert.True(t, len(ref.Path) > 0)
		assert.Contains(t, ref.Path, "//text()")
		assert.Contains(t, ref.Text, "compromise")
		assert.NotContains(t, ref.Path, "nav")
	})

	t.Run("locator replays through the DOM layer", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<html><body><article>
			<p>The committee spent the better part of the morning arguing over the wording of the final communique, with delegates from several countries insisting on stronger language.</p>
			<p>By early afternoon a compromise had emerged, though few of those present seemed entirely satisfied with it, and several told reporters they expected more talks.</p>
			</article></body></html>`)

		ref := s.ScoreContent(doc)
		require.NotNil(t, ref.Element)

		refs, err := htmlquery.NewDOM().Evaluate(doc, ref.Path)
		require.NoError(t, err)
		assert.NotEmpty(t, refs)
	})

	t.Run("empty body yields a zero reference", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<html><body></body></html>`)
		ref := s.ScoreContent(doc)
		assert.True(t, ref.Zero())
	})

	t.Run("nil document yields a zero reference", func(t *testing.T) {
		t.Parallel()

		ref := s.ScoreContent(nil)
		assert.True(t, ref.Zero())
	})
}
