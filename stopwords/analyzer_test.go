package stopwords_test

import (
	"strings"
	"testing"

	"github.com/antchfx/htmlquery"
	"github.com/newshoundlabs/newshound"
	"github.com/newshoundlabs/newshound/stopwords"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

// parseFirst returns a NodeRef for the first node matching the XPath in
// the given markup.
func parseFirst(t *testing.T, markup, xpath string) newshound.NodeRef {
	t.Helper()
	root, err := html.Parse(strings.NewReader(markup))
	require.NoError(t, err)
	n, err := htmlquery.Query(root, xpath)
	require.NoError(t, err)
	require.NotNil(t, n)
	text := strings.Join(strings.Fields(htmlquery.InnerText(n)), " ")
	return newshound.NodeRef{Element: n, Text: text}
}

func TestAnalyzer_StopwordCount(t *testing.T) {
	t.Parallel()

	t.Run("counts english stop words", func(t *testing.T) {
		t.Parallel()

		a := stopwords.NewAnalyzer("en")
		// the, cat, sat, on, the, mat -> "the" x2 + "on" = 3
		assert.Equal(t, 3, a.StopwordCount("The cat sat on the mat."))
	})

	t.Run("punctuation does not hide stop words", func(t *testing.T) {
		t.Parallel()

		a := stopwords.NewAnalyzer("en")
		assert.Equal(t, 2, a.StopwordCount("and, or!"))
	})

	t.Run("empty text counts zero", func(t *testing.T) {
		t.Parallel()

		a := stopwords.NewAnalyzer("en")
		assert.Zero(t, a.StopwordCount(""))
	})

	t.Run("vietnamese table", func(t *testing.T) {
		t.Parallel()

		a := stopwords.NewAnalyzer("vi")
		assert.Equal(t, 2, a.StopwordCount("bài viết của chúng tôi và bạn bè"))
	})

	t.Run("unknown language falls back to english", func(t *testing.T) {
		t.Parallel()

		a := stopwords.NewAnalyzer("xx")
		assert.Equal(t, 1, a.StopwordCount("the unknown"))
	})
}

func TestAnalyzer_IsHighLinkDensity(t *testing.T) {
	t.Parallel()

	a := stopwords.NewAnalyzer("en")

	t.Run("no links is never dense", func(t *testing.T) {
		t.Parallel()

		ref := parseFirst(t, `<div><p>plain words only here</p></div>`, "//div")
		assert.False(t, a.IsHighLinkDensity(ref))
	})

	t.Run("nav-like block is dense", func(t *testing.T) {
		t.Parallel()

		ref := parseFirst(t, `<div><a href="/a">home</a> <a href="/b">world</a> <a href="/c">sport</a></div>`, "//div")
		assert.True(t, a.IsHighLinkDensity(ref))
	})

	t.Run("one link in long prose is not dense", func(t *testing.T) {
		t.Parallel()

		ref := parseFirst(t, `<div>many words of real article prose surround a single
			<a href="/x">link</a> and keep going for quite a while longer here</div>`, "//div")
		assert.False(t, a.IsHighLinkDensity(ref))
	})
}

func TestAnalyzer_IsBoostable(t *testing.T) {
	t.Parallel()

	a := stopwords.NewAnalyzer("en")

	t.Run("boostable when a nearby paragraph has content", func(t *testing.T) {
		t.Parallel()

		markup := `<div>
			<p>this is about what we should have been doing with all of them</p>
			<p id="target">short</p>
		</div>`
		ref := parseFirst(t, markup, `//p[@id="target"]`)
		assert.True(t, a.IsBoostable(ref))
	})

	t.Run("not boostable with only thin siblings", func(t *testing.T) {
		t.Parallel()

		markup := `<div>
			<p>one</p><p>two</p><p>three</p><p>four</p>
			<p id="target">short</p>
		</div>`
		ref := parseFirst(t, markup, `//p[@id="target"]`)
		assert.False(t, a.IsBoostable(ref))
	})

	t.Run("not boostable with no siblings", func(t *testing.T) {
		t.Parallel()

		ref := parseFirst(t, `<div><p id="target">alone</p></div>`, `//p[@id="target"]`)
		assert.False(t, a.IsBoostable(ref))
	})
}
