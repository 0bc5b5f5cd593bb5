package extract_test

import (
	"testing"

	"github.com/newshoundlabs/newshound"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolver_ResolveLanguage(t *testing.T) {
	t.Parallel()

	r := newResolver()

	t.Run("root lang attribute wins", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<html lang="EN"><head>
			<meta http-equiv="content-language" content="fr">
			</head><body></body></html>`)
		ref := r.ResolveLanguage(doc)
		assert.Equal(t, "/html/@lang", ref.Path)
		assert.Equal(t, "en", ref.Text)
	})

	t.Run("falls back to content-language meta", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<html><head>
			<meta http-equiv="content-language" content="vi">
			</head><body></body></html>`)
		ref := r.ResolveLanguage(doc)
		assert.Equal(t, "/html/head/meta/@content", ref.Path)
		assert.Equal(t, "vi", ref.Text)
	})
}

func TestResolver_ResolveFavicon(t *testing.T) {
	t.Parallel()

	r := newResolver()
	doc := parseDoc(t, `<html><head>
		<link rel="shortcut icon" href="/favicon.png">
		</head><body></body></html>`)
	ref := r.ResolveFavicon(doc)
	assert.Equal(t, "/html/head/link/@href", ref.Path)
	assert.Equal(t, "/favicon.png", ref.Text)
}

func TestResolver_ResolveCanonical(t *testing.T) {
	t.Parallel()

	r := newResolver()

	t.Run("canonical link preferred over og url", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<html><head>
			<link rel="canonical" href="https://example.com/canonical">
			<meta property="og:url" content="https://example.com/og">
			</head><body></body></html>`)
		ref := r.ResolveCanonical(doc)
		assert.Equal(t, "/html/head/link/@href", ref.Path)
		assert.Equal(t, "https://example.com/canonical", ref.Text)
	})

	t.Run("og url fills in when no canonical link", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<html><head>
			<meta property="og:url" content="https://example.com/og">
			</head><body></body></html>`)
		ref := r.ResolveCanonical(doc)
		assert.Equal(t, "/html/head/meta/@content", ref.Path)
		assert.Equal(t, "https://example.com/og", ref.Text)
	})
}

func TestResolver_ResolveTags(t *testing.T) {
	t.Parallel()

	r := newResolver()

	t.Run("rel tag anchors resolve with locators", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<html><body>
			<a rel="tag" href="/t/politics">Politics</a>
			<a rel="tag" href="/t/economy">Economy</a>
			</body></html>`)
		tags := r.ResolveTags(doc)
		assert.True(t, tags.Attempted())
		require.Len(t, tags.Refs, 2)
		assert.Equal(t, []string{"/html/body/a[1]", "/html/body/a[2]"}, tags.Paths())
	})

	t.Run("href shapes back up missing rel attributes", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<html><body>
			<a href="/tag/world">World</a>
			</body></html>`)
		tags := r.ResolveTags(doc)
		assert.True(t, tags.Attempted())
		require.Len(t, tags.Refs, 1)
		assert.Equal(t, "World", tags.Refs[0].Text)
	})

	t.Run("structurally empty document was never attempted", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<html><head></head><body></body></html>`)
		tags := r.ResolveTags(doc)
		assert.False(t, tags.Attempted())
	})

	t.Run("attempted resolution with no anchors is empty but attempted", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<html><body><p>no tags here</p></body></html>`)
		tags := r.ResolveTags(doc)
		assert.True(t, tags.Attempted())
		assert.Empty(t, tags.Refs)
	})
}

func TestResolver_ResolveMetadata(t *testing.T) {
	t.Parallel()

	r := newResolver()

	t.Run("colon keys nest into namespaces", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<html><head>
			<meta property="og:title" content="Headline">
			<meta property="og:image" content="/img.png">
			<meta name="description" content="summary">
			</head><body></body></html>`)
		m := r.ResolveMetadata(doc)

		og, ok := m["og"].(newshound.MetaMap)
		require.True(t, ok)
		assert.Equal(t, "/html/head/meta[1]/@content", og["title"])
		assert.Equal(t, "/html/head/meta[2]/@content", og["image"])
		assert.Equal(t, "/html/head/meta[3]/@content", m["description"])
	})

	t.Run("leaf and branch under the same key coexist", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<html><head>
			<meta property="farboo" content="x">
			<meta property="farboo:bar" content="y">
			</head><body></body></html>`)
		m := r.ResolveMetadata(doc)

		far, ok := m["farboo"].(newshound.MetaMap)
		require.True(t, ok)
		assert.Equal(t, "/html/head/meta[1]/@content", far["identifier"])
		assert.Equal(t, "/html/head/meta[2]/@content", far["bar"])
	})

	t.Run("value attribute backs up content", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<html><head>
			<meta name="rating" value="general">
			</head><body></body></html>`)
		m := r.ResolveMetadata(doc)
		assert.Equal(t, "/html/head/meta/@value", m["rating"])
	})
}
