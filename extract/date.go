package extract

import (
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/newshoundlabs/newshound"
	"github.com/newshoundlabs/newshound/htmlquery"
)

// urlDateRE spots a publication date embedded in the URL path, e.g.
// /2014/04/30/ or /2014/apr/30/.
var urlDateRE = regexp.MustCompile(`([\./\-_]{0,1}(19|20)\d{2})[\./\-_]{0,1}(([0-3]{0,1}[0-9][\./\-_])|(\w{3,5}[\./\-_]))([0-3]{0,1}[0-9][\./\-_]{0,1})?`)

// metaDateTag describes one meta element probed for a publish date. The
// list is ordered by trustworthiness and scanned first match wins.
type metaDateTag struct {
	attr    string
	value   string
	content string
}

var publishDateTags = []metaDateTag{
	{attr: "property", value: "rnews:datePublished", content: "content"},
	{attr: "property", value: "article:published_time", content: "content"},
	{attr: "name", value: "OriginalPublicationDate", content: "content"},
	{attr: "itemprop", value: "datePublished", content: "datetime"},
	{attr: "property", value: "og:published_time", content: "content"},
	{attr: "name", value: "article_date_original", content: "content"},
	{attr: "name", value: "publication_date", content: "content"},
	{attr: "name", value: "sailthru.date", content: "content"},
	{attr: "name", value: "PublishDate", content: "content"},
}

// ResolvePublishDate tries the URL itself first, then the known meta
// tags. A date found in the URL carries no locator, only the normalized
// timestamp; a meta match carries the attribute locator so sibling
// replay can reuse it.
func (r *Resolver) ResolvePublishDate(url string, doc *newshound.Document) newshound.NodeRef {
	if m := urlDateRE.FindString(url); m != "" {
		if t, ok := parseURLDate(m); ok {
			return newshound.NodeRef{Text: t.Format(time.RFC3339)}
		}
	}

	for _, tag := range publishDateTags {
		for _, ref := range r.dom.Select(doc, "meta") {
			v := htmlquery.Attr(ref.Element, tag.attr)
			if v == "" || !strings.Contains(strings.ToLower(v), strings.ToLower(tag.value)) {
				continue
			}
			raw := htmlquery.Attr(ref.Element, tag.content)
			if raw == "" {
				break
			}
			if _, err := dateparse.ParseAny(raw); err != nil {
				break
			}
			ref.Path += "/@" + tag.content
			ref.Text = raw
			return ref
		}
	}

	return newshound.NodeRef{}
}

// parseURLDate turns a raw URL date fragment into a time. It requires at
// least year, month and day components so that a bare /2014/04/ section
// path is not mistaken for a date.
func parseURLDate(fragment string) (time.Time, bool) {
	trimmed := strings.Trim(fragment, "./-_ ")
	parts := strings.FieldsFunc(trimmed, func(r rune) bool {
		return r == '.' || r == '/' || r == '-' || r == '_'
	})
	if len(parts) < 3 {
		return time.Time{}, false
	}
	t, err := dateparse.ParseAny(strings.Join(parts, "-"))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
