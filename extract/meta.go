package extract

import (
	"strings"

	"github.com/newshoundlabs/newshound"
	"github.com/newshoundlabs/newshound/htmlquery"
	"golang.org/x/net/html"
)

// Tag anchor selectors: the explicit rel=tag convention first, then the
// common tag-listing href shapes.
const (
	relTagSelector  = "a[rel=tag]"
	hrefTagSelector = `a[href*='/tag/'], a[href*='/tags/'], a[href*='/topic/'], a[href*='?keyword=']`
)

// ResolveLanguage prefers an explicit lang attribute on the document
// root, then content-language and lang metas.
func (r *Resolver) ResolveLanguage(doc *newshound.Document) newshound.NodeRef {
	if roots := r.dom.Select(doc, "html"); len(roots) > 0 {
		if v := htmlquery.Attr(roots[0].Element, "lang"); v != "" {
			return newshound.NodeRef{
				Element: roots[0].Element,
				Path:    "/html/@lang",
				Text:    strings.ToLower(v),
			}
		}
	}

	for _, selector := range []string{
		`meta[http-equiv='content-language']`,
		`meta[name='lang']`,
	} {
		if metas := r.dom.Select(doc, selector); len(metas) > 0 {
			return newshound.NodeRef{
				Element: metas[0].Element,
				Path:    metas[0].Path + "/@content",
				Text:    strings.ToLower(htmlquery.Attr(metas[0].Element, "content")),
			}
		}
	}

	return newshound.NodeRef{}
}

// ResolveFavicon returns the first icon link's href locator.
//
//	<link rel="shortcut icon" type="image/png" href="favicon.png" />
//	<link rel="icon" type="image/png" href="favicon.png" />
func (r *Resolver) ResolveFavicon(doc *newshound.Document) newshound.NodeRef {
	links := r.dom.Select(doc, `link[rel*='icon']`)
	if len(links) == 0 {
		return newshound.NodeRef{}
	}
	return newshound.NodeRef{
		Element: links[0].Element,
		Path:    links[0].Path + "/@href",
		Text:    htmlquery.Attr(links[0].Element, "href"),
	}
}

// ResolveDescription returns the meta description content locator.
func (r *Resolver) ResolveDescription(doc *newshound.Document) newshound.NodeRef {
	return r.metaContent(doc, `meta[name='description']`)
}

// ResolveKeywords returns the meta keywords content locator.
func (r *Resolver) ResolveKeywords(doc *newshound.Document) newshound.NodeRef {
	return r.metaContent(doc, `meta[name='keywords']`)
}

// metaContent resolves a named meta element to its content locator.
func (r *Resolver) metaContent(doc *newshound.Document, selector string) newshound.NodeRef {
	metas := r.dom.Select(doc, selector)
	if len(metas) == 0 {
		return newshound.NodeRef{}
	}
	return newshound.NodeRef{
		Element: metas[0].Element,
		Path:    metas[0].Path + "/@content",
		Text:    htmlquery.Attr(metas[0].Element, "content"),
	}
}

// ResolveCanonical returns the article's canonical URL locator, from the
// first available of rel=canonical and og:url.
func (r *Resolver) ResolveCanonical(doc *newshound.Document) newshound.NodeRef {
	if links := r.dom.Select(doc, `link[rel='canonical']`); len(links) > 0 {
		if href := htmlquery.Attr(links[0].Element, "href"); href != "" {
			return newshound.NodeRef{
				Element: links[0].Element,
				Path:    links[0].Path + "/@href",
				Text:    href,
			}
		}
	}

	if ogs := r.dom.Select(doc, `meta[property='og:url']`); len(ogs) > 0 {
		if content := htmlquery.Attr(ogs[0].Element, "content"); content != "" {
			return newshound.NodeRef{
				Element: ogs[0].Element,
				Path:    ogs[0].Path + "/@content",
				Text:    content,
			}
		}
	}

	return newshound.NodeRef{}
}

// ResolveTags collects anchor tag locators, trying the rel=tag convention
// before the href fallback. A structurally empty document returns the
// NoTags sentinel so callers can tell "not attempted" from "attempted,
// nothing matched".
func (r *Resolver) ResolveTags(doc *newshound.Document) newshound.TagSet {
	if structurallyEmpty(doc) {
		return newshound.NoTags
	}

	refs := r.dom.Select(doc, relTagSelector)
	if len(refs) == 0 {
		refs = r.dom.Select(doc, hrefTagSelector)
	}

	set := newshound.TagSet{Refs: []newshound.NodeRef{}}
	seen := make(map[string]bool, len(refs))
	for _, ref := range refs {
		if ref.Path == "" || seen[ref.Path] {
			continue
		}
		seen[ref.Path] = true
		set.Refs = append(set.Refs, ref)
	}
	return set
}

// ResolveMetadata builds the namespaced locator map from every meta
// element carrying a property or name key and a content or value payload.
func (r *Resolver) ResolveMetadata(doc *newshound.Document) newshound.MetaMap {
	m := newshound.MetaMap{}
	for _, ref := range r.dom.Select(doc, "meta") {
		key := htmlquery.Attr(ref.Element, "property")
		if key == "" {
			key = htmlquery.Attr(ref.Element, "name")
		}

		var locator string
		if htmlquery.Attr(ref.Element, "content") != "" {
			locator = ref.Path + "/@content"
		} else if htmlquery.Attr(ref.Element, "value") != "" {
			locator = ref.Path + "/@value"
		}

		if key == "" || locator == "" {
			continue
		}
		m.Set(key, locator)
	}
	return m
}

// structurallyEmpty reports whether the document holds no elements beyond
// the html/head/body scaffolding the parser always supplies.
func structurallyEmpty(doc *newshound.Document) bool {
	if doc == nil || doc.Root == nil {
		return true
	}
	empty := true
	var visit func(*html.Node)
	visit = func(n *html.Node) {
		if !empty {
			return
		}
		if n.Type == html.ElementNode {
			switch n.Data {
			case "html", "head", "body":
			default:
				empty = false
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(doc.Root)
	return empty
}
