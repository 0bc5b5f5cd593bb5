package mock

import "github.com/newshoundlabs/newshound"

var _ newshound.Resolver = (*Resolver)(nil)

// Resolver is a mock implementation of newshound.Resolver. Unset field
// functions return zero values so tests only wire what they assert on.
type Resolver struct {
	ResolveTitleFn       func(doc *newshound.Document) newshound.NodeRef
	ResolveAuthorsFn     func(doc *newshound.Document) []newshound.NodeRef
	ResolveLanguageFn    func(doc *newshound.Document) newshound.NodeRef
	ResolveFaviconFn     func(doc *newshound.Document) newshound.NodeRef
	ResolveDescriptionFn func(doc *newshound.Document) newshound.NodeRef
	ResolveKeywordsFn    func(doc *newshound.Document) newshound.NodeRef
	ResolveCanonicalFn   func(doc *newshound.Document) newshound.NodeRef
	ResolveTagsFn        func(doc *newshound.Document) newshound.TagSet
	ResolveMetadataFn    func(doc *newshound.Document) newshound.MetaMap
	ResolvePublishDateFn func(url string, doc *newshound.Document) newshound.NodeRef
	ResolveVideosFn      func(doc *newshound.Document, content newshound.NodeRef) []newshound.Video
}

func (r *Resolver) ResolveTitle(doc *newshound.Document) newshound.NodeRef {
	if r.ResolveTitleFn == nil {
		return newshound.NodeRef{}
	}
	return r.ResolveTitleFn(doc)
}

func (r *Resolver) ResolveAuthors(doc *newshound.Document) []newshound.NodeRef {
	if r.ResolveAuthorsFn == nil {
		return nil
	}
	return r.ResolveAuthorsFn(doc)
}

func (r *Resolver) ResolveLanguage(doc *newshound.Document) newshound.NodeRef {
	if r.ResolveLanguageFn == nil {
		return newshound.NodeRef{}
	}
	return r.ResolveLanguageFn(doc)
}

func (r *Resolver) ResolveFavicon(doc *newshound.Document) newshound.NodeRef {
	if r.ResolveFaviconFn == nil {
		return newshound.NodeRef{}
	}
	return r.ResolveFaviconFn(doc)
}

func (r *Resolver) ResolveDescription(doc *newshound.Document) newshound.NodeRef {
	if r.ResolveDescriptionFn == nil {
		return newshound.NodeRef{}
	}
	return r.ResolveDescriptionFn(doc)
}

func (r *Resolver) ResolveKeywords(doc *newshound.Document) newshound.NodeRef {
	if r.ResolveKeywordsFn == nil {
		return newshound.NodeRef{}
	}
	return r.ResolveKeywordsFn(doc)
}

func (r *Resolver) ResolveCanonical(doc *newshound.Document) newshound.NodeRef {
	if r.ResolveCanonicalFn == nil {
		return newshound.NodeRef{}
	}
	return r.ResolveCanonicalFn(doc)
}

func (r *Resolver) ResolveTags(doc *newshound.Document) newshound.TagSet {
	if r.ResolveTagsFn == nil {
		return newshound.TagSet{Refs: []newshound.NodeRef{}}
	}
	return r.ResolveTagsFn(doc)
}

func (r *Resolver) ResolveMetadata(doc *newshound.Document) newshound.MetaMap {
	if r.ResolveMetadataFn == nil {
		return newshound.MetaMap{}
	}
	return r.ResolveMetadataFn(doc)
}

func (r *Resolver) ResolvePublishDate(url string, doc *newshound.Document) newshound.NodeRef {
	if r.ResolvePublishDateFn == nil {
		return newshound.NodeRef{}
	}
	return r.ResolvePublishDateFn(url, doc)
}

func (r *Resolver) ResolveVideos(doc *newshound.Document, content newshound.NodeRef) []newshound.Video {
	if r.ResolveVideosFn == nil {
		return nil
	}
	return r.ResolveVideosFn(doc, content)
}
