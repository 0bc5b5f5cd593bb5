package extract

import (
	"strings"

	"github.com/newshoundlabs/newshound"
)

// Ensure Engine implements newshound.TemplateEngine at compile time.
var _ newshound.TemplateEngine = (*Engine)(nil)

// Engine replays a resolved article's locators against sibling documents.
type Engine struct {
	dom newshound.DOM
}

// NewEngine creates a template engine backed by the given DOM provider.
func NewEngine(dom newshound.DOM) *Engine {
	return &Engine{dom: dom}
}

// Apply re-evaluates each locator in template against doc. Title and
// content are structurally required: a template without their locators,
// or a document where they match nothing, yields EMISMATCH. Every other
// field degrades to empty on a miss.
func (e *Engine) Apply(template *newshound.Article, doc *newshound.Document) (*newshound.Article, error) {
	if template == nil {
		return nil, newshound.Errorf(newshound.EINVALID, "nil template")
	}
	if doc == nil {
		return nil, newshound.Errorf(newshound.EINVALID, "nil document")
	}

	out := &newshound.Article{
		URL:       doc.URL,
		Templated: true,
	}

	title, err := e.required(doc, template.Title.Path, "title")
	if err != nil {
		return nil, err
	}
	out.Title = title

	content, err := e.requiredText(doc, template.Content.Path, "content")
	if err != nil {
		return nil, err
	}
	out.Content = content

	for _, path := range uniquePaths(template.Authors) {
		if ref := e.first(doc, path); !ref.Zero() {
			out.Authors = append(out.Authors, ref)
		}
	}

	out.Language = e.optional(doc, template.Language.Path)
	out.Favicon = e.optional(doc, template.Favicon.Path)
	out.Description = e.optional(doc, template.Description.Path)
	out.Keywords = e.optional(doc, template.Keywords.Path)
	out.Canonical = e.optional(doc, template.Canonical.Path)
	out.PublishDate = e.optional(doc, template.PublishDate.Path)

	if template.Tags.Attempted() {
		out.Tags = newshound.TagSet{Refs: []newshound.NodeRef{}}
		for _, path := range template.Tags.Paths() {
			if ref := e.first(doc, path); !ref.Zero() {
				out.Tags.Refs = append(out.Tags.Refs, ref)
			}
		}
	}

	if len(template.Metadata) > 0 {
		out.Metadata = newshound.MetaMap{}
		for k, v := range template.Metadata {
			out.Metadata[k] = v
		}
	}

	return out, nil
}

// required resolves a must-have field or fails with EMISMATCH.
func (e *Engine) required(doc *newshound.Document, path, field string) (newshound.NodeRef, error) {
	if path == "" {
		return newshound.NodeRef{}, newshound.Errorf(newshound.EMISMATCH, "template has no %s locator", field)
	}
	refs, err := e.dom.Evaluate(doc, path)
	if err != nil || len(refs) == 0 {
		return newshound.NodeRef{}, newshound.Errorf(newshound.EMISMATCH, "%s locator %q matched nothing in %s", field, path, doc.URL)
	}
	return refs[0], nil
}

// requiredText resolves a must-have multi-text field, joining the match
// texts with newlines under the shared locator.
func (e *Engine) requiredText(doc *newshound.Document, path, field string) (newshound.NodeRef, error) {
	if path == "" {
		return newshound.NodeRef{}, newshound.Errorf(newshound.EMISMATCH, "template has no %s locator", field)
	}
	refs, err := e.dom.Evaluate(doc, path)
	if err != nil || len(refs) == 0 {
		return newshound.NodeRef{}, newshound.Errorf(newshound.EMISMATCH, "%s locator %q matched nothing in %s", field, path, doc.URL)
	}

	texts := make([]string, 0, len(refs))
	for _, ref := range refs {
		if ref.Text != "" {
			texts = append(texts, ref.Text)
		}
	}
	return newshound.NodeRef{
		Element: refs[0].Element,
		Path:    path,
		Text:    strings.Join(texts, "\n"),
	}, nil
}

// optional resolves a nice-to-have field, degrading to a zero reference.
func (e *Engine) optional(doc *newshound.Document, path string) newshound.NodeRef {
	if path == "" {
		return newshound.NodeRef{}
	}
	return e.first(doc, path)
}

func (e *Engine) first(doc *newshound.Document, path string) newshound.NodeRef {
	refs, err := e.dom.Evaluate(doc, path)
	if err != nil || len(refs) == 0 {
		return newshound.NodeRef{}
	}
	return refs[0]
}

func uniquePaths(refs []newshound.NodeRef) []string {
	seen := make(map[string]bool, len(refs))
	var paths []string
	for _, ref := range refs {
		if ref.Path == "" || seen[ref.Path] {
			continue
		}
		seen[ref.Path] = true
		paths = append(paths, ref.Path)
	}
	return paths
}
