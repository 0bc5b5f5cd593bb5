package crawl

import (
	"net/url"

	"github.com/newshoundlabs/newshound"
)

// State identifies how far a source has advanced through the pipeline.
// Transitions are strictly sequential; a stage failure leaves the source
// at the last state it completed.
type State int

const (
	StateInit State = iota
	StateDownloaded
	StateParsed
	StateCategoriesSet
	StateCategoriesDownloaded
	StateCategoriesParsed
	StateFeedsSet
	StateFeedsDownloaded
	StateArticlesGenerated
	StateFormatted
)

var stateNames = map[State]string{
	StateInit:                 "Init",
	StateDownloaded:           "Downloaded",
	StateParsed:               "Parsed",
	StateCategoriesSet:        "CategoriesSet",
	StateCategoriesDownloaded: "CategoriesDownloaded",
	StateCategoriesParsed:     "CategoriesParsed",
	StateFeedsSet:             "FeedsSet",
	StateFeedsDownloaded:      "FeedsDownloaded",
	StateArticlesGenerated:    "ArticlesGenerated",
	StateFormatted:            "Formatted",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "Unknown"
}

// page is one fetched-and-parsed URL carried between stages.
type page struct {
	url    string
	markup string
	doc    *newshound.Document
}

// Source tracks one news site through the crawl pipeline. It accumulates
// the homepage, category pages, feeds and generated articles as the
// crawler advances its state; whatever has accumulated when a stage fails
// is the final result.
type Source struct {
	// URL is the site's homepage address.
	URL string

	state      State
	markup     string
	doc        *newshound.Document
	categories []*page
	feeds      []*page
	candidates []string
	groups     map[string][]*newshound.Article
	groupOrder []string
}

// NewSource validates the site URL and returns a source in the Init state.
func NewSource(siteURL string) (*Source, error) {
	u, err := url.Parse(siteURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, newshound.Errorf(newshound.EINVALID, "invalid site URL: %q", siteURL)
	}
	return &Source{
		URL:    u.String(),
		groups: make(map[string][]*newshound.Article),
	}, nil
}

// State returns the last pipeline state the source completed.
func (s *Source) State() State {
	return s.state
}

// Articles returns the grouped articles accumulated so far, keyed by
// normalized host plus first path segment. The map is never nil.
func (s *Source) Articles() map[string][]*newshound.Article {
	return s.groups
}
