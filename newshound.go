// Package newshound extracts structured article data from news site HTML
// and generalizes a successful extraction into a reusable structural
// template, so that many structurally identical pages on the same site can
// be processed without re-running the heuristics.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., htmlquery/, stopwords/, gofeed/);
// orchestration lives in crawl/.
package newshound
