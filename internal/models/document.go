// Package models defines the domain types for the experiments content service.
package models

// Metadata is the validated header of one experiment document. Slug is derived
// from the filename (stem, lowercase-hyphenated) and is unique across the corpus.
type Metadata struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags,omitempty"`
	Date        string   `json:"date,omitempty"`
	Author      string   `json:"author"`
	OSSProject  string   `json:"ossProject,omitempty"`
	PRLink      string   `json:"prLink,omitempty"`
}

// SearchResult is one ranked hit. Relevance is 0-100 relative to the
// theoretical per-token ceiling, not a percentile.
type SearchResult struct {
	Slug         string   `json:"slug"`
	Title        string   `json:"title"`
	Relevance    int      `json:"relevance"`
	MatchedTerms []string `json:"matchedTerms"`
	Excerpt      string   `json:"excerpt"`
}

// CategoryGroup pairs a category with its documents. Groups preserve
// first-seen category order, items preserve insertion order.
type CategoryGroup struct {
	Category  string     `json:"category"`
	Documents []Metadata `json:"documents"`
}
