package api

import "github.com/vishesh-baghel/portfolio-sub000/internal/models"

// ExperimentListResponse wraps a flat metadata listing.
type ExperimentListResponse struct {
	Experiments []models.Metadata `json:"experiments"`
	Total       int               `json:"total"`
}

// CategorizedResponse wraps the grouped catalog.
type CategorizedResponse struct {
	Categories []models.CategoryGroup `json:"categories"`
}

// ExperimentResponse is the assembled-document payload.
type ExperimentResponse struct {
	Slug     string           `json:"slug"`
	Metadata *models.Metadata `json:"metadata,omitempty"`
	Content  string           `json:"content"`
}

// SearchResponse wraps ranked search results.
type SearchResponse struct {
	Query   string                `json:"query"`
	Results []models.SearchResult `json:"results"`
}

// NotFoundResponse carries the valid slug list so clients can self-correct.
type NotFoundResponse struct {
	Error     string   `json:"error"`
	Available []string `json:"available"`
}

// InvalidCategoryResponse carries the valid categories.
type InvalidCategoryResponse struct {
	Error string   `json:"error"`
	Valid []string `json:"valid"`
}
