package api

import (
	"github.com/vishesh-baghel/portfolio-sub000/internal/apperr"
	"github.com/vishesh-baghel/portfolio-sub000/internal/docstore"
	"github.com/vishesh-baghel/portfolio-sub000/internal/models"
	"github.com/vishesh-baghel/portfolio-sub000/internal/search"
)

// Service exposes the document store to the JSON API layer.
type Service struct {
	store *docstore.Store
}

// NewService creates a new API service.
func NewService(store *docstore.Store) *Service {
	return &Service{store: store}
}

// ListExperiments returns metadata for a category ("all" or empty for every
// document). An unknown category yields *apperr.InvalidCategoryError.
func (s *Service) ListExperiments(category string) ([]models.Metadata, error) {
	if category == "" {
		category = models.CategoryAll
	}
	if category != models.CategoryAll && !models.ValidCategory(category) {
		return nil, &apperr.InvalidCategoryError{Category: category, Valid: models.Categories}
	}
	return s.store.FilterByCategory(category), nil
}

// Categorized returns all metadata grouped by category.
func (s *Service) Categorized() []models.CategoryGroup {
	return s.store.Categorized()
}

// GetExperiment returns the assembled document for a slug.
func (s *Service) GetExperiment(slug string, includeMetadata bool) (docstore.Rendered, error) {
	return s.store.LoadContent(slug, includeMetadata)
}

// SearchExperiments ranks the corpus against query.
func (s *Service) SearchExperiments(query string, limit int, categories []string) []models.SearchResult {
	candidates, contents := s.store.Corpus(categories)
	return search.Search(candidates, contents, query, limit)
}
