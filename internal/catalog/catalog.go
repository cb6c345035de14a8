// Package catalog renders the list, get and search operations as display
// strings for the MCP tools and any other consumer that embeds them verbatim
// in an assistant's context window.
package catalog

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/vishesh-baghel/portfolio-sub000/internal/apperr"
	"github.com/vishesh-baghel/portfolio-sub000/internal/docstore"
	"github.com/vishesh-baghel/portfolio-sub000/internal/models"
	"github.com/vishesh-baghel/portfolio-sub000/internal/search"
)

// Service is the tool façade over the document store and search engine.
type Service struct {
	store  *docstore.Store
	logger *slog.Logger
}

// NewService creates the catalog service.
func NewService(store *docstore.Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, logger: logger}
}

// List renders the experiment catalog. With category "all" (or empty) it
// groups by category; otherwise it renders a flat listing for that category.
// An unknown category yields a help message, never an error.
func (s *Service) List(category string) string {
	if category == "" {
		category = models.CategoryAll
	}
	if category != models.CategoryAll && !models.ValidCategory(category) {
		e := &apperr.InvalidCategoryError{Category: category, Valid: models.Categories}
		return e.Error()
	}

	var b strings.Builder
	if category == models.CategoryAll {
		groups := s.store.Categorized()
		if len(groups) == 0 {
			return "No experiments found."
		}
		b.WriteString("# Experiments\n")
		for _, g := range groups {
			fmt.Fprintf(&b, "\n## %s\n\n", models.CategoryTitle(g.Category))
			for _, m := range g.Documents {
				writeItem(&b, m)
			}
		}
	} else {
		docs := s.store.FilterByCategory(category)
		if len(docs) == 0 {
			return fmt.Sprintf("No experiments found in category %q.", category)
		}
		fmt.Fprintf(&b, "# Experiments: %s\n\n", models.CategoryTitle(category))
		for _, m := range docs {
			writeItem(&b, m)
		}
	}
	b.WriteString("\nUse getExperiment with a slug to read the full write-up.")
	return b.String()
}

func writeItem(b *strings.Builder, m models.Metadata) {
	line := m.Description
	if line == "" {
		line = m.Title
	}
	fmt.Fprintf(b, "- **%s** — %s\n", m.Slug, line)
	if len(m.Tags) > 0 {
		fmt.Fprintf(b, "  Tags: %s\n", strings.Join(m.Tags, ", "))
	}
}

// Get returns the assembled document for a slug. A not-found error's message
// carries the valid slug list and is meant to be surfaced as-is.
func (s *Service) Get(slug string, includeMetadata bool) (string, error) {
	r, err := s.store.LoadContent(slug, includeMetadata)
	if err != nil {
		return "", err
	}
	return r.Content, nil
}

// Search ranks the catalog against query and renders a numbered result list,
// or tips when nothing matches. categories, when non-empty, restricts the
// candidate set before scoring. Candidates whose body cannot be loaded are
// skipped with a warning, not failed.
func (s *Service) Search(query string, maxResults int, categories []string) string {
	candidates, contents := s.store.Corpus(categories)
	results := search.Search(candidates, contents, query, maxResults)
	s.logger.Debug("search complete",
		slog.String("query", query),
		slog.Int("candidates", len(candidates)),
		slog.Int("results", len(results)))
	if len(results) == 0 {
		return noResults(query)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Search results for %q\n\n", query)
	for i, r := range results {
		fmt.Fprintf(&b, "%d. **%s** — %s (relevance %d%%)\n", i+1, r.Slug, r.Title, r.Relevance)
		fmt.Fprintf(&b, "   Matched: %s\n", strings.Join(r.MatchedTerms, ", "))
		fmt.Fprintf(&b, "   > %s\n\n", r.Excerpt)
	}
	b.WriteString("Use getExperiment with a slug to read the full write-up.")
	return b.String()
}

func noResults(query string) string {
	return fmt.Sprintf("No results for %q.\n\nTips:\n"+
		"- Try broader or fewer terms\n"+
		"- Search by topic (e.g. \"postgres\", \"agents\", \"generics\")\n"+
		"- Use listExperiments to browse everything by category", query)
}
