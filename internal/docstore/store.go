// Package docstore is the sole authority for reading experiment documents from
// the backing directory. It owns two lazy caches: validated metadata keyed by
// slug, and fully assembled content keyed by slug plus the metadata flag.
package docstore

import (
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/vishesh-baghel/portfolio-sub000/internal/apperr"
	"github.com/vishesh-baghel/portfolio-sub000/internal/assemble"
	"github.com/vishesh-baghel/portfolio-sub000/internal/models"
	"github.com/vishesh-baghel/portfolio-sub000/internal/schema"
	"github.com/vishesh-baghel/portfolio-sub000/internal/storage"
)

// Rendered is an assembled document: validated metadata plus the final
// deliverable content (optional metadata block, body, attribution footer).
type Rendered struct {
	Meta    models.Metadata `json:"metadata"`
	Content string          `json:"content"`
}

// Store reads, validates, assembles, and caches experiment documents.
type Store struct {
	files  storage.Provider
	asm    *assemble.Assembler
	logger *slog.Logger

	mu           sync.RWMutex
	metaCache    map[string]models.Metadata
	contentCache map[string]Rendered
}

// New creates a Store over the given provider.
func New(files storage.Provider, asm *assemble.Assembler, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		files:        files,
		asm:          asm,
		logger:       logger,
		metaCache:    make(map[string]models.Metadata),
		contentCache: make(map[string]Rendered),
	}
}

// Slug derives a document slug from its file name (stem without extension).
func Slug(filename string) string {
	return strings.TrimSuffix(filename, filepath.Ext(filename))
}

// LoadAllMetadata lists the content directory and returns validated metadata
// for every parseable document, in directory iteration order. Files that fail
// validation are skipped with a warning; an unreadable directory degrades to
// an empty listing rather than an error.
func (s *Store) LoadAllMetadata() []models.Metadata {
	names, err := s.files.List()
	if err != nil {
		s.logger.Warn("docstore: list content dir failed, serving empty catalog",
			slog.String("error", err.Error()))
		return nil
	}
	var out []models.Metadata
	for _, name := range names {
		meta, err := s.LoadMetadata(name)
		if err != nil {
			s.logger.Warn("docstore: skipping invalid document",
				slog.String("file", name),
				slog.String("error", err.Error()))
			continue
		}
		out = append(out, meta)
	}
	return out
}

// LoadMetadata parses and validates a single document's metadata header,
// injecting the slug derived from filename. Validation failures propagate.
func (s *Store) LoadMetadata(filename string) (models.Metadata, error) {
	slug := Slug(filename)

	s.mu.RLock()
	meta, ok := s.metaCache[slug]
	s.mu.RUnlock()
	if ok {
		return meta, nil
	}

	data, err := s.files.Read(filename)
	if err != nil {
		return models.Metadata{}, err
	}
	meta, _, err = schema.Parse(slug, data)
	if err != nil {
		return models.Metadata{}, err
	}

	s.mu.Lock()
	s.metaCache[slug] = meta
	s.mu.Unlock()
	return meta, nil
}

// LoadContent returns the fully assembled document for a slug. The result is
// cached per (slug, includeMetadata). A missing slug yields a
// *apperr.NotFoundError carrying every valid slug.
func (s *Store) LoadContent(slug string, includeMetadata bool) (Rendered, error) {
	key := slug + "|" + strconv.FormatBool(includeMetadata)

	s.mu.RLock()
	r, ok := s.contentCache[key]
	s.mu.RUnlock()
	if ok {
		return r, nil
	}

	filename, ok := s.resolve(slug)
	if !ok {
		all := s.LoadAllMetadata()
		slugs := make([]string, len(all))
		for i, m := range all {
			slugs[i] = m.Slug
		}
		return Rendered{}, &apperr.NotFoundError{Slug: slug, Available: slugs}
	}

	data, err := s.files.Read(filename)
	if err != nil {
		return Rendered{}, err
	}
	meta, body, err := schema.Parse(slug, data)
	if err != nil {
		return Rendered{}, err
	}

	var parts []string
	if includeMetadata {
		if block := s.asm.FormatMetadata(meta); block != "" {
			parts = append(parts, block)
		}
	}
	parts = append(parts, strings.TrimSpace(body), s.asm.GenerateAttribution(meta))
	r = Rendered{Meta: meta, Content: strings.Join(parts, "\n\n")}

	s.mu.Lock()
	s.contentCache[key] = r
	s.mu.Unlock()
	return r, nil
}

// Body returns a document's raw body text without decorations, for scoring.
func (s *Store) Body(slug string) (string, error) {
	filename, ok := s.resolve(slug)
	if !ok {
		return "", &apperr.NotFoundError{Slug: slug}
	}
	data, err := s.files.Read(filename)
	if err != nil {
		return "", err
	}
	_, body, err := schema.Parse(slug, data)
	if err != nil {
		return "", err
	}
	return body, nil
}

// FilterByCategory returns all metadata when category is "all", otherwise the
// documents matching it exactly. Category validity is the caller's concern.
func (s *Store) FilterByCategory(category string) []models.Metadata {
	all := s.LoadAllMetadata()
	if category == models.CategoryAll {
		return all
	}
	var out []models.Metadata
	for _, m := range all {
		if m.Category == category {
			out = append(out, m)
		}
	}
	return out
}

// Categorized groups all metadata by category, preserving first-seen category
// order and within-category insertion order.
func (s *Store) Categorized() []models.CategoryGroup {
	var groups []models.CategoryGroup
	index := make(map[string]int)
	for _, m := range s.LoadAllMetadata() {
		i, ok := index[m.Category]
		if !ok {
			i = len(groups)
			index[m.Category] = i
			groups = append(groups, models.CategoryGroup{Category: m.Category})
		}
		groups[i].Documents = append(groups[i].Documents, m)
	}
	return groups
}

// ClearCache empties both caches. Used for test isolation and after content
// changes on disk; no other side effects.
func (s *Store) ClearCache() {
	s.mu.Lock()
	s.metaCache = make(map[string]models.Metadata)
	s.contentCache = make(map[string]Rendered)
	s.mu.Unlock()
}

// Corpus returns the search candidate set: all metadata (optionally restricted
// to the given categories) plus raw body text by slug. Documents whose body
// cannot be loaded are skipped with a warning, not failed.
func (s *Store) Corpus(categories []string) ([]models.Metadata, map[string]string) {
	docs := s.LoadAllMetadata()
	if len(categories) > 0 {
		allowed := make(map[string]struct{}, len(categories))
		for _, c := range categories {
			allowed[c] = struct{}{}
		}
		var filtered []models.Metadata
		for _, m := range docs {
			if _, ok := allowed[m.Category]; ok {
				filtered = append(filtered, m)
			}
		}
		docs = filtered
	}

	contents := make(map[string]string, len(docs))
	candidates := docs[:0:0]
	for _, m := range docs {
		body, err := s.Body(m.Slug)
		if err != nil {
			s.logger.Warn("docstore: skipping unreadable document",
				slog.String("slug", m.Slug),
				slog.String("error", err.Error()))
			continue
		}
		contents[m.Slug] = body
		candidates = append(candidates, m)
	}
	return candidates, contents
}

// resolve maps a slug to its backing file name; .md wins over .mdx.
func (s *Store) resolve(slug string) (string, bool) {
	for _, ext := range []string{".md", ".mdx"} {
		if s.files.Exists(slug + ext) {
			return slug + ext, true
		}
	}
	return "", false
}
