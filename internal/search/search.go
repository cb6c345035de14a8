// Package search implements stateless relevance scoring and ranking of
// experiment documents against a free-text query.
package search

import (
	"math"
	"sort"
	"strings"

	"github.com/vishesh-baghel/portfolio-sub000/internal/models"
)

// Field weights, in order of precedence. A token may contribute to multiple
// fields; each field adds its weight once per token, not per occurrence.
const (
	weightTitle       = 10
	weightTag         = 5
	weightDescription = 3
	weightCategory    = 3
	weightContent     = 1
)

// DefaultMaxResults is used when the caller does not bound the result count.
const DefaultMaxResults = 5

// contextLength is the excerpt window width in characters.
const contextLength = 150

// Search scores each candidate document against query and returns at most
// maxResults hits ordered by non-increasing relevance. Ties keep candidate
// input order. contents maps slug to raw body text; a missing entry simply
// means the body field cannot match. An empty query yields no results.
func Search(docs []models.Metadata, contents map[string]string, query string, maxResults int) []models.SearchResult {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	tokens := tokenize(query)
	if len(tokens) == 0 {
		return nil
	}

	var results []models.SearchResult
	for _, doc := range docs {
		content := contents[doc.Slug]
		raw, matched := score(doc, content, tokens)
		if len(matched) > 1 {
			raw += len(matched) * 2
		}

		// Relevance is relative to the all-tokens-in-title ceiling; raw can
		// exceed it when many fields match, so clamp rather than re-derive.
		relevance := int(math.Round(float64(raw) / float64(len(tokens)*10) * 100))
		if relevance > 100 {
			relevance = 100
		}
		if relevance == 0 {
			continue
		}

		results = append(results, models.SearchResult{
			Slug:         doc.Slug,
			Title:        doc.Title,
			Relevance:    relevance,
			MatchedTerms: matched,
			Excerpt:      excerpt(doc, content, matched, tokens),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Relevance > results[j].Relevance
	})
	if len(results) > maxResults {
		results = results[:maxResults]
	}
	return results
}

// tokenize splits query on whitespace, lower-cases, and drops empty tokens.
func tokenize(query string) []string {
	return strings.Fields(strings.ToLower(query))
}

// score computes the weighted raw score and the matched tokens in first-seen
// order. Matching is case-insensitive substring containment per field.
func score(doc models.Metadata, content string, tokens []string) (int, []string) {
	title := strings.ToLower(doc.Title)
	description := strings.ToLower(doc.Description)
	category := strings.ToLower(doc.Category)
	body := strings.ToLower(content)
	tags := make([]string, len(doc.Tags))
	for i, t := range doc.Tags {
		tags[i] = strings.ToLower(t)
	}

	raw := 0
	var matched []string
	for _, tok := range tokens {
		hit := false
		if strings.Contains(title, tok) {
			raw += weightTitle
			hit = true
		}
		for _, tag := range tags {
			if strings.Contains(tag, tok) {
				raw += weightTag
				hit = true
				break
			}
		}
		if description != "" && strings.Contains(description, tok) {
			raw += weightDescription
			hit = true
		}
		if strings.Contains(category, tok) {
			raw += weightCategory
			hit = true
		}
		if body != "" && strings.Contains(body, tok) {
			raw += weightContent
			hit = true
		}
		if hit && !contains(matched, tok) {
			matched = append(matched, tok)
		}
	}
	return raw, matched
}

// excerpt returns a contextual window around the first matched term (or the
// first query token) in the best available text source: content, else
// description, else title. Sides clamped by the window are marked with "...".
func excerpt(doc models.Metadata, content string, matched, tokens []string) string {
	source := content
	if source == "" {
		source = doc.Description
	}
	if source == "" {
		source = doc.Title
	}

	term := tokens[0]
	if len(matched) > 0 {
		term = matched[0]
	}

	idx := strings.Index(strings.ToLower(source), term)
	if idx < 0 {
		if len(source) <= contextLength {
			return source
		}
		return source[:contextLength] + "..."
	}

	start := idx - contextLength/2
	if start < 0 {
		start = 0
	}
	end := idx + contextLength/2
	if end > len(source) {
		end = len(source)
	}

	out := source[start:end]
	if start > 0 {
		out = "..." + out
	}
	if end < len(source) {
		out += "..."
	}
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
