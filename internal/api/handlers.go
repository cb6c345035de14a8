package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/vishesh-baghel/portfolio-sub000/internal/apperr"
	"github.com/vishesh-baghel/portfolio-sub000/internal/checksum"
	"github.com/vishesh-baghel/portfolio-sub000/internal/models"
	"github.com/vishesh-baghel/portfolio-sub000/internal/search"
)

// Handler bundles the HTTP handlers over the API service.
type Handler struct {
	svc *Service
}

// NewHandler creates a new API handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// ListExperiments handles GET /experiments?category=.
// Without a category (or with "all") it returns the grouped catalog.
func (h *Handler) ListExperiments(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category == "" || category == models.CategoryAll {
		writeJSON(w, http.StatusOK, CategorizedResponse{Categories: h.svc.Categorized()})
		return
	}

	items, err := h.svc.ListExperiments(category)
	if err != nil {
		var ic *apperr.InvalidCategoryError
		if errors.As(err, &ic) {
			writeJSON(w, http.StatusBadRequest, InvalidCategoryResponse{
				Error: "invalid category: " + ic.Category,
				Valid: append([]string{models.CategoryAll}, ic.Valid...),
			})
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorBody(err.Error()))
		return
	}
	if items == nil {
		items = []models.Metadata{}
	}
	writeJSON(w, http.StatusOK, ExperimentListResponse{Experiments: items, Total: len(items)})
}

// GetExperiment handles GET /experiments/{slug}?metadata=.
func (h *Handler) GetExperiment(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	includeMetadata := true
	if v := r.URL.Query().Get("metadata"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody("metadata must be a boolean"))
			return
		}
		includeMetadata = b
	}

	rendered, err := h.svc.GetExperiment(slug, includeMetadata)
	if err != nil {
		var nf *apperr.NotFoundError
		if errors.As(err, &nf) {
			writeJSON(w, http.StatusNotFound, NotFoundResponse{
				Error:     "experiment not found: " + nf.Slug,
				Available: nf.Available,
			})
			return
		}
		if errors.Is(err, apperr.ErrValidation) {
			writeJSON(w, http.StatusUnprocessableEntity, errorBody(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorBody(err.Error()))
		return
	}

	w.Header().Set("ETag", `"`+checksum.Sum([]byte(rendered.Content))+`"`)
	resp := ExperimentResponse{Slug: slug, Content: rendered.Content}
	if includeMetadata {
		meta := rendered.Meta
		resp.Metadata = &meta
	}
	writeJSON(w, http.StatusOK, resp)
}

// Search handles GET /search?q=&limit=&categories=a,b.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if strings.TrimSpace(query) == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("q is required"))
		return
	}

	limit := search.DefaultMaxResults
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 10 {
			writeJSON(w, http.StatusBadRequest, errorBody("limit must be an integer between 1 and 10"))
			return
		}
		limit = n
	}

	var categories []string
	if v := r.URL.Query().Get("categories"); v != "" {
		for _, c := range strings.Split(v, ",") {
			if c = strings.TrimSpace(c); c != "" {
				categories = append(categories, c)
			}
		}
	}

	results := h.svc.SearchExperiments(query, limit, categories)
	if results == nil {
		results = []models.SearchResult{}
	}
	writeJSON(w, http.StatusOK, SearchResponse{Query: query, Results: results})
}
