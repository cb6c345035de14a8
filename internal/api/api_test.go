package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/vishesh-baghel/portfolio-sub000/internal/assemble"
	"github.com/vishesh-baghel/portfolio-sub000/internal/docstore"
	"github.com/vishesh-baghel/portfolio-sub000/internal/testutil"
)

func testRouter(t *testing.T, authEnabled bool, token string) http.Handler {
	t.Helper()
	dir, files := testutil.ContentDir(t)
	testutil.SeedCorpus(t, dir)
	asm := assemble.New(assemble.Links{
		SiteURL:     "https://example.com",
		BookingURL:  "https://cal.example.com/book",
		GitHubURL:   "https://github.com/example",
		LinkedInURL: "https://linkedin.com/in/example",
		Source:      "mcp",
		Medium:      "content-tool",
	})
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := docstore.New(files, asm, logger)
	return NewRouter(NewService(store), authEnabled, token, nil)
}

func get(t *testing.T, h http.Handler, path string, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decode: %v (body %q)", err, rec.Body.String())
	}
	return v
}

func TestListExperiments_Grouped(t *testing.T) {
	h := testRouter(t, false, "")
	rec := get(t, h, "/experiments", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	resp := decode[CategorizedResponse](t, rec)
	if len(resp.Categories) != 3 {
		t.Errorf("categories = %d, want 3", len(resp.Categories))
	}
}

func TestListExperiments_ByCategory(t *testing.T) {
	h := testRouter(t, false, "")
	rec := get(t, h, "/experiments?category=ai-agents", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	resp := decode[ExperimentListResponse](t, rec)
	if resp.Total != 1 || resp.Experiments[0].Slug != "b" {
		t.Errorf("resp = %+v", resp)
	}
}

func TestListExperiments_InvalidCategory(t *testing.T) {
	h := testRouter(t, false, "")
	rec := get(t, h, "/experiments?category=cooking", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	resp := decode[InvalidCategoryResponse](t, rec)
	if len(resp.Valid) == 0 || resp.Valid[0] != "all" {
		t.Errorf("valid = %v", resp.Valid)
	}
}

func TestGetExperiment(t *testing.T) {
	h := testRouter(t, false, "")
	rec := get(t, h, "/experiments/a", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d (body %s)", rec.Code, rec.Body.String())
	}
	if rec.Header().Get("ETag") == "" {
		t.Error("missing ETag header")
	}
	resp := decode[ExperimentResponse](t, rec)
	if resp.Metadata == nil || resp.Metadata.Title != "Postgres caching" {
		t.Errorf("metadata = %+v", resp.Metadata)
	}
}

func TestGetExperiment_WithoutMetadata(t *testing.T) {
	h := testRouter(t, false, "")
	rec := get(t, h, "/experiments/a?metadata=false", nil)
	resp := decode[ExperimentResponse](t, rec)
	if resp.Metadata != nil {
		t.Errorf("metadata should be omitted, got %+v", resp.Metadata)
	}
}

func TestGetExperiment_NotFound(t *testing.T) {
	h := testRouter(t, false, "")
	rec := get(t, h, "/experiments/nope", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
	resp := decode[NotFoundResponse](t, rec)
	if len(resp.Available) != 3 {
		t.Errorf("available = %v", resp.Available)
	}
}

func TestSearch(t *testing.T) {
	h := testRouter(t, false, "")
	rec := get(t, h, "/search?q=postgres", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	resp := decode[SearchResponse](t, rec)
	if len(resp.Results) != 1 || resp.Results[0].Slug != "a" {
		t.Errorf("results = %+v", resp.Results)
	}
}

func TestSearch_MissingQuery(t *testing.T) {
	h := testRouter(t, false, "")
	if rec := get(t, h, "/search", nil); rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d", rec.Code)
	}
}

func TestSearch_LimitOutOfRange(t *testing.T) {
	h := testRouter(t, false, "")
	if rec := get(t, h, "/search?q=postgres&limit=99", nil); rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d", rec.Code)
	}
}

func TestAuth_Enforced(t *testing.T) {
	h := testRouter(t, true, "secret")

	if rec := get(t, h, "/experiments", nil); rec.Code != http.StatusUnauthorized {
		t.Errorf("no token: status = %d", rec.Code)
	}
	if rec := get(t, h, "/experiments", map[string]string{"Authorization": "Bearer wrong"}); rec.Code != http.StatusUnauthorized {
		t.Errorf("wrong token: status = %d", rec.Code)
	}
	if rec := get(t, h, "/experiments", map[string]string{"Authorization": "Bearer secret"}); rec.Code != http.StatusOK {
		t.Errorf("valid token: status = %d", rec.Code)
	}
}
