package catalog

import (
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/vishesh-baghel/portfolio-sub000/internal/apperr"
	"github.com/vishesh-baghel/portfolio-sub000/internal/assemble"
	"github.com/vishesh-baghel/portfolio-sub000/internal/docstore"
	"github.com/vishesh-baghel/portfolio-sub000/internal/testutil"
)

func testService(t *testing.T) *Service {
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
	return NewService(docstore.New(files, asm, logger), logger)
}

func TestList_AllGroupsByCategory(t *testing.T) {
	svc := testService(t)
	got := svc.List("all")

	for _, want := range []string{
		"## Backend & Database",
		"## AI Agents",
		"## TypeScript Patterns",
		"- **a**",
		"- **b**",
		"- **c**",
		"Tags: postgres",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("listing missing %q:\n%s", want, got)
		}
	}
}

func TestList_EmptyCategoryDefaultsToAll(t *testing.T) {
	svc := testService(t)
	if svc.List("") != svc.List("all") {
		t.Error("empty category should behave like all")
	}
}

func TestList_SingleCategory(t *testing.T) {
	svc := testService(t)
	got := svc.List("ai-agents")

	if !strings.Contains(got, "- **b**") {
		t.Errorf("missing document b:\n%s", got)
	}
	if strings.Contains(got, "- **a**") || strings.Contains(got, "- **c**") {
		t.Errorf("other categories leaked into listing:\n%s", got)
	}
}

func TestList_InvalidCategoryRendersHelp(t *testing.T) {
	svc := testService(t)
	got := svc.List("nonexistent-category")

	if !strings.Contains(got, "Invalid category") {
		t.Errorf("missing invalid-category notice: %q", got)
	}
	for _, c := range []string{"all", "getting-started", "ai-agents", "backend-database", "typescript-patterns"} {
		if !strings.Contains(got, c) {
			t.Errorf("missing valid category %q: %q", c, got)
		}
	}
}

func TestGet_ReturnsAssembledContent(t *testing.T) {
	svc := testService(t)
	got, err := svc.Get("a", true)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !strings.Contains(got, "Caching rows the boring way.") {
		t.Errorf("body missing:\n%s", got)
	}
	if !strings.Contains(got, "Source & Attribution") {
		t.Errorf("attribution missing:\n%s", got)
	}
}

func TestGet_NotFoundMessageIsDeliverable(t *testing.T) {
	svc := testService(t)
	_, err := svc.Get("does-not-exist", true)
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected not-found, got %v", err)
	}
	msg := err.Error()
	if !strings.Contains(msg, "not found") || !strings.Contains(msg, "Available experiments:") {
		t.Errorf("message not self-correcting: %q", msg)
	}
}

func TestSearch_RendersRankedList(t *testing.T) {
	svc := testService(t)
	got := svc.Search("postgres", 5, nil)

	for _, want := range []string{"1. **a**", "relevance 100%", "Matched: postgres", "getExperiment"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q:\n%s", want, got)
		}
	}
}

func TestSearch_NoResultsRendersTips(t *testing.T) {
	svc := testService(t)
	got := svc.Search("quantum chromodynamics", 5, nil)

	if !strings.Contains(got, "No results") || !strings.Contains(got, "Tips:") {
		t.Errorf("missing tips message:\n%s", got)
	}
}

func TestSearch_CategoryRestriction(t *testing.T) {
	svc := testService(t)
	// "agent" matches b, but the category filter excludes it.
	got := svc.Search("agent", 5, []string{"backend-database"})
	if !strings.Contains(got, "No results") {
		t.Errorf("category filter not applied:\n%s", got)
	}
}
