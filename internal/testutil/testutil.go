// Package testutil provides shared helpers for setting up content directories in tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vishesh-baghel/portfolio-sub000/internal/storage"
)

// WriteDoc writes a content file into dir and fails the test on error.
func WriteDoc(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

// ContentDir creates a temporary content directory with a Dir provider.
func ContentDir(t *testing.T) (string, *storage.Dir) {
	t.Helper()
	dir := t.TempDir()
	files, err := storage.NewDir(dir)
	if err != nil {
		t.Fatalf("NewDir: %v", err)
	}
	return dir, files
}

// SeedCorpus writes the standard three-document test corpus: a postgres
// write-up, an agents write-up, and a typescript write-up.
func SeedCorpus(t *testing.T, dir string) {
	t.Helper()
	WriteDoc(t, dir, "a.md", "---\n"+
		"title: Postgres caching\n"+
		"category: backend-database\n"+
		"tags:\n  - postgres\n"+
		"---\nCaching rows the boring way.\n")
	WriteDoc(t, dir, "b.md", "---\n"+
		"title: Agent basics\n"+
		"category: ai-agents\n"+
		"tags:\n  - agents\n"+
		"---\nTool loops and stop conditions.\n")
	WriteDoc(t, dir, "c.md", "---\n"+
		"title: TypeScript generics\n"+
		"category: typescript-patterns\n"+
		"tags:\n  - typescript\n"+
		"---\nConstraint tricks for library authors.\n")
}
