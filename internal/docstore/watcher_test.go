package docstore

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/vishesh-baghel/portfolio-sub000/internal/assemble"
	"github.com/vishesh-baghel/portfolio-sub000/internal/storage"
)

// eventually polls fn every tick until it returns true or timeout elapses.
func eventually(t *testing.T, timeout, tick time.Duration, fn func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if fn() {
			return
		}
		time.Sleep(tick)
	}
	t.Error(msg)
}

func watcherTestEnv(t *testing.T) (string, *Store) {
	t.Helper()
	dir := t.TempDir()
	files, err := storage.NewDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return dir, New(files, assemble.New(assemble.Links{}), logger)
}

func TestWatch_NewFileInvalidatesCache(t *testing.T) {
	dir, store := watcherTestEnv(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var mu sync.Mutex
	var events []string

	go func() {
		_ = Watch(ctx, store, dir, logger, func(kind, name string) {
			mu.Lock()
			events = append(events, kind+":"+name)
			mu.Unlock()
		})
	}()

	time.Sleep(100 * time.Millisecond)

	doc := "---\ntitle: Fresh\ncategory: ai-agents\n---\n\nBody."
	if err := os.WriteFile(filepath.Join(dir, "fresh.md"), []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	eventually(t, 5*time.Second, 50*time.Millisecond, func() bool {
		mu.Lock()
		defer mu.Unlock()
		for _, e := range events {
			if e == "created:fresh.md" {
				return true
			}
		}
		return false
	}, "expected created:fresh.md callback")

	if _, err := store.LoadMetadata("fresh.md"); err != nil {
		t.Errorf("new file should load after invalidation: %v", err)
	}
}

func TestWatch_IgnoresNonContentFiles(t *testing.T) {
	dir, store := watcherTestEnv(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var mu sync.Mutex
	var calls int

	go func() {
		_ = Watch(ctx, store, dir, logger, func(kind, name string) {
			mu.Lock()
			calls++
			mu.Unlock()
		})
	}()

	time.Sleep(100 * time.Millisecond)

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("scratch"), 0o644); err != nil {
		t.Fatal(err)
	}

	time.Sleep(300 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if calls != 0 {
		t.Errorf("callback fired %d times for a non-content file", calls)
	}
}

func TestWatch_StopsOnContextCancel(t *testing.T) {
	dir, store := watcherTestEnv(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, store, dir, logger, nil)
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Watch returned error on cancel: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop after context cancel")
	}
}
