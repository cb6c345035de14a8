package docstore

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/vishesh-baghel/portfolio-sub000/internal/storage"
)

// ChangeCallback is called after the store's caches are cleared in response to
// a content file change. kind is one of "created", "updated", "deleted".
type ChangeCallback func(kind, name string)

// Watch starts an fsnotify watcher on the content directory and clears the
// store's caches whenever a content file changes, until ctx is cancelled.
// It calls cb (if non-nil) after every invalidation.
func Watch(ctx context.Context, store *Store, root string, logger *slog.Logger, cb ChangeCallback) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.Add(root); err != nil {
		return err
	}

	logger.Info("watcher: started", slog.String("root", root))

	for {
		select {
		case <-ctx.Done():
			logger.Info("watcher: stopped")
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			name := filepath.Base(ev.Name)
			if !storage.IsContentFile(name) {
				continue
			}

			var kind string
			switch {
			case ev.Op&fsnotify.Create != 0:
				kind = "created"
			case ev.Op&fsnotify.Write != 0:
				kind = "updated"
			case ev.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
				kind = "deleted"
			default:
				continue
			}

			store.ClearCache()
			logger.Debug("watcher: cache cleared",
				slog.String("file", name),
				slog.String("op", kind))
			if cb != nil {
				cb(kind, name)
			}

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher: error", slog.String("error", watchErr.Error()))
		}
	}
}
