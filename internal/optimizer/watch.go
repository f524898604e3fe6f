package optimizer

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// WatchSnapshot watches the snapshot file at path and invokes onChange after
// each write until ctx is cancelled. The parent directory is watched rather
// than the file itself because saves go through a temp file + rename, which
// replaces the inode.
func WatchSnapshot(ctx context.Context, path string, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				onChange()
			}

		case _, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			// Watcher errors are non-fatal; keep watching.
		}
	}
}
