package session

import (
	"context"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch monitors the state directory until ctx is cancelled and calls
// onClear whenever the token file is removed, so a logout performed by
// another console process propagates into this one. Writes still follow
// last-writer-wins; there is no lock file.
func (s *Store) Watch(ctx context.Context, onClear func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.Add(s.dir); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Base(ev.Name) == tokenFile && onClear != nil {
				onClear()
			}

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Printf("⚠️ session watcher: %v", err)
		}
	}
}
