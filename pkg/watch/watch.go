// Package watch signals when any of a set of files changes on disk.
package watch

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Files watches files until ctx is done and sends on out after each write,
// create, rename or remove. Sends never block; a pending signal absorbs later ones.
// Editors that replace files by rename are handled by re-adding the path.
func Files(ctx context.Context, files []string, out chan<- struct{}) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	for _, f := range files {
		if err := w.Add(f); err != nil {
			slog.Warn("watch add failed", "file", f, "error", err)
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Rename|fsnotify.Remove) != 0 {
				go readd(ctx, w, ev.Name)
			} else if ev.Op&fsnotify.Create != 0 {
				if err := w.Add(ev.Name); err != nil && !os.IsNotExist(err) {
					slog.Warn("watch re-add failed", "file", ev.Name, "error", err)
				}
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) != 0 {
				slog.Debug("file changed", "file", ev.Name, "op", ev.Op.String())
				select {
				case out <- struct{}{}:
				default:
				}
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watch error", "error", err)
		}
	}
}

func readd(ctx context.Context, w *fsnotify.Watcher, name string) {
	for i := 0; i < 5; i++ {
		err := w.Add(name)
		if err == nil {
			return
		}
		if !os.IsNotExist(err) {
			slog.Warn("watch re-add failed", "file", name, "error", err)
			return
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(100 * time.Millisecond):
		}
	}
}
