package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads path each time it is written or recreated and passes the
// result to apply. The parent directory is watched so editors that save by
// rename are picked up. apply runs on the watcher goroutine; Watch returns
// once watching has started and stops when ctx is done.
func Watch(ctx context.Context, path string, apply func(Settings, error)) error {
	if _, err := FormatOf(path); err != nil {
		return err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	dir := filepath.Dir(abs)
	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	go func() {
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != abs {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				apply(Load(abs))
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				apply(Settings{}, fmt.Errorf("watching %s: %w", abs, err))
			}
		}
	}()
	return nil
}
