package config

import (
	"context"
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch follows path for writes and emits the freshly reloaded Config on
// updates, the same watcher-plus-debounce pattern playlist-sorter's view
// uses to pick up external playlist edits. The returned channels close
// once ctx is done or the watcher itself fails to continue; callers should
// drain both until they close.
func Watch(ctx context.Context, path string) (<-chan Config, <-chan error, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, fmt.Errorf("config: create watcher: %w", err)
	}
	if err := watcher.Add(path); err != nil {
		watcher.Close()
		return nil, nil, fmt.Errorf("config: watch %s: %w", path, err)
	}

	updates := make(chan Config)
	errs := make(chan error)

	go func() {
		defer watcher.Close()
		defer close(updates)
		defer close(errs)

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}

				// Debounce: give an atomic-rename editor time to finish.
				select {
				case <-time.After(100 * time.Millisecond):
				case <-ctx.Done():
					return
				}

				cfg, loadErr := Load(path)
				if loadErr != nil {
					select {
					case errs <- loadErr:
					case <-ctx.Done():
						return
					}
					continue
				}
				select {
				case updates <- cfg:
				case <-ctx.Done():
					return
				}

			case watchErr, ok := <-watcher.Errors:
				if !ok {
					return
				}
				select {
				case errs <- watchErr:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return updates, errs, nil
}
