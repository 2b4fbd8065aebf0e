package watch

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// RubricWatcher watches a single rubric file for changes using fsnotify.
// The parent directory is watched so editor save-by-rename is still seen.
type RubricWatcher struct {
	watcher  *fsnotify.Watcher
	path     string
	onChange func()
	debounce *Debouncer
}

// NewRubricWatcher creates a watcher that invokes onChange (debounced) when
// the file at path is written, created, or renamed into place.
func NewRubricWatcher(path string, onChange func()) (*RubricWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	return &RubricWatcher{
		watcher:  w,
		path:     abs,
		onChange: onChange,
	}, nil
}

// Run starts the event loop. It blocks until the context is cancelled or the
// watcher fails.
func (w *RubricWatcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	w.debounce = NewDebouncer(0, w.onChange)
	defer w.debounce.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) || event.Op.Has(fsnotify.Rename) {
				w.debounce.Trigger()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watcher error: %w", err)
		}
	}
}
