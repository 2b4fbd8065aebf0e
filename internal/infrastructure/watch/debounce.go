// Package watch reloads a rubric file when it changes on disk.
package watch

import (
	"sync"
	"time"
)

// debounceWindow absorbs the burst of events editors emit on save.
const debounceWindow = 500 * time.Millisecond

// Debouncer folds a burst of filesystem events into a single callback.
type Debouncer struct {
	window   time.Duration
	mu       sync.Mutex
	timer    *time.Timer
	callback func()
}

// NewDebouncer creates a debouncer. A zero or negative window falls back to
// debounceWindow.
func NewDebouncer(window time.Duration, callback func()) *Debouncer {
	if window <= 0 {
		window = debounceWindow
	}
	return &Debouncer{
		window:   window,
		callback: callback,
	}
}

// Trigger restarts the window. The callback fires once the window elapses
// with no further triggers.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.callback)
}

// Stop cancels any pending callback.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
}
