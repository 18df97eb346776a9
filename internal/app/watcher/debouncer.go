package watcher

import (
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Debouncer coalesces a burst of file events into one callback carrying every operation seen
type Debouncer interface {
	Trigger(event fsnotify.Event)
	Stop()
}

// debouncer implements the Debouncer interface
type debouncer struct {
	duration time.Duration
	callback func(ops fsnotify.Op)
	timer    *time.Timer
	pending  fsnotify.Op
	mu       sync.Mutex
	stopped  bool
}

// NewDebouncer creates a new Debouncer with the specified quiet period and callback
func NewDebouncer(duration time.Duration, callback func(ops fsnotify.Op)) Debouncer {
	return &debouncer{
		duration: duration,
		callback: callback,
	}
}

// Trigger records the event operation and restarts the quiet period
func (d *debouncer) Trigger(event fsnotify.Event) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	d.pending |= event.Op

	if d.timer != nil {
		d.timer.Stop()
	}

	d.timer = time.AfterFunc(d.duration, d.fire)
}

// Stop cancels any pending callback and ignores later triggers
func (d *debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	d.pending = 0

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

func (d *debouncer) fire() {
	d.mu.Lock()

	if d.stopped || d.pending == 0 {
		d.mu.Unlock()
		return
	}

	ops := d.pending
	d.pending = 0
	d.timer = nil

	d.mu.Unlock()

	d.callback(ops)
}
