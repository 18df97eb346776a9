//go:generate mockgen -source=watcher.go -destination=watcher_mock.go -package=watcher
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"logview/internal/app/errors"
	"logview/internal/config"
	"logview/internal/config/logger"
)

// Watcher calls back whenever a script file settles after a change
type Watcher interface {
	Watch(ctx context.Context, path string, onChange func()) error
	Close()
}

// watcher implements the Watcher interface on top of fsnotify
type watcher struct {
	debounce  time.Duration
	fsWatcher *fsnotify.Watcher
	log       logger.Logger
	mu        sync.Mutex
	closed    bool
}

// NewWatcher creates a new Watcher instance
func NewWatcher(cfg *config.Config, log logger.Logger) (Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrFailedToWatchScript, err)
	}

	return &watcher{
		debounce:  cfg.Watch.Debounce,
		fsWatcher: fsw,
		log:       log,
	}, nil
}

// Watch blocks until ctx is done or the watcher is closed. The parent directory is
// watched so that editors saving through a rename are still followed.
func (w *watcher) Watch(ctx context.Context, path string, onChange func()) error {
	target, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrFailedToWatchScript, err)
	}

	dir := filepath.Dir(target)
	if err := w.fsWatcher.Add(dir); err != nil {
		return fmt.Errorf("%w: %s: %w", errors.ErrFailedToWatchScript, dir, err)
	}

	defer func() { _ = w.fsWatcher.Remove(dir) }()

	d := NewDebouncer(w.debounce, func(ops fsnotify.Op) {
		w.log.Info().Msgf("Script changed (%s): %s", ops, target)
		onChange()
	})
	defer d.Stop()

	w.log.Info().Msgf("Watching %s", target)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return nil
			}

			if filepath.Clean(event.Name) == target && isRelevantEvent(event) {
				d.Trigger(event)
			}
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return nil
			}

			w.log.Error().Err(err).Msg("Watcher error")
		}
	}
}

// Close stops the watcher and releases resources
func (w *watcher) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}

	w.closed = true
	w.fsWatcher.Close()
}

// isRelevantEvent returns true if the event may have changed the script contents
func isRelevantEvent(event fsnotify.Event) bool {
	return event.Has(fsnotify.Write) ||
		event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Rename)
}
