// Package watcher re-triggers scan passes when watched input files change.
//
// Changes are debounced so editor save sequences (write + rename, or
// several writes in quick succession) coalesce into a single rescan.
// Rename and remove events re-add the watch, which handles atomic writes
// where the old file is unlinked before the new one is moved into place.
package watcher

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/moolen/deprscan/internal/logging"
)

// Callback is invoked after a debounced change on any watched file.
type Callback func()

// Config holds configuration for the Watcher.
type Config struct {
	// Paths are the files to watch. Must not be empty.
	Paths []string

	// DebounceMillis is the debounce period in milliseconds.
	// Multiple file change events within this period trigger one callback.
	// Default: 500ms.
	DebounceMillis int
}

// Watcher watches a set of files and invokes a callback, debounced, when
// any of them changes.
type Watcher struct {
	config   Config
	callback Callback
	logger   *logging.Logger

	cancel  context.CancelFunc
	stopped chan struct{}
	ready   chan struct{}
	mu      sync.Mutex

	// debounceTimer coalesces bursts of change events into one callback.
	debounceTimer *time.Timer
}

// New creates a watcher for the given files.
// Returns an error if no paths are given or the callback is nil.
func New(config Config, callback Callback) (*Watcher, error) {
	if len(config.Paths) == 0 {
		return nil, fmt.Errorf("at least one path to watch is required")
	}
	if callback == nil {
		return nil, fmt.Errorf("callback cannot be nil")
	}
	if config.DebounceMillis == 0 {
		config.DebounceMillis = 500
	}

	return &Watcher{
		config:   config,
		callback: callback,
		logger:   logging.GetLogger("watcher"),
		stopped:  make(chan struct{}),
		ready:    make(chan struct{}),
	}, nil
}

// Start begins watching. It returns once the underlying fsnotify watcher
// is initialized, so changes made after Start returns are never missed.
func (w *Watcher) Start(ctx context.Context) error {
	watchCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	go w.watchLoop(watchCtx)

	select {
	case <-w.ready:
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(5 * time.Second):
		return fmt.Errorf("timeout waiting for file watcher to initialize")
	}

	return nil
}

// Stop stops the watcher and waits for the watch loop to exit.
func (w *Watcher) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	<-w.stopped

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
}

// signalReady closes the ready channel exactly once.
func (w *Watcher) signalReady() {
	w.mu.Lock()
	defer w.mu.Unlock()
	select {
	case <-w.ready:
	default:
		close(w.ready)
	}
}

func (w *Watcher) watchLoop(ctx context.Context) {
	defer close(w.stopped)
	defer w.signalReady()

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		w.logger.ErrorWithErr("failed to create file watcher", err)
		return
	}
	defer fsw.Close()

	for _, path := range w.config.Paths {
		if err := fsw.Add(path); err != nil {
			w.logger.ErrorWithErr("failed to watch file "+path, err)
			return
		}
	}

	w.logger.InfoWithFields("watching for changes",
		logging.Field("paths", w.config.Paths),
		logging.Field("debounce_ms", w.config.DebounceMillis),
	)

	w.signalReady()

	for {
		select {
		case <-ctx.Done():
			w.logger.Debug("context cancelled, stopping watch loop")
			return

		case event, ok := <-fsw.Events:
			if !ok {
				return
			}

			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}

			// Rename/remove change the inode; re-add the watch so
			// atomic writes keep being observed.
			if event.Op&(fsnotify.Rename|fsnotify.Remove) != 0 {
				time.Sleep(50 * time.Millisecond)
				if err := fsw.Add(event.Name); err != nil {
					w.logger.Warn("failed to re-add watch after %s: %v", event.Op, err)
				}
			}
			w.handleFileChange()

		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			w.logger.ErrorWithErr("watcher error", err)
		}
	}
}

// handleFileChange resets the debounce timer; the callback fires once the
// debounce period passes without further events.
func (w *Watcher) handleFileChange() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}

	w.debounceTimer = time.AfterFunc(
		time.Duration(w.config.DebounceMillis)*time.Millisecond,
		w.callback,
	)
}
