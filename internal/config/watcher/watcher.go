// Package watcher reloads the configuration file when it changes on
// disk. It is used by the interactive front end so edits to the config
// take effect without a restart.
package watcher

import (
	"errors"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// ErrWatcherClosed is returned when operating on a closed watcher.
var ErrWatcherClosed = errors.New("config watcher is closed")

// ReloadFunc is invoked after the watched file is written or created.
// The argument is the watched path.
type ReloadFunc func(path string)

// Watcher watches a single configuration file using fsnotify.
type Watcher struct {
	mu      sync.Mutex
	watcher *fsnotify.Watcher
	path    string
	reload  ReloadFunc
	closed  bool
	done    chan struct{}
}

// New creates a watcher for path and starts its event loop. The reload
// callback runs on the watcher's goroutine; keep it short.
func New(path string, reload ReloadFunc) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the directory rather than the file: editors commonly
	// replace config files via rename, which drops a file-level watch.
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		watcher: fsw,
		path:    abs,
		reload:  reload,
		done:    make(chan struct{}),
	}

	go w.loop()
	return w, nil
}

// Path returns the watched file path.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWatcherClosed
	}
	w.closed = true
	close(w.done)
	return w.watcher.Close()
}

// loop dispatches fsnotify events for the watched file.
func (w *Watcher) loop() {
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if ev.Name != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				w.reload(w.path)
			}
		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are non-fatal; the stale config stays active.
		}
	}
}
