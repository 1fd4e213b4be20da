package watch

import (
	"fmt"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// DefaultDebounce collapses the event bursts a single file operation tends
// to produce into one reload.
const DefaultDebounce = 200 * time.Millisecond

// Watcher follows one directory root and fires a debounced callback when
// anything inside it changes. Re-rooting the browser re-roots the watch.
type Watcher struct {
	mu        sync.Mutex
	fsWatcher *fsnotify.Watcher
	root      string
	debounce  time.Duration
	onChange  func(root string)
	stopChan  chan struct{}
	running   bool
	closed    bool
}

// New creates a watcher that calls onChange with the watched root after
// changes settle. A non-positive debounce uses DefaultDebounce.
func New(debounce time.Duration, onChange func(root string)) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		fsWatcher: fsWatcher,
		debounce:  debounce,
		onChange:  onChange,
		stopChan:  make(chan struct{}),
	}, nil
}

// SetRoot replaces the watched directory. The previous root is dropped
// first so events never arrive for a directory the tree left behind.
func (w *Watcher) SetRoot(root string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.root != "" {
		if err := w.fsWatcher.Remove(w.root); err != nil {
			logrus.WithError(err).WithField("dir", w.root).Debug("watch: remove failed")
		}
	}
	if err := w.fsWatcher.Add(root); err != nil {
		w.root = ""
		return fmt.Errorf("failed to watch %s: %w", root, err)
	}
	w.root = root
	logrus.WithField("dir", root).Debug("watching directory")
	return nil
}

// Root returns the directory currently being watched.
func (w *Watcher) Root() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.root
}

// Start launches the event loop. It returns an error if already running.
func (w *Watcher) Start() error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return fmt.Errorf("watcher already running")
	}
	w.running = true
	w.stopChan = make(chan struct{})
	w.mu.Unlock()

	go w.loop()
	return nil
}

func (w *Watcher) loop() {
	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	pending := false

	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			logrus.WithField("event", event.String()).Debug("watch: fs event")
			timer.Reset(w.debounce)
			pending = true

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			logrus.WithError(err).Warn("watch: fsnotify error")

		case <-timer.C:
			if !pending {
				continue
			}
			pending = false
			if w.onChange != nil {
				w.onChange(w.Root())
			}

		case <-w.stopChan:
			timer.Stop()
			return
		}
	}
}

// Stop halts the event loop, if running, and closes the underlying
// watcher. Safe to call more than once.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		close(w.stopChan)
		w.running = false
	}
	if !w.closed {
		if err := w.fsWatcher.Close(); err != nil {
			logrus.WithError(err).Warn("watch: close failed")
		}
		w.closed = true
	}
}

// IsRunning reports whether the event loop is active.
func (w *Watcher) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}
