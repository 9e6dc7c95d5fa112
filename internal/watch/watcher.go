// Package watch monitors a data directory for new or removed data files
// matching the configured extension patterns.
package watch

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"hdfscope/internal/log"
	"hdfscope/internal/scan"
)

// FileEvent represents a catalog change detected by the watcher
type FileEvent struct {
	Path      string
	Timestamp time.Time
	Op        fsnotify.Op
}

// Watcher monitors one directory for data-file changes using fsnotify and
// maintains a live file catalog.
type Watcher struct {
	dir      string
	patterns []string

	// Channel delivering catalog changes
	eventChan chan FileEvent

	// Channel to signal stop
	stopChan chan struct{}

	fsWatcher *fsnotify.Watcher

	// Lock for running state and the file set
	mutex   sync.RWMutex
	files   map[string]struct{}
	running bool

	debounce time.Duration
	lastSeen map[string]time.Time
}

// New creates a watcher for dir scoped to the given glob patterns.
// The initial catalog is seeded with a directory scan.
func New(dir string, patterns []string, debounce time.Duration) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	names, err := scan.ListFiles(dir, patterns)
	if err != nil {
		_ = fsWatcher.Close()
		return nil, err
	}

	if err := fsWatcher.Add(dir); err != nil {
		_ = fsWatcher.Close()
		return nil, fmt.Errorf("failed to add directory %s to watcher: %w", dir, err)
	}

	files := make(map[string]struct{}, len(names))
	for _, name := range names {
		files[name] = struct{}{}
	}

	return &Watcher{
		dir:       dir,
		patterns:  patterns,
		eventChan: make(chan FileEvent, 10),
		stopChan:  make(chan struct{}),
		fsWatcher: fsWatcher,
		files:     files,
		debounce:  debounce,
		lastSeen:  make(map[string]time.Time),
	}, nil
}

// Events returns the channel that delivers catalog changes
func (w *Watcher) Events() <-chan FileEvent {
	return w.eventChan
}

// Files returns the current catalog snapshot, sorted ascending
func (w *Watcher) Files() []string {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	names := make([]string, 0, len(w.files))
	for name := range w.files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRunning returns whether the watcher is currently active
func (w *Watcher) IsRunning() bool {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	return w.running
}

// Start begins the event processing loop
func (w *Watcher) Start() error {
	w.mutex.Lock()
	if w.running {
		w.mutex.Unlock()
		return fmt.Errorf("watcher already running")
	}
	w.running = true
	w.mutex.Unlock()

	go w.loop()

	log.LogWithFields(log.F("directory", w.dir)).Info("Watching directory")
	return nil
}

func (w *Watcher) loop() {
	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handle(event)

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.LogWithFields(log.F("error", err)).Error("fsnotify watcher error")

		case <-w.stopChan:
			return
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	name := filepath.Base(event.Name)
	if !scan.Matches(w.patterns, name) {
		return
	}

	switch {
	case event.Op.Has(fsnotify.Create) || event.Op.Has(fsnotify.Write):
		// The event might be for an already-deleted file
		info, err := os.Stat(event.Name)
		if err != nil || info.IsDir() {
			return
		}

		w.mutex.Lock()
		now := time.Now()
		if last, ok := w.lastSeen[name]; ok && now.Sub(last) < w.debounce {
			w.mutex.Unlock()
			return
		}
		w.lastSeen[name] = now
		w.files[name] = struct{}{}
		w.mutex.Unlock()

		w.emit(FileEvent{Path: event.Name, Timestamp: now, Op: event.Op})

	case event.Op.Has(fsnotify.Remove) || event.Op.Has(fsnotify.Rename):
		w.mutex.Lock()
		_, known := w.files[name]
		delete(w.files, name)
		delete(w.lastSeen, name)
		w.mutex.Unlock()

		if known {
			w.emit(FileEvent{Path: event.Name, Timestamp: time.Now(), Op: event.Op})
		}
	}
}

// emit sends non-blockingly so a slow consumer cannot stall the loop
func (w *Watcher) emit(ev FileEvent) {
	select {
	case w.eventChan <- ev:
	default:
		log.LogWithFields(log.F("file", ev.Path)).Warn("Event channel is full, dropped event")
	}
}

// Stop halts the watcher and closes the event channel
func (w *Watcher) Stop() {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if !w.running {
		return
	}

	close(w.stopChan)

	if err := w.fsWatcher.Close(); err != nil {
		log.LogWithFields(log.F("error", err)).Error("Error closing fsnotify watcher")
	}

	w.running = false
	close(w.eventChan)
}
