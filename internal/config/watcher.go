// ABOUTME: Polling settings watcher for hot reload of a running viewer
// ABOUTME: Compares file mtimes each tick and hands freshly merged Settings to a callback

package config

import (
	"context"
	"os"
	"sync"
	"time"
)

// DefaultWatchInterval is the polling period used when none is given.
const DefaultWatchInterval = 2 * time.Second

// Watcher reloads Settings whenever one of its files changes.
type Watcher struct {
	paths    []string
	load     func() (*Settings, error)
	onReload func(*Settings, error)
	interval time.Duration

	mu     sync.Mutex
	mtimes map[string]time.Time
}

// NewWatcher watches the global and project config files of projectRoot.
// onReload receives the merged settings, or the load error.
func NewWatcher(projectRoot string, onReload func(*Settings, error)) *Watcher {
	paths := append(GlobalConfigFiles(), ProjectConfigFiles(projectRoot)...)
	return newWatcher(paths, func() (*Settings, error) { return Load(projectRoot) }, onReload)
}

// NewFileWatcher watches a single explicit settings file.
func NewFileWatcher(path string, onReload func(*Settings, error)) *Watcher {
	return newWatcher([]string{path}, func() (*Settings, error) { return LoadFile(path) }, onReload)
}

func newWatcher(paths []string, load func() (*Settings, error), onReload func(*Settings, error)) *Watcher {
	w := &Watcher{
		paths:    paths,
		load:     load,
		onReload: onReload,
		interval: DefaultWatchInterval,
		mtimes:   make(map[string]time.Time),
	}
	w.snapshotLocked()
	return w
}

// SetInterval overrides the polling interval.
func (w *Watcher) SetInterval(d time.Duration) {
	if d <= 0 {
		return
	}
	w.mu.Lock()
	w.interval = d
	w.mu.Unlock()
}

// Run polls until ctx is done.
func (w *Watcher) Run(ctx context.Context) {
	w.mu.Lock()
	interval := w.interval
	w.mu.Unlock()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.Check()
		}
	}
}

// Check reloads immediately if any file changed since the last check
// and reports whether it did.
func (w *Watcher) Check() bool {
	w.mu.Lock()
	changed := w.changedLocked()
	if changed {
		w.snapshotLocked()
	}
	w.mu.Unlock()

	if changed {
		w.onReload(w.load())
	}
	return changed
}

// changedLocked compares current mtimes with the snapshot. Must hold mu.
func (w *Watcher) changedLocked() bool {
	for _, path := range w.paths {
		info, err := os.Stat(path)
		if err != nil {
			if _, existed := w.mtimes[path]; existed {
				return true
			}
			continue
		}
		prev, ok := w.mtimes[path]
		if !ok || !info.ModTime().Equal(prev) {
			return true
		}
	}
	return false
}

// snapshotLocked records current mtimes. Must hold mu.
func (w *Watcher) snapshotLocked() {
	for _, path := range w.paths {
		info, err := os.Stat(path)
		if err != nil {
			delete(w.mtimes, path)
			continue
		}
		w.mtimes[path] = info.ModTime()
	}
}
