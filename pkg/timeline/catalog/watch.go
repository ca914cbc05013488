package catalog

import (
	"log/slog"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a catalog file when it changes on disk. A reload that fails
// to parse or validate is reported and the previous catalog stays current.
type Watcher struct {
	Path    string
	Reloads <-chan *Catalog // each successfully reloaded catalog
	Errors  <-chan error    // each rejected reload

	current atomic.Pointer[Catalog]
	reloads chan *Catalog
	errs    chan error
	done    chan struct{}
	watcher *fsnotify.Watcher
	logger  *slog.Logger
}

// NewWatcher creates a watcher for path that starts out serving initial
func NewWatcher(path string, initial *Catalog, logger *slog.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	reloads := make(chan *Catalog, 1)
	errs := make(chan error, 1)
	w := &Watcher{
		Path:    filepath.Clean(path),
		Reloads: reloads,
		Errors:  errs,
		reloads: reloads,
		errs:    errs,
		done:    make(chan struct{}),
		watcher: fw,
		logger:  logger,
	}
	w.current.Store(initial)
	return w, nil
}

// Start begins watching. The directory is watched rather than the file so
// editors that save by rename are picked up. If Start fails the watcher is
// released and Stop returns immediately.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(filepath.Dir(w.Path)); err != nil {
		w.watcher.Close()
		close(w.done)
		return err
	}

	go w.loop()
	return nil
}

// Stop closes the watcher and waits for the loop to exit
func (w *Watcher) Stop() {
	w.watcher.Close()
	<-w.done
}

// Current returns the catalog to render this frame
func (w *Watcher) Current() *Catalog {
	return w.current.Load()
}

func (w *Watcher) loop() {
	defer close(w.done)

	const debounce = 100 * time.Millisecond
	var pending time.Time
	ticker := time.NewTicker(debounce)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.Path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				pending = time.Now()
			}

		case <-ticker.C:
			if !pending.IsZero() && time.Since(pending) >= debounce {
				pending = time.Time{}
				w.reload()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("catalog watch error", "path", w.Path, "err", err)
		}
	}
}

func (w *Watcher) reload() {
	c, err := Load(w.Path)
	if err != nil {
		w.logger.Error("catalog reload rejected", "path", w.Path, "err", err)
		offer(w.errs, err)
		return
	}

	w.current.Store(c)
	w.logger.Info("catalog reloaded", "path", w.Path, "lineages", len(c.Lineages), "consoles", c.ConsoleCount())
	offer(w.reloads, c)
}

// offer sends v unless the receiver is behind, keeping only the newest value
func offer[T any](ch chan T, v T) {
	for {
		select {
		case ch <- v:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}
