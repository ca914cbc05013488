package catalog

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
)

func startWatcher(t *testing.T) (*Watcher, string) {
	t.Helper()

	path := writeFile(t, t.TempDir(), "catalog.yaml", validYAML)
	initial, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	w, err := NewWatcher(path, initial, nil)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	t.Cleanup(w.Stop)
	return w, path
}

func TestWatcher_ReloadsValidFile(t *testing.T) {
	w, path := startWatcher(t)

	writeFile(t, "", path, strings.Replace(validYAML, "end_year: 2000", "end_year: 2010", 1))

	select {
	case c := <-w.Reloads:
		if c.EndYear != 2010 {
			t.Errorf("reloaded EndYear = %d, want 2010", c.EndYear)
		}
		if w.Current() != c {
			t.Error("Current() does not return the reloaded catalog")
		}
	case err := <-w.Errors:
		t.Fatalf("unexpected reload error: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}

func TestWatcher_KeepsCatalogOnInvalidReload(t *testing.T) {
	w, path := startWatcher(t)
	before := w.Current()

	writeFile(t, "", path, strings.Replace(validYAML, "releases:", "releases: []\n        ignored:", 1))

	select {
	case err := <-w.Errors:
		if err == nil {
			t.Error("received nil reload error")
		}
	case c := <-w.Reloads:
		t.Fatalf("invalid file was reloaded: %+v", c)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for reload error")
	}

	if w.Current() != before {
		t.Error("Current() changed after an invalid reload")
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	w, path := startWatcher(t)

	writeFile(t, "", strings.TrimSuffix(path, "catalog.yaml")+"notes.txt", "hello")

	select {
	case c := <-w.Reloads:
		t.Errorf("unexpected reload: %+v", c)
	case err := <-w.Errors:
		t.Errorf("unexpected reload error: %v", err)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcher_StartFailureReleasesWatcher(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "catalog.yaml")

	w, err := NewWatcher(path, nil, nil)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	if err := w.Start(); err == nil {
		t.Fatal("Start() succeeded for a missing directory")
	}

	stopped := make(chan struct{})
	go func() {
		w.Stop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop() blocked after a failed Start")
	}

	if err := w.watcher.Add(t.TempDir()); !errors.Is(err, fsnotify.ErrClosed) {
		t.Errorf("Add() after a failed Start = %v, want ErrClosed", err)
	}
}
