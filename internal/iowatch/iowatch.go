// Package iowatch reruns an action when source files change.
package iowatch

import (
	"context"
	"log/slog"
	"path/filepath"
	"slices"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDelay is the quiet period after the last event before the action
// runs. Editors often write a file in several steps.
const DefaultDelay = 300 * time.Millisecond

// Action is called after changes of watched files settle.
type Action func(ctx context.Context) error

// Watcher observes a set of files.
type Watcher struct {
	paths []string
	delay time.Duration
	fn    Action
}

// Option configures a Watcher.
type Option func(*Watcher)

// OptDelay sets the quiet period before the action runs.
func OptDelay(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.delay = d
		}
	}
}

// New creates a Watcher for files at paths.
func New(paths []string, fn Action, opts ...Option) *Watcher {
	res := &Watcher{delay: DefaultDelay, fn: fn}
	for _, p := range paths {
		if p == "" {
			continue
		}
		res.paths = append(res.paths, filepath.Clean(p))
	}
	for _, opt := range opts {
		opt(res)
	}
	return res
}

// Run watches files until ctx is canceled. Directories of the files are
// watched instead of the files, so replacing a file by rename does not
// stop the watch. Errors of the action are logged and do not stop the
// watch.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return WatchError("", err)
	}
	defer fw.Close()

	for _, dir := range w.dirs() {
		if err = fw.Add(dir); err != nil {
			return WatchError(dir, err)
		}
		slog.Debug("Watching directory", "dir", dir)
	}
	slog.Info("Watching sources for changes", "files", len(w.paths))

	timer := time.NewTimer(w.delay)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if w.relevant(ev) {
				slog.Debug("Source changed", "path", ev.Name, "op", ev.Op.String())
				timer.Reset(w.delay)
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			slog.Warn("File watcher error", "error", err)
		case <-timer.C:
			if err = w.fn(ctx); err != nil {
				slog.Error("Rerun after source change failed", "error", err)
			}
		}
	}
}

func (w *Watcher) dirs() []string {
	var res []string
	for _, p := range w.paths {
		dir := filepath.Dir(p)
		if !slices.Contains(res, dir) {
			res = append(res, dir)
		}
	}
	return res
}

// relevant keeps content changes of watched files only.
func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) &&
		!ev.Has(fsnotify.Rename) && !ev.Has(fsnotify.Remove) {
		return false
	}
	return slices.Contains(w.paths, filepath.Clean(ev.Name))
}
