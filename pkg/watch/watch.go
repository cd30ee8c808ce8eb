// Package watch triggers a rebuild callback when site sources change. Bursts
// of filesystem events (editors write several times per save) are debounced
// into a single callback invocation.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce coalesces the event bursts editors produce on save.
const DefaultDebounce = 500 * time.Millisecond

// Watcher monitors a set of directory trees and invokes a callback after
// changes settle.
type Watcher struct {
	watcher  *fsnotify.Watcher
	debounce time.Duration
	onChange func()
	logger   *slog.Logger
}

// New creates a Watcher over the given directory trees. Directories that do
// not exist are skipped, so a site without a content dir can still be
// watched. The callback runs on the watch goroutine; rebuilds are sequential
// by design.
func New(dirs []string, debounce time.Duration, onChange func(), logger *slog.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if logger == nil {
		logger = slog.Default()
	}

	w := &Watcher{
		watcher:  fsw,
		debounce: debounce,
		onChange: onChange,
		logger:   logger,
	}

	for _, dir := range dirs {
		if _, err := os.Stat(dir); err != nil {
			logger.Debug("skipping missing watch dir", "dir", dir)
			continue
		}
		if err := w.addTree(dir); err != nil {
			_ = fsw.Close()
			return nil, err
		}
	}
	return w, nil
}

// addTree registers dir and all its subdirectories with the watcher.
// fsnotify watches are not recursive.
func (w *Watcher) addTree(dir string) error {
	return filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if err := w.watcher.Add(p); err != nil {
			return fmt.Errorf("watch %s: %w", p, err)
		}
		return nil
	})
}

// Run blocks, dispatching debounced change callbacks until ctx is cancelled
// or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) error {
	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return w.Close()

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			// New directories need their own watch before anything inside
			// them can be seen.
			if ev.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					_ = w.addTree(ev.Name)
				}
			}
			w.logger.Debug("source changed", "path", ev.Name, "op", ev.Op.String())
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(w.debounce)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watch error", "error", err)

		case <-timer.C:
			w.onChange()
		}
	}
}

// Close stops the underlying filesystem watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
