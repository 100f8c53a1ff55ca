// Package cli: --watch re-runs the check when any input file changes.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/katalvlaran/hccheck/config"
)

// ErrNoWatchFiles indicates a watch session was started with no files.
var ErrNoWatchFiles = errors.New("no files to watch")

// fileWatcher debounces fsnotify events for a fixed set of files and calls
// run after each quiet period. Parent directories are watched rather than
// the files, so editors that save by rename are still seen.
type fileWatcher struct {
	files    map[string]struct{} // cleaned absolute paths
	dirs     []string
	debounce time.Duration
	log      *slog.Logger
	run      func(context.Context) error
}

func newFileWatcher(paths []string, debounce time.Duration, log *slog.Logger, run func(context.Context) error) (*fileWatcher, error) {
	if len(paths) == 0 {
		return nil, ErrNoWatchFiles
	}
	fw := &fileWatcher{
		files:    make(map[string]struct{}, len(paths)),
		debounce: debounce,
		log:      log,
		run:      run,
	}
	seenDir := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("watch %s: %w", p, err)
		}
		fw.files[abs] = struct{}{}
		if dir := filepath.Dir(abs); !seenDir[dir] {
			seenDir[dir] = true
			fw.dirs = append(fw.dirs, dir)
		}
	}

	return fw, nil
}

// Watch runs once immediately, then again after every debounced change,
// until ctx is cancelled. Errors from run are logged, not returned.
func (fw *fileWatcher) Watch(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	for _, dir := range fw.dirs {
		if err = w.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}

	fw.runOnce(ctx)

	timer := time.NewTimer(fw.debounce)
	timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !fw.relevant(ev) {
				continue
			}
			fw.log.Debug("input changed", "file", ev.Name, "op", ev.Op.String())
			timer.Reset(fw.debounce)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			fw.log.Warn("watch error", "error", err)
		case <-timer.C:
			fw.runOnce(ctx)
		}
	}
}

func (fw *fileWatcher) relevant(ev fsnotify.Event) bool {
	if ev.Op == fsnotify.Chmod {
		return false
	}
	_, ok := fw.files[filepath.Clean(ev.Name)]

	return ok
}

func (fw *fileWatcher) runOnce(ctx context.Context) {
	if err := fw.run(ctx); err != nil && ctx.Err() == nil {
		fw.log.Error("check failed", "error", err)
	}
}

// runWatch checks the inputs now and after every change. Invalid tours
// never end the session; only cancellation does.
func runWatch(ctx context.Context, w io.Writer, cfg *config.Config, logger *slog.Logger, graphPath string, tourPaths []string) error {
	paths := append([]string{graphPath}, tourPaths...)
	fw, err := newFileWatcher(paths, cfg.Watch.Debounce, logger, func(ctx context.Context) error {
		rep, err := runCheck(ctx, cfg, logger, graphPath, tourPaths)
		if err != nil {
			return err
		}
		if !cfg.JSON {
			fmt.Fprintf(w, "--- %s ---\n", time.Now().Format(time.TimeOnly))
		}

		return rep.write(w, cfg)
	})
	if err != nil {
		return err
	}

	return fw.Watch(ctx)
}
