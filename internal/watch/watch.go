// Package watch re-runs a conversion whenever its source file changes.
package watch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/goliatone/go-doc2md/internal/logging"
	"github.com/goliatone/go-doc2md/pkg/interfaces"
)

// DefaultDebounce coalesces the burst of events an editor save produces.
const DefaultDebounce = 200 * time.Millisecond

var ErrNoFiles = errors.New("watch: at least one file is required")

// Func is invoked with the path that changed. Errors are logged and the
// watch continues.
type Func func(ctx context.Context, path string) error

// Options tunes a watch loop.
type Options struct {
	Debounce time.Duration
	Logger   interfaces.Logger
	// Ready, when set, is closed once every directory is being watched.
	Ready chan<- struct{}
}

// Run watches files until ctx is done. Parent directories are watched so
// editors that replace files on save are still picked up.
func Run(ctx context.Context, files []string, fn Func, opts Options) error {
	if len(files) == 0 {
		return ErrNoFiles
	}
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NoOp()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer watcher.Close()

	targets := make(map[string]struct{}, len(files))
	dirs := map[string]struct{}{}
	for _, file := range files {
		abs, err := filepath.Abs(file)
		if err != nil {
			return err
		}
		if _, err := os.Stat(abs); err != nil {
			return fmt.Errorf("watch: %w", err)
		}
		targets[abs] = struct{}{}
		dir := filepath.Dir(abs)
		if _, ok := dirs[dir]; ok {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
		dirs[dir] = struct{}{}
	}
	logger.Info("watch.started", "files", len(targets), "debounce", opts.Debounce)
	if opts.Ready != nil {
		close(opts.Ready)
	}

	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()
	pending := ""

	for {
		select {
		case <-ctx.Done():
			logger.Info("watch.stopped")
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !relevant(event) {
				continue
			}
			if _, ok := targets[filepath.Clean(event.Name)]; !ok {
				continue
			}
			logger.Debug("watch.event", "path", event.Name, "op", event.Op.String())
			pending = event.Name
			timer.Reset(opts.Debounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch.error", "error", err)
		case <-timer.C:
			path := pending
			pending = ""
			start := time.Now()
			if err := fn(ctx, path); err != nil {
				logger.Error("watch.run.failed", "path", path, "error", err)
				continue
			}
			logger.Info("watch.run.complete", "path", path, "duration", time.Since(start))
		}
	}
}

func relevant(event fsnotify.Event) bool {
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}
