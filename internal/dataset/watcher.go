package dataset

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// Watcher invalidates a Cache whenever its source file is written, created,
// removed, or renamed. The parent directory is watched so that editors which
// replace the file atomically are still noticed.
type Watcher struct {
	cache *Cache
	path  string
	fsw   *fsnotify.Watcher
}

// NewWatcher starts watching the directory containing cache's source.
func NewWatcher(cache *Cache) (*Watcher, error) {
	path, err := filepath.Abs(cache.Path())
	if err != nil {
		return nil, eris.Wrap(err, "dataset: resolve source path")
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, eris.Wrap(err, "dataset: create watcher")
	}
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		_ = fsw.Close()
		return nil, eris.Wrap(err, "dataset: watch source directory")
	}

	return &Watcher{cache: cache, path: path, fsw: fsw}, nil
}

// Run processes events until ctx is done, then closes the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	defer func() { _ = w.fsw.Close() }()

	log := zap.L().With(zap.String("component", "dataset.watcher"), zap.String("source", w.path))
	log.Info("watching source for changes")

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			log.Debug("source event", zap.String("op", event.Op.String()))
			w.cache.Invalidate()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			log.Warn("watcher error", zap.Error(err))
		}
	}
}
