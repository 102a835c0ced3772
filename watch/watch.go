// Package watch monitors a raw corpus directory for changes, so loaded
// documents can be kept in sync with their source files.
package watch

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Op is the kind of change observed on a corpus file.
type Op int

const (
	Created Op = iota
	Modified
	Removed
)

func (o Op) String() string {
	switch o {
	case Created:
		return "created"
	case Modified:
		return "modified"
	case Removed:
		return "removed"
	}

	return "unknown"
}

// Watcher monitors a corpus directory and reports changes to files with the
// configured extension.
type Watcher struct {
	dir       string
	extension string
	logger    *slog.Logger

	watcher *fsnotify.Watcher
}

func New(dir, extension string, logger *slog.Logger) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		dir:       dir,
		extension: extension,
		logger:    logger,
		watcher:   w,
	}, nil
}

// Run blocks watching the directory until the context is canceled, calling
// onChange for each created, modified or removed corpus file. Chmod-only
// events are ignored. Errors returned by onChange are logged, not fatal.
func (w *Watcher) Run(ctx context.Context, onChange func(path string, op Op) error) error {
	if err := w.watcher.Add(w.dir); err != nil {
		return err
	}

	w.logger.Info("watching corpus directory", "dir", w.dir, "extension", w.extension)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}

			if filepath.Ext(event.Name) != w.extension {
				continue
			}

			var op Op
			switch {
			case event.Op&fsnotify.Create == fsnotify.Create:
				op = Created
			case event.Op&fsnotify.Write == fsnotify.Write:
				op = Modified
			case event.Op&fsnotify.Remove == fsnotify.Remove || event.Op&fsnotify.Rename == fsnotify.Rename:
				op = Removed
			default:
				continue
			}

			w.logger.Info("corpus file changed", "path", event.Name, "op", op.String())

			if err := onChange(event.Name, op); err != nil {
				w.logger.Error("handling change", "path", event.Name, "err", err)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}

			w.logger.Error("watcher error", "err", err)
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
