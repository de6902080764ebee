// Package watch keeps an eye on the intake tree and re-triggers an
// import after filesystem activity settles.
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

	"shoebox/internal/logging"
)

// DefaultDebounce is the quiet period after the last filesystem event
// before a new import is triggered. Long enough that a multi-file copy
// lands as a single run.
const DefaultDebounce = 2 * time.Second

// Trigger is invoked once per settled burst of filesystem activity.
type Trigger func(ctx context.Context) error

// Watcher monitors a directory tree recursively.
type Watcher struct {
	root     string
	logger   *slog.Logger
	debounce time.Duration
}

// New builds a watcher over root. A non-positive debounce falls back to
// DefaultDebounce.
func New(root string, logger *slog.Logger, debounce time.Duration) *Watcher {
	if logger == nil {
		logger = logging.NewNop()
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		root:     root,
		logger:   logging.NewComponentLogger(logger, "watch"),
		debounce: debounce,
	}
}

// Run watches the tree until ctx is cancelled, firing trigger after
// each settled burst of events. Trigger errors are logged, not fatal:
// a failed import run must not stop the watch.
func (w *Watcher) Run(ctx context.Context, trigger Trigger) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create filesystem watcher: %w", err)
	}
	defer func() { _ = fsw.Close() }()

	if err := w.addTree(fsw, w.root); err != nil {
		return fmt.Errorf("watch %s: %w", w.root, err)
	}
	w.logger.Info("watching intake tree", logging.String("root", w.root))

	onNewDir := func(dir string) {
		if err := w.addTree(fsw, dir); err != nil {
			w.logger.Warn("failed to watch new directory", logging.String("dir", dir), logging.Error(err))
		}
	}
	return w.loop(ctx, fsw.Events, fsw.Errors, trigger, onNewDir)
}

// loop is the debounce state machine, separated from fsnotify setup so
// tests can feed events directly.
func (w *Watcher) loop(ctx context.Context, events <-chan fsnotify.Event, errs <-chan error, trigger Trigger, onNewDir func(string)) error {
	var (
		timer  *time.Timer
		timerC <-chan time.Time
	)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !relevant(ev) {
				continue
			}
			if ev.Op.Has(fsnotify.Create) && onNewDir != nil {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					onNewDir(ev.Name)
				}
			}
			w.logger.Debug("intake activity", logging.String("path", ev.Name), logging.String("op", ev.Op.String()))
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			timerC = timer.C
		case err, ok := <-errs:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher error", logging.Error(err))
		case <-timerC:
			timerC = nil
			if err := trigger(ctx); err != nil {
				w.logger.Error("triggered import failed", logging.Error(err))
			}
		}
	}
}

func (w *Watcher) addTree(fsw *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !entry.IsDir() {
			return nil
		}
		return fsw.Add(path)
	})
}

// relevant filters out events that cannot change the candidate set.
func relevant(ev fsnotify.Event) bool {
	return ev.Op.Has(fsnotify.Create) || ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Rename)
}
