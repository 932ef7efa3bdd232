package watch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/openinstructions/catalogbuild/internal/logfields"
)

// RebuildFunc runs one complete catalog build. Every trigger is a full,
// from-scratch build.
type RebuildFunc func(ctx context.Context) error

// Watcher watches the source roots and reruns the build after each
// burst of filesystem changes.
type Watcher struct {
	roots    []string
	rebuild  RebuildFunc
	log      *slog.Logger
	debounce time.Duration
}

// New creates a Watcher over the given roots. Missing roots are skipped.
func New(roots []string, rebuild RebuildFunc, log *slog.Logger) *Watcher {
	if log == nil {
		log = slog.Default()
	}
	return &Watcher{
		roots:    roots,
		rebuild:  rebuild,
		log:      log,
		debounce: 300 * time.Millisecond,
	}
}

// WithDebounce sets the quiet period after the last event before a
// rebuild fires.
func (w *Watcher) WithDebounce(d time.Duration) *Watcher {
	if d > 0 {
		w.debounce = d
	}
	return w
}

// Run blocks, rebuilding on changes, until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("fsnotify: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	watched := 0
	for _, root := range w.roots {
		if _, statErr := os.Stat(root); statErr != nil {
			w.log.Warn("Watch root missing, skipping", logfields.Path(root))
			continue
		}
		if err := w.addDirsRecursive(watcher, root); err != nil {
			return err
		}
		watched++
	}
	if watched == 0 {
		return fmt.Errorf("no watchable roots among %v", w.roots)
	}

	rebuildReq, trigger := newDebouncer(w.debounce)
	go w.rebuildWorker(ctx, rebuildReq)

	w.log.Info("Watching for changes", logfields.Count(watched))
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			w.handleEvent(watcher, ev, trigger)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("Watcher error", logfields.Error(err))
		}
	}
}

func (w *Watcher) addDirsRecursive(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if addErr := watcher.Add(path); addErr != nil {
				w.log.Warn("Watch add failed", logfields.Path(path), logfields.Error(addErr))
			}
		}
		return nil
	})
}

func (w *Watcher) handleEvent(watcher *fsnotify.Watcher, ev fsnotify.Event, trigger func()) {
	if shouldIgnore(ev.Name) {
		return
	}
	// New directories get watched so files created inside them are seen.
	if ev.Op.Has(fsnotify.Create) {
		if st, err := os.Stat(ev.Name); err == nil && st.IsDir() {
			_ = w.addDirsRecursive(watcher, ev.Name)
			trigger()
			return
		}
	}
	if ev.Op.Has(fsnotify.Create) || ev.Op.Has(fsnotify.Write) ||
		ev.Op.Has(fsnotify.Remove) || ev.Op.Has(fsnotify.Rename) {
		w.log.Debug("Change detected", logfields.Path(ev.Name))
		trigger()
	}
}

// rebuildWorker serializes rebuilds. A trigger arriving mid-build queues
// exactly one followup build.
func (w *Watcher) rebuildWorker(ctx context.Context, rebuildReq chan struct{}) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-rebuildReq:
			w.log.Info("Change detected, rebuilding catalog")
			if err := w.rebuild(ctx); err != nil {
				w.log.Error("Rebuild failed", logfields.Error(err))
			}
		}
	}
}

func newDebouncer(quiet time.Duration) (chan struct{}, func()) {
	var mu sync.Mutex
	var timer *time.Timer
	rebuildReq := make(chan struct{}, 1)

	trigger := func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(quiet, func() {
			select {
			case rebuildReq <- struct{}{}:
			default:
			}
		})
	}
	return rebuildReq, trigger
}

// shouldIgnore filters out events from editors and hidden files.
func shouldIgnore(path string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") {
		return true
	}
	if strings.HasSuffix(base, "~") || strings.HasSuffix(base, ".swp") {
		return true
	}
	return false
}
