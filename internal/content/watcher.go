package content

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const watcherDebounce = 150 * time.Millisecond

// Watcher reloads a document when its file changes. Editors that replace the
// file atomically are handled by watching the parent directory.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	logger  *slog.Logger

	onLoad   func(*Document)
	onError  func(error)
	debounce time.Duration

	mu        sync.Mutex
	timer     *time.Timer
	closed    bool
	closeOnce sync.Once
}

// NewWatcher watches path. onLoad receives every successfully parsed
// document; onError receives parse failures (the old document stays active).
// Both run on a timer goroutine.
func NewWatcher(path string, logger *slog.Logger, onLoad func(*Document), onError func(error)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	path = filepath.Clean(path)
	if err := fw.Add(filepath.Dir(path)); err != nil {
		_ = fw.Close()
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Watcher{
		watcher:  fw,
		path:     path,
		logger:   logger,
		onLoad:   onLoad,
		onError:  onError,
		debounce: watcherDebounce,
	}, nil
}

// Run processes file events until ctx is canceled or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if w.isDocumentEvent(event) {
				w.scheduleReload()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("document watcher error", "error", err)
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		w.mu.Lock()
		w.closed = true
		if w.timer != nil {
			w.timer.Stop()
			w.timer = nil
		}
		w.mu.Unlock()
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) isDocumentEvent(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0
}

func (w *Watcher) scheduleReload() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	if w.timer != nil {
		w.timer.Reset(w.debounce)
		return
	}
	w.timer = time.AfterFunc(w.debounce, w.reload)
}

func (w *Watcher) reload() {
	w.mu.Lock()
	w.timer = nil
	closed := w.closed
	w.mu.Unlock()
	if closed {
		return
	}

	doc, err := Load(w.path)
	if err != nil {
		w.logger.Warn("document reload failed", "path", w.path, "error", err)
		if w.onError != nil {
			w.onError(err)
		}
		return
	}
	w.logger.Info("document reloaded", "path", w.path, "sections", len(doc.Sections))
	if w.onLoad != nil {
		w.onLoad(doc)
	}
}
