// Package watcher reloads in-memory state when files of the data directory change.
package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/ougirez/milkdigit/internal/pkg/logger"
)

// Handler is called once per settled burst of changes to a file.
type Handler func(ctx context.Context, path string)

type Watcher struct {
	watcher  *fsnotify.Watcher
	debounce time.Duration

	mu       sync.Mutex
	handlers map[string]Handler
	pending  map[string]time.Time
	running  bool

	stopCh chan struct{}
	doneCh chan struct{}
}

func New(debounce time.Duration) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if debounce <= 0 {
		debounce = 500 * time.Millisecond
	}

	return &Watcher{
		watcher:  fw,
		debounce: debounce,
		handlers: make(map[string]Handler),
		pending:  make(map[string]time.Time),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Handle registers h for path. Must be called before Start.
func (w *Watcher) Handle(path string, h Handler) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.handlers[filepath.Clean(path)] = h
}

// Start watches the directories of all registered files. It does not block.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true

	dirs := make(map[string]struct{})
	for path := range w.handlers {
		dirs[filepath.Dir(path)] = struct{}{}
	}
	w.mu.Unlock()

	for dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logger.Warnf(ctx, "watcher: mkdir %s: %v", dir, err)
		}
		if err := w.watcher.Add(dir); err != nil {
			return err
		}
		logger.Debugf(ctx, "watcher: watching %s", dir)
	}

	go w.run(ctx)
	return nil
}

// Stop ends the event loop and releases the underlying watcher.
func (w *Watcher) Stop() {
	w.mu.Lock()
	running := w.running
	w.running = false
	w.mu.Unlock()

	if running {
		close(w.stopCh)
		<-w.doneCh
	}
	if err := w.watcher.Close(); err != nil {
		logger.Errorf(context.Background(), "watcher: close: %v", err)
	}
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	tick := w.debounce / 4
	if tick < 10*time.Millisecond {
		tick = 10 * time.Millisecond
	}
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Errorf(ctx, "watcher: %v", err)

		case <-ticker.C:
			w.flush(ctx)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return
	}

	path := filepath.Clean(event.Name)
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.handlers[path]; ok {
		w.pending[path] = time.Now()
	}
}

func (w *Watcher) flush(ctx context.Context) {
	now := time.Now()
	type call struct {
		path string
		h    Handler
	}
	var calls []call

	w.mu.Lock()
	for path, at := range w.pending {
		if now.Sub(at) >= w.debounce {
			calls = append(calls, call{path: path, h: w.handlers[path]})
			delete(w.pending, path)
		}
	}
	w.mu.Unlock()

	for _, c := range calls {
		logger.Infof(ctx, "watcher: %s changed", filepath.Base(c.path))
		c.h(ctx, c.path)
	}
}
