package deck

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"deckgrip/internal/domain"
)

// Publisher receives reload events
type Publisher interface {
	Publish(event domain.DomainEvent)
}

// Watcher reloads a deck when its file changes. It watches the parent
// directory so editors that save by rename are still seen.
type Watcher struct {
	mu       sync.RWMutex
	watcher  *fsnotify.Watcher
	path     string
	latest   *Deck
	bus      Publisher
	log      *zap.Logger
	debounce time.Duration
	pending  time.Time
	stopCh   chan struct{}
	doneCh   chan struct{}
	running  bool
}

// NewWatcher creates a watcher for the deck at path. initial is the deck
// already loaded by the caller.
func NewWatcher(path string, initial *Deck, bus Publisher, log *zap.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve deck path: %w", err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Watcher{
		watcher:  fw,
		path:     abs,
		latest:   initial,
		bus:      bus,
		log:      log.Named("watcher"),
		debounce: 150 * time.Millisecond,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Latest returns the most recently parsed deck
func (w *Watcher) Latest() *Deck {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.latest
}

// Start begins watching. It returns once the watch is registered.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		w.mu.Unlock()
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(w.path), err)
	}
	w.running = true
	w.mu.Unlock()

	w.log.Debug("watching deck", zap.String("path", w.path))
	go w.run(ctx)
	return nil
}

// Stop ends the watch loop and waits for it to exit. It is safe to call
// more than once, and before Start.
func (w *Watcher) Stop() {
	w.mu.Lock()
	wasRunning := w.running
	if w.running {
		w.running = false
		close(w.stopCh)
	}
	w.mu.Unlock()

	if wasRunning {
		<-w.doneCh
	}
	if err := w.watcher.Close(); err != nil {
		w.log.Warn("closing watcher", zap.Error(err))
	}
}

// Run starts the watcher and blocks until ctx is done. The watcher is
// closed on every return path.
func (w *Watcher) Run(ctx context.Context) error {
	if err := w.Start(ctx); err != nil {
		w.Stop()
		return err
	}
	<-ctx.Done()
	w.Stop()
	return nil
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	ticker := time.NewTicker(w.debounce / 3)
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
			w.log.Warn("watch error", zap.Error(err))
		case <-ticker.C:
			w.flush()
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return
	}
	w.mu.Lock()
	w.pending = time.Now()
	w.mu.Unlock()
}

func (w *Watcher) flush() {
	w.mu.Lock()
	if w.pending.IsZero() || time.Since(w.pending) < w.debounce {
		w.mu.Unlock()
		return
	}
	w.pending = time.Time{}
	w.mu.Unlock()

	w.reload()
}

func (w *Watcher) reload() {
	d, err := Load(w.path)
	if err == nil && d.Len() == 0 {
		err = errors.New("deck has no slides")
	}
	event := domain.DeckReloadedEvent{Path: w.path, Err: err}

	if err != nil {
		w.log.Warn("deck reload failed, keeping previous version", zap.Error(err))
	} else {
		w.mu.Lock()
		w.latest = d
		w.mu.Unlock()
		event.Slides = d.Len()
		w.log.Info("deck reloaded", zap.Int("slides", d.Len()))
	}

	if w.bus != nil {
		w.bus.Publish(event)
	}
}
