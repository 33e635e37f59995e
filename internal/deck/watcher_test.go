package deck

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"

	"deckgrip/internal/domain"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type chanBus chan domain.DomainEvent

func (c chanBus) Publish(e domain.DomainEvent) { c <- e }

func waitReload(t *testing.T, events chanBus) domain.DeckReloadedEvent {
	t.Helper()
	select {
	case e := <-events:
		ev, ok := e.(domain.DeckReloadedEvent)
		require.True(t, ok)
		return ev
	case <-time.After(5 * time.Second):
		t.Fatal("no reload event")
		return domain.DeckReloadedEvent{}
	}
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "talk.md")
	require.NoError(t, os.WriteFile(path, []byte("# One\n"), 0o644))

	initial, err := Load(path)
	require.NoError(t, err)

	events := make(chanBus, 4)
	w, err := NewWatcher(path, initial, events, zaptest.NewLogger(t))
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	require.NoError(t, os.WriteFile(path, []byte("# One\n---\n# Two\n"), 0o644))

	ev := waitReload(t, events)
	assert.NoError(t, ev.Err)
	assert.Equal(t, 2, ev.Slides)
	assert.Equal(t, 2, w.Latest().Len())
}

func TestWatcherKeepsDeckOnParseError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "talk.md")
	require.NoError(t, os.WriteFile(path, []byte("# One\n"), 0o644))
	initial, err := Load(path)
	require.NoError(t, err)

	events := make(chanBus, 4)
	w, err := NewWatcher(path, initial, events, nil)
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	require.NoError(t, os.WriteFile(path, []byte("---\ntitle: broken\n"), 0o644))

	ev := waitReload(t, events)
	assert.Error(t, ev.Err)
	assert.Same(t, initial, w.Latest())
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "talk.md")
	require.NoError(t, os.WriteFile(path, []byte("# One\n"), 0o644))

	events := make(chanBus, 4)
	w, err := NewWatcher(path, nil, events, nil)
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.md"), []byte("x"), 0o644))
	time.Sleep(400 * time.Millisecond)
	w.Stop()

	assert.Empty(t, events)
}

func TestWatcherRunStopsWithContext(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "talk.md")
	require.NoError(t, os.WriteFile(path, []byte("# One\n"), 0o644))

	w, err := NewWatcher(path, nil, nil, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return")
	}
}

func TestWatcherRunClosesOnStartError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "talk.md")

	w, err := NewWatcher(path, nil, nil, nil)
	require.NoError(t, err)

	err = w.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to watch")
	assert.ErrorIs(t, w.watcher.Add(t.TempDir()), fsnotify.ErrClosed)
}
