package eventbus

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"

	"deckgrip/internal/domain"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestPublishDeliversToSubscribers(t *testing.T) {
	b := New(zaptest.NewLogger(t))
	defer b.Close()

	got := make(chan domain.SlideChangedEvent, 1)
	b.Subscribe(EventSlideChanged, func(e DomainEvent) {
		got <- e.(domain.SlideChangedEvent)
	})

	b.Publish(domain.SlideChangedEvent{From: 0, To: 1, Direction: domain.Forward})

	select {
	case e := <-got:
		require.Equal(t, 1, e.To)
	case <-time.After(time.Second):
		t.Fatal("event not delivered")
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	b := New(zaptest.NewLogger(t))
	defer b.Close()

	var calls atomic.Int32
	unsub := b.Subscribe(EventNoteUpdated, func(DomainEvent) { calls.Add(1) })
	delivered := make(chan struct{}, 2)
	b.Subscribe(EventNoteUpdated, func(DomainEvent) { delivered <- struct{}{} })

	unsub()
	b.Publish(domain.NoteUpdatedEvent{SlideID: "slide-01"})

	select {
	case <-delivered:
	case <-time.After(time.Second):
		t.Fatal("remaining subscriber not called")
	}
	b.Close()
	require.Zero(t, calls.Load())
}

func TestHandlerPanicIsRecovered(t *testing.T) {
	b := New(zaptest.NewLogger(t))
	defer b.Close()

	done := make(chan struct{})
	b.Subscribe(EventModeChanged, func(DomainEvent) { panic("boom") })
	b.Subscribe(EventModeChanged, func(DomainEvent) { close(done) })

	b.Publish(domain.ModeChangedEvent{Mode: "overview", Enabled: true})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("second handler not called")
	}
}

func TestPublishAfterCloseIsDropped(t *testing.T) {
	b := New(nil)
	b.Close()
	require.NotPanics(t, func() {
		b.Publish(domain.PresentationResetEvent{})
	})
}
