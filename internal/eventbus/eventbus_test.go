package eventbus

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vaultsearch/internal/domain"
)

func TestPublishDeliversToSubscribers(t *testing.T) {
	b := New()
	defer b.Close()

	got := make(chan DomainEvent, 1)
	b.Subscribe(EventOpenSearchRequested, func(e DomainEvent) {
		got <- e
	})

	b.Publish(domain.OpenSearchRequestedEvent{ArchiveID: "a1"})

	select {
	case e := <-got:
		ev, ok := e.(domain.OpenSearchRequestedEvent)
		require.True(t, ok, "unexpected event type %T", e)
		assert.Equal(t, "a1", ev.ArchiveID)
	case <-time.After(2 * time.Second):
		t.Fatal("event was not delivered")
	}
}

func TestPublishOnlyMatchingType(t *testing.T) {
	b := New()
	defer b.Close()

	var calls atomic.Int32
	b.Subscribe(EventEntrySelected, func(DomainEvent) { calls.Add(1) })

	done := make(chan struct{})
	b.Subscribe(EventGroupSelected, func(DomainEvent) { close(done) })

	b.Publish(domain.GroupSelectedEvent{GroupID: "g"})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("group event was not delivered")
	}
	assert.Equal(t, int32(0), calls.Load())
}

func TestUnsubscribeRemovesOnlyThatHandler(t *testing.T) {
	raw := New()
	defer raw.Close()
	b := raw.(*bus)

	unsubA := b.Subscribe(EventSearchCleared, func(DomainEvent) {})
	b.Subscribe(EventSearchCleared, func(DomainEvent) {})
	require.Equal(t, 2, b.handlerCount(EventSearchCleared))

	unsubA()
	assert.Equal(t, 1, b.handlerCount(EventSearchCleared))

	// second call is a no-op
	unsubA()
	assert.Equal(t, 1, b.handlerCount(EventSearchCleared))
}

func TestUnsubscribedHandlerIsNotCalled(t *testing.T) {
	b := New()
	defer b.Close()

	var calls atomic.Int32
	unsub := b.Subscribe(EventArchiveSelected, func(DomainEvent) { calls.Add(1) })
	unsub()

	done := make(chan struct{})
	b.Subscribe(EventArchiveSelected, func(DomainEvent) { close(done) })
	b.Publish(domain.ArchiveSelectedEvent{ArchiveID: "x"})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("event was not delivered")
	}
	assert.Equal(t, int32(0), calls.Load())
}

func TestHandlerPanicIsRecovered(t *testing.T) {
	b := New()
	defer b.Close()

	b.Subscribe(EventError, func(DomainEvent) { panic("boom") })

	done := make(chan struct{})
	b.Subscribe(EventError, func(DomainEvent) { close(done) })
	b.Publish(domain.ErrorEvent{Message: "x"})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("second handler did not run")
	}
}

func TestCloseIsIdempotentAndStopsDelivery(t *testing.T) {
	b := New()
	b.Close()
	b.Close()

	// must not block or panic after close
	b.Publish(domain.SearchClearedEvent{})
}
