package eventbus

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoangtrungvu/musicstream/internal/domain"
	"github.com/hoangtrungvu/musicstream/internal/logger"
	"github.com/hoangtrungvu/musicstream/internal/testutil"
)

func TestSyncEventBus_PublishSubscribe(t *testing.T) {
	defer testutil.VerifyNoLeaks(t)
	bus := NewSyncEventBus(logger.NewTestLogger())

	var received []domain.Event
	bus.Subscribe(domain.EventPlayStateChanged, func(e domain.Event) {
		received = append(received, e)
	})

	bus.Publish(domain.NewPlayStateChangedEvent(true))
	bus.Publish(domain.NewTrackChangedEvent(domain.Track{ID: "1"}, 0)) // different type

	require.Len(t, received, 1)
	event, ok := received[0].(domain.PlayStateChangedEvent)
	require.True(t, ok)
	assert.True(t, event.IsPlaying)
	assert.False(t, event.Timestamp().IsZero())
}

func TestSyncEventBus_MultipleSubscribersInOrder(t *testing.T) {
	bus := NewSyncEventBus(logger.NewTestLogger())

	var order []int
	bus.Subscribe(domain.EventPlayStateChanged, func(domain.Event) { order = append(order, 1) })
	bus.Subscribe(domain.EventPlayStateChanged, func(domain.Event) { order = append(order, 2) })

	bus.Publish(domain.NewPlayStateChangedEvent(false))
	assert.Equal(t, []int{1, 2}, order)
}

func TestSyncEventBus_Unsubscribe(t *testing.T) {
	bus := NewSyncEventBus(logger.NewTestLogger())

	calls := 0
	id := bus.Subscribe(domain.EventPlayStateChanged, func(domain.Event) { calls++ })

	bus.Publish(domain.NewPlayStateChangedEvent(true))
	bus.Unsubscribe(id)
	bus.Publish(domain.NewPlayStateChangedEvent(false))

	assert.Equal(t, 1, calls)
	assert.False(t, bus.HasSubscribers(domain.EventPlayStateChanged))

	// Unsubscribing twice is a no-op.
	bus.Unsubscribe(id)
}

func TestSyncEventBus_SubscribeAll(t *testing.T) {
	bus := NewSyncEventBus(logger.NewTestLogger())

	var types []domain.EventType
	bus.SubscribeAll(func(e domain.Event) {
		types = append(types, e.Type())
	})

	bus.Publish(domain.NewPlayStateChangedEvent(true))
	bus.Publish(domain.NewShuffleToggledEvent(true))

	assert.Equal(t, []domain.EventType{domain.EventPlayStateChanged, domain.EventShuffleToggled}, types)
}

func TestSyncEventBus_PanicInHandlerDoesNotStopOthers(t *testing.T) {
	bus := NewSyncEventBus(logger.NewTestLogger())

	secondCalled := false
	bus.Subscribe(domain.EventPlayStateChanged, func(domain.Event) { panic("handler failure") })
	bus.Subscribe(domain.EventPlayStateChanged, func(domain.Event) { secondCalled = true })

	bus.Publish(domain.NewPlayStateChangedEvent(true))
	assert.True(t, secondCalled)
}

func TestSyncEventBus_PublishAfterClose(t *testing.T) {
	bus := NewSyncEventBus(logger.NewTestLogger())

	calls := 0
	bus.Subscribe(domain.EventPlayStateChanged, func(domain.Event) { calls++ })
	require.NoError(t, bus.Close())

	bus.Publish(domain.NewPlayStateChangedEvent(true))
	assert.Zero(t, calls)
	assert.Error(t, bus.Close())
}

func TestSyncEventBus_ConcurrentPublish(t *testing.T) {
	defer testutil.VerifyNoLeaks(t)
	bus := NewSyncEventBus(logger.NewTestLogger())

	var mu sync.Mutex
	count := 0
	bus.Subscribe(domain.EventPlayStateChanged, func(domain.Event) {
		mu.Lock()
		defer mu.Unlock()
		count++
	})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				bus.Publish(domain.NewPlayStateChangedEvent(true))
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1000, count)
}
