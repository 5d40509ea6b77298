package eventbus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"selectbox/internal/domain"
)

func waitForEvent(t *testing.T, ch <-chan DomainEvent) DomainEvent {
	t.Helper()
	select {
	case e := <-ch:
		return e
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return nil
	}
}

func TestPublishDeliversToSubscriber(t *testing.T) {
	bus := New()

	received := make(chan DomainEvent, 1)
	bus.Subscribe(EventOpened, func(e DomainEvent) {
		received <- e
	})

	bus.Publish(OpenedEvent{WidgetID: "w1", Direction: domain.BodyOpenBelow})

	e := waitForEvent(t, received)
	opened, ok := e.(OpenedEvent)
	require.True(t, ok)
	assert.Equal(t, "w1", opened.WidgetID)
	assert.Equal(t, domain.BodyOpenBelow, opened.Direction)
}

func TestPublishOnlyReachesMatchingType(t *testing.T) {
	bus := New()

	opened := make(chan DomainEvent, 1)
	closed := make(chan DomainEvent, 1)
	bus.Subscribe(EventOpened, func(e DomainEvent) { opened <- e })
	bus.Subscribe(EventClosed, func(e DomainEvent) { closed <- e })

	bus.Publish(ClosedEvent{WidgetID: "w1"})

	waitForEvent(t, closed)
	select {
	case <-opened:
		t.Fatal("opened handler should not receive a closed event")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	bus := New()

	received := make(chan DomainEvent, 2)
	unsubscribe := bus.Subscribe(EventNativeMode, func(e DomainEvent) { received <- e })

	bus.Publish(NativeModeEvent{WidgetID: "w1"})
	waitForEvent(t, received)

	unsubscribe()
	bus.Publish(NativeModeEvent{WidgetID: "w1"})

	select {
	case <-received:
		t.Fatal("unsubscribed handler should not receive events")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestHandlerPanicDoesNotKillDispatcher(t *testing.T) {
	bus := New()

	bus.Subscribe(EventError, func(e DomainEvent) { panic("boom") })
	received := make(chan DomainEvent, 1)
	bus.Subscribe(EventError, func(e DomainEvent) { received <- e })

	bus.Publish(ErrorEvent{Message: "first"})
	waitForEvent(t, received)

	// Dispatcher still alive after the panic
	bus.Publish(ErrorEvent{Message: "second"})
	waitForEvent(t, received)
}
