package event

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/Olpagroup25/insa/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type testEvent struct {
	shared.BaseDomainEvent
	Data string `json:"data"`
}

func newTestEvent(eventType string) *testEvent {
	return &testEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(eventType, "TestAggregate", uuid.New()),
		Data:            "test data",
	}
}

type testHandler struct {
	mu         sync.Mutex
	eventTypes []string
	handled    []shared.DomainEvent
	err        error
	panics     bool
}

func newTestHandler(eventTypes ...string) *testHandler {
	return &testHandler{eventTypes: eventTypes}
}

func (h *testHandler) Handle(_ context.Context, event shared.DomainEvent) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.handled = append(h.handled, event)
	if h.panics {
		panic("boom")
	}
	return h.err
}

func (h *testHandler) EventTypes() []string { return h.eventTypes }

func (h *testHandler) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.handled)
}

func TestInMemoryEventBus_Publish(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	handler := newTestHandler("PickupConfirmed")
	bus.Subscribe(handler)

	event := newTestEvent("PickupConfirmed")
	require.NoError(t, bus.Publish(context.Background(), event, newTestEvent("PickupConfirmed")))
	assert.Equal(t, 2, handler.count())
	assert.Equal(t, event, handler.handled[0])
}

func TestInMemoryEventBus_Routing(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	confirmed := newTestHandler("PickupConfirmed")
	changed := newTestHandler("CarrierPickupPartnerChanged")
	wildcard := newTestHandler()
	bus.Subscribe(confirmed)
	bus.Subscribe(changed)
	bus.Subscribe(wildcard)

	require.NoError(t, bus.Publish(context.Background(), newTestEvent("PickupConfirmed")))

	assert.Equal(t, 1, confirmed.count())
	assert.Equal(t, 0, changed.count())
	assert.Equal(t, 1, wildcard.count())
}

func TestInMemoryEventBus_ExplicitTypesOverrideHandlerTypes(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	handler := newTestHandler("PickupConfirmed")
	bus.Subscribe(handler, "SalesOrderConfirmed")

	require.NoError(t, bus.Publish(context.Background(), newTestEvent("PickupConfirmed")))
	assert.Equal(t, 0, handler.count())

	require.NoError(t, bus.Publish(context.Background(), newTestEvent("SalesOrderConfirmed")))
	assert.Equal(t, 1, handler.count())
}

func TestInMemoryEventBus_DuplicateSubscribe(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	handler := newTestHandler("PickupConfirmed")
	bus.Subscribe(handler)
	bus.Subscribe(handler)

	require.NoError(t, bus.Publish(context.Background(), newTestEvent("PickupConfirmed")))
	assert.Equal(t, 1, handler.count())
}

func TestInMemoryEventBus_HandlerFailuresAreIsolated(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	bus := NewInMemoryEventBus(zap.New(core))

	failing := newTestHandler("PickupConfirmed")
	failing.err = errors.New("handler error")
	panicking := newTestHandler("PickupConfirmed")
	panicking.panics = true
	healthy := newTestHandler("PickupConfirmed")
	bus.Subscribe(failing)
	bus.Subscribe(panicking)
	bus.Subscribe(healthy)

	require.NoError(t, bus.Publish(context.Background(), newTestEvent("PickupConfirmed")))

	assert.Equal(t, 1, healthy.count())
	entries := logs.FilterMessage("Event handler failed").All()
	require.Len(t, entries, 2)
	assert.Equal(t, "handler error", entries[0].ContextMap()["error"])
	assert.Contains(t, entries[1].ContextMap()["error"], "handler panicked: boom")
}

func TestInMemoryEventBus_Unsubscribe(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	handler := newTestHandler("PickupConfirmed")
	wildcard := newTestHandler()
	bus.Subscribe(handler)
	bus.Subscribe(wildcard)

	bus.Unsubscribe(handler)
	bus.Unsubscribe(wildcard)
	require.NoError(t, bus.Publish(context.Background(), newTestEvent("PickupConfirmed")))

	assert.Equal(t, 0, handler.count())
	assert.Equal(t, 0, wildcard.count())
	assert.Empty(t, bus.registry.handlers)
}

func TestInMemoryEventBus_StartStop(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	assert.False(t, bus.Running())
	require.NoError(t, bus.Start(context.Background()))
	assert.True(t, bus.Running())
	require.NoError(t, bus.Stop(context.Background()))
	assert.False(t, bus.Running())
}
