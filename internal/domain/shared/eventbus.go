package shared

import (
	"context"
	"errors"
	"fmt"
)

// EventHandler handles domain events
type EventHandler interface {
	Handle(ctx context.Context, event DomainEvent) error
	// EventTypes lists the event types the handler wants. Nil means all of them.
	EventTypes() []string
}

// EventPublisher publishes domain events
type EventPublisher interface {
	Publish(ctx context.Context, events ...DomainEvent) error
}

// EventBus is an EventPublisher that handlers can subscribe to
type EventBus interface {
	EventPublisher
	// Subscribe registers a handler. With no event types it falls back to handler.EventTypes().
	Subscribe(handler EventHandler, eventTypes ...string)
	Unsubscribe(handler EventHandler)
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}

// EventSource is an aggregate holding events raised since it was loaded
type EventSource interface {
	PullDomainEvents() []DomainEvent
}

// PublishPending drains the source and publishes each event on its own, so
// one failing event does not hold back the others. The events are dropped
// even when publishing fails; a nil publisher only drains.
func PublishPending(ctx context.Context, publisher EventPublisher, source EventSource) error {
	events := source.PullDomainEvents()
	if publisher == nil {
		return nil
	}
	var errs []error
	for _, event := range events {
		if err := publisher.Publish(ctx, event); err != nil {
			errs = append(errs, fmt.Errorf("publish %s: %w", event.EventType(), err))
		}
	}
	return errors.Join(errs...)
}
