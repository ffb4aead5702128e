package telemetry

import (
	"context"
	"errors"

	"github.com/Olpagroup25/insa/internal/domain/shared"
	"go.opentelemetry.io/otel/metric"
)

// ErrMeterNil is returned when a metrics component is built without a meter
var ErrMeterNil = errors.New("telemetry: meter is nil")

// EventMetrics counts published domain events by type. Subscribed to the
// event bus without event types it sees every event, so pickup
// confirmations and sales order confirmations show up as separate series.
type EventMetrics struct {
	eventsTotal *Counter
}

// NewEventMetrics creates the domain event counter
func NewEventMetrics(meter metric.Meter) (*EventMetrics, error) {
	if meter == nil {
		return nil, ErrMeterNil
	}
	counter, err := NewCounter(meter,
		"insa_domain_events_total",
		"Total number of published domain events",
		"{events}",
	)
	if err != nil {
		return nil, err
	}
	return &EventMetrics{eventsTotal: counter}, nil
}

// EventTypes returns nil: every event is counted.
func (m *EventMetrics) EventTypes() []string {
	return nil
}

// Handle records one event
func (m *EventMetrics) Handle(ctx context.Context, event shared.DomainEvent) error {
	m.eventsTotal.Inc(ctx,
		AttrEventType.String(event.EventType()),
		AttrAggregateType.String(event.AggregateType()),
	)
	return nil
}
