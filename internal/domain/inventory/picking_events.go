package inventory

import (
	"time"

	"github.com/Olpagroup25/insa/internal/domain/shared"
	"github.com/google/uuid"
)

const AggregateTypePicking = "Picking"

const (
	EventTypePickupConfirmed = "PickupConfirmed"
	EventTypePickingDone     = "PickingDone"
)

// PickupConfirmedEvent is published when a pickup point confirms a handover
type PickupConfirmedEvent struct {
	shared.BaseDomainEvent
	PickingID       uuid.UUID `json:"picking_id"`
	PickingName     string    `json:"picking_name"`
	Origin          string    `json:"origin,omitempty"`
	PickupPartnerID uuid.UUID `json:"pickup_partner_id"`
	ConfirmedBy     uuid.UUID `json:"confirmed_by"`
	ConfirmedAt     time.Time `json:"confirmed_at"`
}

// NewPickupConfirmedEvent creates a new PickupConfirmedEvent
func NewPickupConfirmedEvent(p *Picking) *PickupConfirmedEvent {
	e := &PickupConfirmedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePickupConfirmed, AggregateTypePicking, p.ID),
		PickingID:       p.ID,
		PickingName:     p.Name,
		Origin:          p.Origin,
	}
	if p.PickupPartnerID != nil {
		e.PickupPartnerID = *p.PickupPartnerID
	}
	if p.PickupConfirmedBy != nil {
		e.ConfirmedBy = *p.PickupConfirmedBy
	}
	if p.PickupConfirmedAt != nil {
		e.ConfirmedAt = *p.PickupConfirmedAt
	}
	return e
}

// PickingDoneEvent is published when a picking is validated
type PickingDoneEvent struct {
	shared.BaseDomainEvent
	PickingID   uuid.UUID `json:"picking_id"`
	PickingName string    `json:"picking_name"`
}

// NewPickingDoneEvent creates a new PickingDoneEvent
func NewPickingDoneEvent(p *Picking) *PickingDoneEvent {
	return &PickingDoneEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePickingDone, AggregateTypePicking, p.ID),
		PickingID:       p.ID,
		PickingName:     p.Name,
	}
}
