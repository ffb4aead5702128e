package delivery

import (
	"github.com/Olpagroup25/insa/internal/domain/shared"
	"github.com/google/uuid"
)

const AggregateTypeCarrier = "Carrier"

const EventTypeCarrierPickupPartnerChanged = "CarrierPickupPartnerChanged"

// CarrierPickupPartnerChangedEvent is published when a carrier gains, loses or
// switches its pickup partner. Pickings of the carrier mirror the new value.
type CarrierPickupPartnerChangedEvent struct {
	shared.BaseDomainEvent
	CarrierID         uuid.UUID  `json:"carrier_id"`
	PreviousPartnerID *uuid.UUID `json:"previous_partner_id,omitempty"`
	PickupPartnerID   *uuid.UUID `json:"pickup_partner_id,omitempty"`
}

// NewCarrierPickupPartnerChangedEvent creates a new CarrierPickupPartnerChangedEvent
func NewCarrierPickupPartnerChangedEvent(c *Carrier, previous *uuid.UUID) *CarrierPickupPartnerChangedEvent {
	return &CarrierPickupPartnerChangedEvent{
		BaseDomainEvent:   shared.NewBaseDomainEvent(EventTypeCarrierPickupPartnerChanged, AggregateTypeCarrier, c.ID),
		CarrierID:         c.ID,
		PreviousPartnerID: previous,
		PickupPartnerID:   c.PickupPartnerID,
	}
}
