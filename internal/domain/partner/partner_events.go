package partner

import (
	"github.com/Olpagroup25/insa/internal/domain/shared"
	"github.com/google/uuid"
)

// Aggregate type constant
const AggregateTypePartner = "Partner"

// Event type constants
const (
	EventTypePartnerCreated = "PartnerCreated"
	EventTypePartnerUpdated = "PartnerUpdated"
)

// PartnerCreatedEvent is published when a new partner is created
type PartnerCreatedEvent struct {
	shared.BaseDomainEvent
	PartnerID uuid.UUID `json:"partner_id"`
	Name      string    `json:"name"`
}

// NewPartnerCreatedEvent creates a new PartnerCreatedEvent
func NewPartnerCreatedEvent(p *Partner) *PartnerCreatedEvent {
	return &PartnerCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePartnerCreated, AggregateTypePartner, p.ID),
		PartnerID:       p.ID,
		Name:            p.Name,
	}
}

// PartnerUpdatedEvent is published when a partner is renamed
type PartnerUpdatedEvent struct {
	shared.BaseDomainEvent
	PartnerID uuid.UUID `json:"partner_id"`
	Name      string    `json:"name"`
}

// NewPartnerUpdatedEvent creates a new PartnerUpdatedEvent
func NewPartnerUpdatedEvent(p *Partner) *PartnerUpdatedEvent {
	return &PartnerUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePartnerUpdated, AggregateTypePartner, p.ID),
		PartnerID:       p.ID,
		Name:            p.Name,
	}
}
