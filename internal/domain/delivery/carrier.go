package delivery

import (
	"strings"

	"github.com/Olpagroup25/insa/internal/domain/shared"
	"github.com/google/uuid"
)

// Carrier is a configured delivery method.
// When PickupPartnerID is set the carrier delivers to an external pickup point
// and that partner's staff confirm the handover through the portal.
type Carrier struct {
	shared.BaseAggregateRoot
	Name            string
	PickupPartnerID *uuid.UUID
	PickupHours     string
	Active          bool
}

// NewCarrier creates a new active carrier
func NewCarrier(name string) (*Carrier, error) {
	name = strings.TrimSpace(name)
	if err := validateCarrierName(name); err != nil {
		return nil, err
	}

	return &Carrier{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Active:            true,
	}, nil
}

// IsPickupPoint is derived from the pickup partner and never stored
func (c *Carrier) IsPickupPoint() bool {
	return c.PickupPartnerID != nil
}

// Rename changes the carrier's display name
func (c *Carrier) Rename(name string) error {
	name = strings.TrimSpace(name)
	if err := validateCarrierName(name); err != nil {
		return err
	}
	c.Name = name
	c.Touch()
	return nil
}

// SetPickupHours sets the opening hours shown to customers
func (c *Carrier) SetPickupHours(hours string) error {
	if len(hours) > 2000 {
		return shared.NewDomainError("INVALID_PICKUP_HOURS", "Pickup hours cannot exceed 2000 characters")
	}
	c.PickupHours = strings.TrimSpace(hours)
	c.Touch()
	return nil
}

// AssignPickupPartner turns the carrier into a pickup point served by partnerID
func (c *Carrier) AssignPickupPartner(partnerID uuid.UUID) error {
	if partnerID == uuid.Nil {
		return shared.NewDomainError("INVALID_PARTNER", "Pickup partner ID cannot be empty")
	}
	if c.PickupPartnerID != nil && *c.PickupPartnerID == partnerID {
		return nil
	}

	previous := c.PickupPartnerID
	id := partnerID
	c.PickupPartnerID = &id
	c.Touch()
	c.AddDomainEvent(NewCarrierPickupPartnerChangedEvent(c, previous))

	return nil
}

// ClearPickupPartner removes the pickup point link
func (c *Carrier) ClearPickupPartner() {
	if c.PickupPartnerID == nil {
		return
	}

	previous := c.PickupPartnerID
	c.PickupPartnerID = nil
	c.Touch()
	c.AddDomainEvent(NewCarrierPickupPartnerChangedEvent(c, previous))
}

// Archive deactivates the carrier
func (c *Carrier) Archive() {
	c.Active = false
	c.Touch()
}

func validateCarrierName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Carrier name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Carrier name cannot exceed 200 characters")
	}
	return nil
}
