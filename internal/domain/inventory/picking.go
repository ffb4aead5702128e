package inventory

import (
	"fmt"
	"strings"
	"time"

	"github.com/Olpagroup25/insa/internal/domain/shared"
	"github.com/google/uuid"
)

// PickingState represents the lifecycle state of a shipment
type PickingState string

const (
	PickingStateDraft     PickingState = "draft"
	PickingStateWaiting   PickingState = "waiting"
	PickingStateConfirmed PickingState = "confirmed"
	PickingStateAssigned  PickingState = "assigned" // ready: goods reserved, on the way to the pickup point
	PickingStateDone      PickingState = "done"
	PickingStateCancel    PickingState = "cancel"
)

// PortalVisibleStates are the states a pickup point sees in its portal
var PortalVisibleStates = []PickingState{PickingStateAssigned, PickingStateDone}

// IsValid checks if the state is a known PickingState
func (s PickingState) IsValid() bool {
	switch s {
	case PickingStateDraft, PickingStateWaiting, PickingStateConfirmed,
		PickingStateAssigned, PickingStateDone, PickingStateCancel:
		return true
	}
	return false
}

// String returns the string representation of PickingState
func (s PickingState) String() string {
	return string(s)
}

// IsTerminal returns true for done and cancel
func (s PickingState) IsTerminal() bool {
	return s == PickingStateDone || s == PickingStateCancel
}

// CanTransitionTo checks if the state can move to target
func (s PickingState) CanTransitionTo(target PickingState) bool {
	switch s {
	case PickingStateDraft:
		return target == PickingStateWaiting || target == PickingStateConfirmed ||
			target == PickingStateAssigned || target == PickingStateCancel
	case PickingStateWaiting:
		return target == PickingStateConfirmed || target == PickingStateAssigned || target == PickingStateCancel
	case PickingStateConfirmed:
		return target == PickingStateAssigned || target == PickingStateCancel
	case PickingStateAssigned:
		return target == PickingStateDone || target == PickingStateCancel
	}
	return false
}

// Picking is a warehouse delivery shipment.
// PickupPartnerID mirrors the carrier's pickup partner and is only written
// through AssignCarrier and SyncPickupPartner.
type Picking struct {
	shared.BaseAggregateRoot
	Name              string
	State             PickingState
	ScheduledDate     time.Time
	PartnerID         *uuid.UUID // customer
	Origin            string     // source document, usually a sale order reference
	CarrierID         *uuid.UUID
	PickupPartnerID   *uuid.UUID
	PickupConfirmed   bool
	PickupConfirmedAt *time.Time
	PickupConfirmedBy *uuid.UUID
	DoneAt            *time.Time
}

// NewPicking creates a draft picking
func NewPicking(name string, scheduledDate time.Time) (*Picking, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Picking reference cannot be empty")
	}
	if len(name) > 100 {
		return nil, shared.NewDomainError("INVALID_NAME", "Picking reference cannot exceed 100 characters")
	}
	if scheduledDate.IsZero() {
		scheduledDate = time.Now()
	}

	return &Picking{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		State:             PickingStateDraft,
		ScheduledDate:     scheduledDate,
	}, nil
}

// SetCustomer sets the delivery customer and source document
func (p *Picking) SetCustomer(partnerID uuid.UUID, origin string) {
	id := partnerID
	p.PartnerID = &id
	p.Origin = strings.TrimSpace(origin)
	p.Touch()
}

// AssignCarrier sets the carrier and mirrors its pickup partner (nil when the
// carrier is not a pickup point)
func (p *Picking) AssignCarrier(carrierID uuid.UUID, pickupPartnerID *uuid.UUID) {
	id := carrierID
	p.CarrierID = &id
	p.PickupPartnerID = copyID(pickupPartnerID)
	p.Touch()
}

// SyncPickupPartner re-mirrors the carrier's pickup partner after it changed
func (p *Picking) SyncPickupPartner(pickupPartnerID *uuid.UUID) {
	p.PickupPartnerID = copyID(pickupPartnerID)
	p.Touch()
}

// MarkAssigned moves the picking to assigned (ready for delivery)
func (p *Picking) MarkAssigned() error {
	return p.transition(PickingStateAssigned)
}

// Validate marks the picking as done
func (p *Picking) Validate() error {
	if err := p.transition(PickingStateDone); err != nil {
		return err
	}
	now := time.Now()
	p.DoneAt = &now
	p.AddDomainEvent(NewPickingDoneEvent(p))
	return nil
}

// Cancel cancels the picking
func (p *Picking) Cancel() error {
	return p.transition(PickingStateCancel)
}

// IsOwnedBy reports whether partnerID is the pickup point serving this picking
func (p *Picking) IsOwnedBy(partnerID uuid.UUID) bool {
	return p.PickupPartnerID != nil && partnerID != uuid.Nil && *p.PickupPartnerID == partnerID
}

// ConfirmPickup records that the pickup point handed the goods over.
// It returns false without touching anything when already confirmed, so the
// first confirmation's date and user are never overwritten.
func (p *Picking) ConfirmPickup(userID uuid.UUID, at time.Time) (bool, error) {
	if p.PickupConfirmed {
		return false, nil
	}
	if userID == uuid.Nil {
		return false, shared.NewDomainError("INVALID_USER", "Confirming user cannot be empty")
	}

	by := userID
	p.PickupConfirmed = true
	p.PickupConfirmedAt = &at
	p.PickupConfirmedBy = &by
	p.TouchAt(at)
	p.AddDomainEvent(NewPickupConfirmedEvent(p))

	return true, nil
}

// Copy returns a new draft picking with the same routing. Confirmation data is never copied.
func (p *Picking) Copy(name string) (*Picking, error) {
	dup, err := NewPicking(name, p.ScheduledDate)
	if err != nil {
		return nil, err
	}
	dup.PartnerID = copyID(p.PartnerID)
	dup.Origin = p.Origin
	dup.CarrierID = copyID(p.CarrierID)
	dup.PickupPartnerID = copyID(p.PickupPartnerID)
	return dup, nil
}

func (p *Picking) transition(target PickingState) error {
	if !p.State.CanTransitionTo(target) {
		return shared.NewDomainError("INVALID_TRANSITION", fmt.Sprintf("Cannot transition from %s to %s", p.State, target))
	}
	p.State = target
	p.Touch()
	return nil
}

func copyID(id *uuid.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
