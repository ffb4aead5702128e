package inventory

import (
	"context"

	"github.com/google/uuid"
)

// PickupSort is the ordering of a pickup point's shipment list
type PickupSort string

const (
	PickupSortDate  PickupSort = "date"  // scheduled date, newest first
	PickupSortName  PickupSort = "name"  // reference ascending
	PickupSortState PickupSort = "state" // state ascending
)

// IsValid checks if the sort key is known
func (s PickupSort) IsValid() bool {
	switch s {
	case PickupSortDate, PickupSortName, PickupSortState:
		return true
	}
	return false
}

// PickupQuery selects the pickings routed to one pickup partner
type PickupQuery struct {
	PickupPartnerID uuid.UUID
	States          []PickingState
	Confirmed       *bool // nil means both
	Sort            PickupSort
	Offset          int
	Limit           int
}

// PickingRepository defines the interface for picking persistence
type PickingRepository interface {
	// FindByID finds a picking by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Picking, error)

	// FindByName finds a picking by its reference
	FindByName(ctx context.Context, name string) (*Picking, error)

	// FindForPickupPartner returns one page of pickings matching the query
	FindForPickupPartner(ctx context.Context, query PickupQuery) ([]Picking, error)

	// CountForPickupPartner counts pickings matching the query, ignoring offset and limit
	CountForPickupPartner(ctx context.Context, query PickupQuery) (int64, error)

	// Save creates or updates a picking
	Save(ctx context.Context, picking *Picking) error

	// SavePickupConfirmation persists the confirmation fields only if the stored
	// picking is still unconfirmed. It returns false when another request won.
	SavePickupConfirmation(ctx context.Context, picking *Picking) (bool, error)

	// SyncPickupPartner rewrites the mirrored pickup partner of every picking of a carrier
	SyncPickupPartner(ctx context.Context, carrierID uuid.UUID, pickupPartnerID *uuid.UUID) (int64, error)
}
