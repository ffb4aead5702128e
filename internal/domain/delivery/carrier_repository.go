package delivery

import (
	"context"

	"github.com/Olpagroup25/insa/internal/domain/shared"
	"github.com/google/uuid"
)

// CarrierRepository defines the interface for carrier persistence
type CarrierRepository interface {
	// FindByID finds a carrier by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Carrier, error)

	// FindAll finds all carriers matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Carrier, error)

	// FindPickupPoints finds active carriers linked to a pickup partner
	FindPickupPoints(ctx context.Context) ([]Carrier, error)

	// Count counts carriers matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// Save creates or updates a carrier
	Save(ctx context.Context, carrier *Carrier) error
}
