package partner

import (
	"context"

	"github.com/Olpagroup25/insa/internal/domain/shared"
	"github.com/google/uuid"
)

// PartnerRepository defines the interface for partner persistence
type PartnerRepository interface {
	// FindByID finds a partner by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Partner, error)

	// FindByIDs finds multiple partners by their IDs
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Partner, error)

	// FindAll finds all partners matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Partner, error)

	// Count counts partners matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// Save creates or updates a partner
	Save(ctx context.Context, p *Partner) error

	// ExistsByID checks if a partner exists
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}
