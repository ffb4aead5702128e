package identity

import (
	"context"

	"github.com/google/uuid"
)

// UserRepository persists login accounts. Lookups by username are
// case-insensitive; a missing user is shared.ErrNotFound.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	// FindByPartnerID returns the accounts acting for a partner, oldest first
	FindByPartnerID(ctx context.Context, partnerID uuid.UUID) ([]User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}
