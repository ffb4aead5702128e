package identity

import (
	"github.com/Olpagroup25/insa/internal/domain/shared"
	"github.com/google/uuid"
)

// Aggregate type constant for User
const AggregateTypeUser = "User"

const EventTypeUserCreated = "UserCreated"

// UserCreatedEvent is published when a user is created
type UserCreatedEvent struct {
	shared.BaseDomainEvent
	Username  string    `json:"username"`
	PartnerID uuid.UUID `json:"partner_id"`
	Kind      UserKind  `json:"kind"`
}

// NewUserCreatedEvent creates a new UserCreatedEvent
func NewUserCreatedEvent(user *User) *UserCreatedEvent {
	return &UserCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeUserCreated, AggregateTypeUser, user.ID),
		Username:        user.Username,
		PartnerID:       user.PartnerID,
		Kind:            user.Kind,
	}
}
