package identity

import (
	"context"
	"strings"
	"time"

	"github.com/Olpagroup25/insa/internal/domain/identity"
	"github.com/Olpagroup25/insa/internal/domain/partner"
	"github.com/Olpagroup25/insa/internal/domain/shared"
	"github.com/Olpagroup25/insa/internal/infrastructure/auth"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UserService manages login accounts for back-office operators
type UserService struct {
	userRepo    identity.UserRepository
	partnerRepo partner.PartnerRepository
	blacklist   auth.TokenBlacklist
	sessionTTL  time.Duration
	logger      *zap.Logger
}

// NewUserService creates a new user service.
// sessionTTL is the longest token lifetime; revocation markers live that long.
func NewUserService(
	userRepo identity.UserRepository,
	partnerRepo partner.PartnerRepository,
	blacklist auth.TokenBlacklist,
	sessionTTL time.Duration,
	logger *zap.Logger,
) *UserService {
	return &UserService{
		userRepo:    userRepo,
		partnerRepo: partnerRepo,
		blacklist:   blacklist,
		sessionTTL:  sessionTTL,
		logger:      logger,
	}
}

// Create creates a user bound to an existing partner
func (s *UserService) Create(ctx context.Context, input CreateUserInput) (*UserInfo, error) {
	exists, err := s.userRepo.ExistsByUsername(ctx, strings.TrimSpace(input.Username))
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Username is already taken")
	}

	partnerExists, err := s.partnerRepo.ExistsByID(ctx, input.PartnerID)
	if err != nil {
		return nil, err
	}
	if !partnerExists {
		return nil, shared.NewDomainError("INVALID_PARTNER", "Partner does not exist")
	}

	kind := identity.UserKind(input.Kind)
	if kind == "" {
		kind = identity.UserKindPortal
	}
	user, err := identity.NewUser(input.Username, input.Password, input.PartnerID, kind)
	if err != nil {
		return nil, err
	}
	if err := user.SetEmail(input.Email); err != nil {
		return nil, err
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("User created",
		zap.String("user_id", user.ID.String()),
		zap.String("kind", string(user.Kind)),
		zap.String("partner_id", user.PartnerID.String()),
	)
	info := ToUserInfo(user)
	return &info, nil
}

// Get returns one user
func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*UserInfo, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	info := ToUserInfo(user)
	return &info, nil
}

// ListByPartner returns the accounts bound to a partner
func (s *UserService) ListByPartner(ctx context.Context, partnerID uuid.UUID) ([]UserInfo, error) {
	users, err := s.userRepo.FindByPartnerID(ctx, partnerID)
	if err != nil {
		return nil, err
	}
	infos := make([]UserInfo, len(users))
	for i := range users {
		infos[i] = ToUserInfo(&users[i])
	}
	return infos, nil
}

// Deactivate archives a user and revokes every session it holds
func (s *UserService) Deactivate(ctx context.Context, id uuid.UUID) error {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := user.Deactivate(); err != nil {
		return err
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}
	if s.blacklist != nil {
		if err := s.blacklist.AddUserTokensToBlacklist(ctx, user.ID.String(), s.sessionTTL); err != nil {
			s.logger.Error("Failed to revoke sessions of deactivated user", zap.Error(err))
		}
	}
	s.logger.Info("User deactivated", zap.String("user_id", user.ID.String()))
	return nil
}
