package identity

import (
	"context"
	"testing"
	"time"

	"github.com/Olpagroup25/insa/internal/domain/identity"
	"github.com/Olpagroup25/insa/internal/domain/shared"
	"github.com/Olpagroup25/insa/internal/infrastructure/auth"
	"github.com/Olpagroup25/insa/internal/infrastructure/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testPassword = "recogida2024"

func newTestAuthService(repo *MockUserRepository, blacklist auth.TokenBlacklist) (*AuthService, *auth.JWTService) {
	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-key-at-least-32-chars",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: time.Hour,
		Issuer:                 "insa-test",
	})
	svc := NewAuthService(repo, jwtService, blacklist, AuthServiceConfig{
		MaxLoginAttempts: 3,
		LockDuration:     15 * time.Minute,
	}, zap.NewNop())
	return svc, jwtService
}

func newPortalUser(t *testing.T) *identity.User {
	t.Helper()
	user, err := identity.NewUser("punto.centro", testPassword, uuid.New(), identity.UserKindPortal)
	require.NoError(t, err)
	return user
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := new(MockUserRepository)
	svc, jwtService := newTestAuthService(repo, nil)
	user := newPortalUser(t)

	repo.On("FindByUsername", mock.Anything, "punto.centro").Return(user, nil)
	repo.On("Update", mock.Anything, user).Return(nil)

	result, err := svc.Login(context.Background(), LoginInput{Username: "punto.centro", Password: testPassword, IP: "10.0.0.1"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", result.TokenType)
	assert.Equal(t, user.PartnerID, result.User.PartnerID)
	assert.Equal(t, []string{identity.PermissionPortalPickup}, result.User.Permissions)
	assert.Equal(t, "10.0.0.1", user.LastLoginIP)

	claims, err := jwtService.ValidateAccessToken(result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.PartnerID.String(), claims.PartnerID)
	repo.AssertExpectations(t)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	repo := new(MockUserRepository)
	svc, _ := newTestAuthService(repo, nil)
	repo.On("FindByUsername", mock.Anything, "nobody").Return(nil, shared.ErrNotFound)

	_, err := svc.Login(context.Background(), LoginInput{Username: "nobody", Password: "x"})
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_CREDENTIALS", domainErr.Code)
}

func TestAuthService_Login_LocksAfterMaxAttempts(t *testing.T) {
	repo := new(MockUserRepository)
	svc, _ := newTestAuthService(repo, nil)
	user := newPortalUser(t)

	repo.On("FindByUsername", mock.Anything, "punto.centro").Return(user, nil)
	repo.On("Update", mock.Anything, user).Return(nil)

	for i := 0; i < 2; i++ {
		_, err := svc.Login(context.Background(), LoginInput{Username: "punto.centro", Password: "wrong-pass1"})
		assert.ErrorIs(t, err, errInvalidCredentials)
	}
	_, err := svc.Login(context.Background(), LoginInput{Username: "punto.centro", Password: "wrong-pass1"})
	assert.ErrorIs(t, err, errAccountLocked)
	assert.True(t, user.IsLocked())

	_, err = svc.Login(context.Background(), LoginInput{Username: "punto.centro", Password: testPassword})
	assert.ErrorIs(t, err, errAccountLocked)
	repo.AssertNumberOfCalls(t, "Update", 3)
}

func TestAuthService_Login_Deactivated(t *testing.T) {
	repo := new(MockUserRepository)
	svc, _ := newTestAuthService(repo, nil)
	user := newPortalUser(t)
	require.NoError(t, user.Deactivate())
	repo.On("FindByUsername", mock.Anything, "punto.centro").Return(user, nil)

	_, err := svc.Login(context.Background(), LoginInput{Username: "punto.centro", Password: testPassword})
	assert.ErrorIs(t, err, errAccountDisabled)
}

func TestAuthService_RefreshAndLogout(t *testing.T) {
	repo := new(MockUserRepository)
	blacklist := auth.NewInMemoryTokenBlacklist()
	svc, jwtService := newTestAuthService(repo, blacklist)
	user := newPortalUser(t)

	pair, err := jwtService.GenerateTokenPair(subjectOf(user))
	require.NoError(t, err)
	repo.On("FindByID", mock.Anything, user.ID).Return(user, nil)

	refreshed, err := svc.Refresh(context.Background(), pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	_, err = svc.Refresh(context.Background(), pair.RefreshToken)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "TOKEN_REVOKED", domainErr.Code, "a refresh token is single use")

	claims, err := jwtService.ValidateAccessToken(refreshed.AccessToken)
	require.NoError(t, err)
	require.NoError(t, svc.Logout(context.Background(), LogoutInput{TokenJTI: claims.ID, TokenTTL: claims.GetRemainingTTL()}))
	revoked, err := blacklist.IsBlacklisted(context.Background(), claims.ID)
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestAuthService_Refresh_InvalidToken(t *testing.T) {
	svc, _ := newTestAuthService(new(MockUserRepository), nil)

	_, err := svc.Refresh(context.Background(), "garbage")
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "TOKEN_INVALID", domainErr.Code)
}

func TestAuthService_Logout_WithoutBlacklist(t *testing.T) {
	svc, _ := newTestAuthService(new(MockUserRepository), nil)
	assert.NoError(t, svc.Logout(context.Background(), LogoutInput{TokenJTI: "abc", TokenTTL: time.Minute}))
}
