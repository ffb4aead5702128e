package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	appidentity "github.com/Olpagroup25/insa/internal/application/identity"
	"github.com/Olpagroup25/insa/internal/domain/identity"
	"github.com/Olpagroup25/insa/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func doJSON(engine *gin.Engine, method, target string, body any, bearer string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) APIResponse[T] {
	t.Helper()
	var resp APIResponse[T]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return resp
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("issues a token pair", func(t *testing.T) {
		f := newAuthFixture(t)
		user := newPortalUser(t)
		f.users.On("FindByUsername", mock.Anything, "punto.centro").Return(user, nil)
		f.users.On("Update", mock.Anything, user).Return(nil)

		w := doJSON(f.engine, http.MethodPost, "/api/v1/auth/login",
			LoginRequest{Username: "punto.centro", Password: testPassword}, "")

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		resp := decode[LoginResponse](t, w)
		assert.True(t, resp.Success)
		assert.Equal(t, "Bearer", resp.Data.Token.TokenType)
		assert.NotEmpty(t, resp.Data.Token.RefreshToken)
		assert.Equal(t, user.ID, resp.Data.User.ID)
		assert.Equal(t, []string{identity.PermissionPortalPickup}, resp.Data.User.Permissions)

		claims, err := f.jwt.ValidateAccessToken(resp.Data.Token.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "punto.centro", claims.Username)
	})

	t.Run("missing password is a validation error", func(t *testing.T) {
		f := newAuthFixture(t)

		w := doJSON(f.engine, http.MethodPost, "/api/v1/auth/login",
			map[string]string{"username": "punto.centro"}, "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		f.users.AssertNotCalled(t, "FindByUsername", mock.Anything, mock.Anything)
	})

	t.Run("wrong password is unauthorized", func(t *testing.T) {
		f := newAuthFixture(t)
		user := newPortalUser(t)
		f.users.On("FindByUsername", mock.Anything, "punto.centro").Return(user, nil)
		f.users.On("Update", mock.Anything, user).Return(nil)

		w := doJSON(f.engine, http.MethodPost, "/api/v1/auth/login",
			LoginRequest{Username: "punto.centro", Password: "otraclave99"}, "")

		require.Equal(t, http.StatusUnauthorized, w.Code)
		resp := decode[any](t, w)
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrCodeInvalidCredentials, resp.Error.Code)
	})

	t.Run("deactivated account is forbidden", func(t *testing.T) {
		f := newAuthFixture(t)
		user := newPortalUser(t)
		require.NoError(t, user.Deactivate())
		f.users.On("FindByUsername", mock.Anything, "punto.centro").Return(user, nil)

		w := doJSON(f.engine, http.MethodPost, "/api/v1/auth/login",
			LoginRequest{Username: "punto.centro", Password: testPassword}, "")

		require.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, dto.ErrCodeAccountDisabled, decode[any](t, w).Error.Code)
	})
}

func TestAuthHandler_Refresh(t *testing.T) {
	f := newAuthFixture(t)
	user := newPortalUser(t)
	f.users.On("FindByID", mock.Anything, user.ID).Return(user, nil)

	pair, err := f.jwt.GenerateTokenPair(subjectFor(user))
	require.NoError(t, err)

	w := doJSON(f.engine, http.MethodPost, "/api/v1/auth/refresh",
		RefreshTokenRequest{RefreshToken: pair.RefreshToken}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.NotEmpty(t, decode[RefreshTokenResponse](t, w).Data.Token.AccessToken)

	// the used refresh token is revoked
	w = doJSON(f.engine, http.MethodPost, "/api/v1/auth/refresh",
		RefreshTokenRequest{RefreshToken: pair.RefreshToken}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, dto.ErrCodeTokenRevoked, decode[any](t, w).Error.Code)
}

func TestAuthHandler_MeAndLogout(t *testing.T) {
	f := newAuthFixture(t)
	user := newPortalUser(t)
	f.users.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	token := f.token(t, user)

	w := doJSON(f.engine, http.MethodGet, "/api/v1/auth/me", nil, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	me := decode[appidentity.UserInfo](t, w)
	assert.Equal(t, "punto.centro", me.Data.Username)
	assert.Equal(t, user.PartnerID, me.Data.PartnerID)

	w = doJSON(f.engine, http.MethodPost, "/api/v1/auth/logout", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(f.engine, http.MethodGet, "/api/v1/auth/me", nil, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_MeWithoutToken(t *testing.T) {
	f := newAuthFixture(t)

	w := doJSON(f.engine, http.MethodGet, "/api/v1/auth/me", nil, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
