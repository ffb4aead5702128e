package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Olpagroup25/insa/internal/infrastructure/auth"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func withClaims(claims *auth.Claims) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims != nil {
			c.Set(JWTClaimsKey, claims)
		}
		c.Next()
	}
}

func TestRequireAnyPermission(t *testing.T) {
	tests := []struct {
		name   string
		claims *auth.Claims
		want   int
	}{
		{"no claims", nil, http.StatusUnauthorized},
		{"lacks permission", &auth.Claims{Permissions: []string{"portal.pickup"}}, http.StatusForbidden},
		{"has one of them", &auth.Claims{Permissions: []string{"carrier.manage"}}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.GET("/test", withClaims(tt.claims), RequireAnyPermission("partner.manage", "carrier.manage"), okHandler)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestHasPermission(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.False(t, HasPermission(c, "portal.pickup"))

	c.Set(JWTClaimsKey, &auth.Claims{Permissions: []string{"portal.pickup"}})
	assert.True(t, HasPermission(c, "portal.pickup"))
	assert.False(t, HasPermission(c, "user.manage"))
}
