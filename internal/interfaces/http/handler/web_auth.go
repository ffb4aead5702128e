package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Olpagroup25/insa/internal/application/identity"
	"github.com/Olpagroup25/insa/internal/domain/shared"
	"github.com/Olpagroup25/insa/internal/infrastructure/config"
	"github.com/Olpagroup25/insa/internal/infrastructure/logger"
	"github.com/Olpagroup25/insa/internal/infrastructure/render"
	"github.com/Olpagroup25/insa/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// login failures shown on the form
var loginMessages = map[string]string{
	"INVALID_CREDENTIALS": "Usuario o contraseña incorrectos.",
	"ACCOUNT_LOCKED":      "La cuenta está bloqueada temporalmente. Intente más tarde.",
	"ACCOUNT_DEACTIVATED": "La cuenta está desactivada.",
}

// WebAuthHandler signs portal users in and out with a session cookie holding the access token
type WebAuthHandler struct {
	authService *identity.AuthService
	cookie      config.CookieConfig
	now         func() time.Time
}

// NewWebAuthHandler creates a new web auth handler
func NewWebAuthHandler(authService *identity.AuthService, cookie config.CookieConfig) *WebAuthHandler {
	return &WebAuthHandler{
		authService: authService,
		cookie:      cookie,
		now:         time.Now,
	}
}

// ShowLogin renders the login form. A signed-in user goes straight to the redirect target.
func (h *WebAuthHandler) ShowLogin(c *gin.Context) {
	redirect := safeRedirect(c.Query("redirect"))
	if middleware.GetJWTClaims(c) != nil {
		c.Redirect(http.StatusSeeOther, redirect)
		return
	}

	c.HTML(http.StatusOK, render.PageLogin, loginPage{
		Layout:   render.Layout{Title: "Iniciar sesión"},
		Redirect: redirect,
	})
}

// Login checks the posted credentials and sets the session cookie
func (h *WebAuthHandler) Login(c *gin.Context) {
	login := strings.TrimSpace(c.PostForm("login"))
	redirect := safeRedirect(c.PostForm("redirect"))

	result, err := h.authService.Login(c.Request.Context(), identity.LoginInput{
		Username: login,
		Password: c.PostForm("password"),
		IP:       c.ClientIP(),
	})
	if err != nil {
		var domainErr *shared.DomainError
		if errors.As(err, &domainErr) {
			if msg, ok := loginMessages[domainErr.Code]; ok {
				c.HTML(http.StatusOK, render.PageLogin, loginPage{
					Layout:   render.Layout{Title: "Iniciar sesión"},
					Error:    msg,
					Login:    login,
					Redirect: redirect,
				})
				return
			}
		}
		renderError(c, http.StatusInternalServerError, err)
		return
	}

	maxAge := int(result.AccessTokenExpiresAt.Sub(h.now()).Seconds())
	h.setCookie(c, result.AccessToken, maxAge)
	c.Redirect(http.StatusSeeOther, redirect)
}

// Logout revokes the session token and clears the cookie
func (h *WebAuthHandler) Logout(c *gin.Context) {
	if claims := middleware.GetJWTClaims(c); claims != nil {
		if err := h.authService.Logout(c.Request.Context(), identity.LogoutInput{
			TokenJTI: claims.ID,
			TokenTTL: claims.GetRemainingTTL(),
		}); err != nil {
			logger.FromContext(c.Request.Context()).Error("Failed to revoke portal session", zap.Error(err))
		}
	}

	h.setCookie(c, "", -1)
	c.Redirect(http.StatusSeeOther, LoginPath)
}

func (h *WebAuthHandler) setCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(sameSiteMode(h.cookie.SameSite))
	c.SetCookie(h.cookie.Name, value, maxAge, h.cookie.Path, h.cookie.Domain, h.cookie.Secure, true)
}

func sameSiteMode(mode string) http.SameSite {
	switch strings.ToLower(mode) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	}
	return http.SameSiteLaxMode
}

// safeRedirect keeps only local absolute paths, defaulting to the portal home
func safeRedirect(target string) string {
	if target == "" || !strings.HasPrefix(target, "/") ||
		strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return PortalHomePath
	}
	u, err := url.Parse(target)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return PortalHomePath
	}
	return target
}
