package handlers

import (
	"time"

	"github.com/Norbu-d/SS2025-WEB-Final-project/internal/config"
	"github.com/Norbu-d/SS2025-WEB-Final-project/internal/middleware"
	"github.com/gin-gonic/gin"
)

// CookieHelper manages the authentication cookie.
type CookieHelper struct {
	config config.CookieConfig
}

// NewCookieHelper creates a new cookie helper with the given configuration.
func NewCookieHelper(config config.CookieConfig) *CookieHelper {
	return &CookieHelper{config: config}
}

// SetToken writes the auth token cookie with the given lifetime.
func (h *CookieHelper) SetToken(c *gin.Context, token string, expiry time.Duration) {
	h.setCookie(c, middleware.TokenCookie, token, int(expiry.Seconds()))
}

// ClearToken removes the auth token cookie. Logout is exactly this: the
// token itself stays valid until expiry, nothing is revoked server-side.
func (h *CookieHelper) ClearToken(c *gin.Context) {
	h.setCookie(c, middleware.TokenCookie, "", -1)
}

func (h *CookieHelper) setCookie(c *gin.Context, name, value string, maxAge int) {
	c.SetSameSite(h.config.SameSite)
	c.SetCookie(
		name,
		value,
		maxAge,
		h.config.Path,
		h.config.Domain,
		h.config.Secure,
		true, // httpOnly - always true for auth cookies
	)
}
