// Package middleware provides HTTP middleware for the social backend.
package middleware

import (
	"net/http"
	"strings"

	"github.com/Norbu-d/SS2025-WEB-Final-project/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// TokenCookie is the cookie carrying the bearer token.
const TokenCookie = "token"

// principalKey is the single context key downstream code reads the
// authenticated principal from.
const principalKey = "auth.principal"

// RequireAuth authenticates the request before anything else runs.
// Extraction order is fixed: the cookie wins if present, then the
// Authorization header; with neither, the request is rejected without
// touching the token service. Expired and invalid tokens both answer
// 401 so validity details never leak to callers.
func RequireAuth(tokens service.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			abortUnauthenticated(c, "authentication required")
			return
		}

		principal, err := tokens.Verify(token)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"request_id": RequestIDFrom(c),
				"reason":     err.Error(),
			}).Debug("token rejected")
			abortUnauthenticated(c, "invalid or expired token")
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

// PrincipalFrom returns the authenticated principal attached by
// RequireAuth.
func PrincipalFrom(c *gin.Context) (*service.Principal, bool) {
	value, ok := c.Get(principalKey)
	if !ok {
		return nil, false
	}
	principal, ok := value.(*service.Principal)
	return principal, ok
}

func extractToken(c *gin.Context) string {
	if token, err := c.Cookie(TokenCookie); err == nil && token != "" {
		return token
	}

	header := c.GetHeader("Authorization")
	if parts := strings.SplitN(header, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}

	return ""
}

func abortUnauthenticated(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error":   gin.H{"kind": "unauthenticated", "message": message},
	})
}
