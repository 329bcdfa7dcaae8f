package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vitalis/internal/infrastructure/auth"
	"vitalis/internal/shared/authorization"
	"vitalis/internal/shared/logger"
	"vitalis/internal/shared/utils"
)

// Context keys set by RequireAuth for downstream handlers.
const (
	ContextUserID = "user_id"
	ContextEmail  = "user_email"
	ContextRole   = "user_role"
)

// RequireAuth validates the session token on JSON API routes. Failures
// return 401; the browser-facing redirect flow lives in RouteGuard.
func RequireAuth(tokens *auth.TokenService) gin.HandlerFunc {
	log := logger.NewLogger().With("component", "middleware.auth")

	return func(c *gin.Context) {
		token := utils.ExtractToken(c)
		if token == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
			c.Abort()
			return
		}

		result := tokens.Verify(token)
		if !result.Valid() {
			log.Warnw("token rejected",
				"status", result.Status,
				"path", c.Request.URL.Path,
				"client_ip", c.ClientIP())
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired session")
			c.Abort()
			return
		}

		c.Set(ContextUserID, result.Claims.UserID)
		c.Set(ContextEmail, result.Claims.Email)
		c.Set(ContextRole, result.Claims.Role)
		c.Next()
	}
}

// RequireCapability gates a route on the capability table. Must run after
// RequireAuth.
func RequireCapability(capability authorization.Capability) gin.HandlerFunc {
	log := logger.NewLogger().With("component", "middleware.auth")

	return func(c *gin.Context) {
		role, ok := CurrentRole(c)
		if !ok {
			utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
			c.Abort()
			return
		}

		if !role.Can(capability) {
			log.Warnw("capability denied",
				"role", role,
				"capability", capability,
				"path", c.Request.URL.Path)
			utils.ErrorResponse(c, http.StatusForbidden, "insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

// CurrentUserID returns the authenticated user's ID from the context.
func CurrentUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get(ContextUserID)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// CurrentRole returns the authenticated user's role from the context.
func CurrentRole(c *gin.Context) (authorization.UserRole, bool) {
	v, exists := c.Get(ContextRole)
	if !exists {
		return "", false
	}
	role, ok := v.(authorization.UserRole)
	return role, ok
}
