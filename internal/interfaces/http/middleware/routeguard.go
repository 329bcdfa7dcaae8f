package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"vitalis/internal/infrastructure/auth"
	"vitalis/internal/shared/authorization"
	"vitalis/internal/shared/logger"
	"vitalis/internal/shared/utils"
)

const (
	adminPrefix    = "/admin"
	adminLoginPath = "/admin/login"
)

// sectionCapabilities maps admin page sections to the capability required
// to view them. Sections not listed only require a valid session.
var sectionCapabilities = map[string]authorization.Capability{
	"/admin/users":    authorization.CapUsersManage,
	"/admin/settings": authorization.CapSettingsManage,
}

// RouteGuard protects the browser-facing admin pages. Unlike RequireAuth
// it answers with redirects, not JSON:
//
//   - no session or a failed verification on any /admin page redirects to
//     /admin/login (the login page itself is exempt)
//   - a valid session whose role lacks the section's capability redirects
//     to the admin home instead of rendering a 403 page
//   - a valid session hitting /admin/login skips the form and goes home
//
// The verification failure cause is logged but never shown to the browser;
// every failure looks identical to a missing session.
func RouteGuard(tokens *auth.TokenService) gin.HandlerFunc {
	log := logger.NewLogger().With("component", "middleware.routeguard")

	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if !strings.HasPrefix(path, adminPrefix) {
			c.Next()
			return
		}

		token := utils.ExtractToken(c)
		isLoginPage := path == adminLoginPath

		if token == "" {
			if isLoginPage {
				c.Next()
				return
			}
			c.Redirect(http.StatusFound, adminLoginPath)
			c.Abort()
			return
		}

		result := tokens.Verify(token)
		if !result.Valid() {
			log.Warnw("admin session rejected",
				"status", result.Status,
				"path", path,
				"client_ip", c.ClientIP())

			if !isLoginPage {
				c.Redirect(http.StatusFound, adminLoginPath)
				c.Abort()
				return
			}
			c.Next()
			return
		}

		if isLoginPage {
			c.Redirect(http.StatusFound, adminPrefix)
			c.Abort()
			return
		}

		if capability, gated := sectionFor(path); gated && !result.Claims.Role.Can(capability) {
			log.Warnw("admin section denied",
				"role", result.Claims.Role,
				"capability", capability,
				"path", path,
				"user_id", result.Claims.UserID)
			c.Redirect(http.StatusFound, adminPrefix)
			c.Abort()
			return
		}

		c.Set(ContextUserID, result.Claims.UserID)
		c.Set(ContextEmail, result.Claims.Email)
		c.Set(ContextRole, result.Claims.Role)
		c.Next()
	}
}

// sectionFor matches the longest gated section prefix for the path.
func sectionFor(path string) (authorization.Capability, bool) {
	for section, capability := range sectionCapabilities {
		if path == section || strings.HasPrefix(path, section+"/") {
			return capability, true
		}
	}
	return "", false
}
