package routes

import (
	"path/filepath"

	"github.com/gin-gonic/gin"

	"vitalis/internal/infrastructure/auth"
	"vitalis/internal/interfaces/http/middleware"
)

// AdminPageRouteConfig holds dependencies for the browser-facing admin pages.
type AdminPageRouteConfig struct {
	TokenService *auth.TokenService
	// StaticDir is the directory holding the built admin UI. The single
	// page app handles its own routing, so every page path serves index.html.
	StaticDir string
}

// SetupAdminPageRoutes configures the /admin page routes. The route guard
// runs before any page is served: unauthenticated browsers are redirected to
// the login page and under-privileged sessions back to the admin landing.
func SetupAdminPageRoutes(engine *gin.Engine, cfg *AdminPageRouteConfig) {
	index := filepath.Join(cfg.StaticDir, "index.html")
	serve := func(c *gin.Context) {
		c.File(index)
	}

	pages := engine.Group("/admin", middleware.RouteGuard(cfg.TokenService))
	pages.GET("", serve)
	pages.GET("/*page", func(c *gin.Context) {
		page := c.Param("page")
		// Hashed build assets live next to index.html.
		if filepath.Ext(page) != "" {
			c.File(filepath.Join(cfg.StaticDir, filepath.Clean(page)))
			return
		}
		serve(c)
	})
}
