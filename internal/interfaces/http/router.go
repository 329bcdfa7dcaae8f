package http

import (
	"github.com/gin-gonic/gin"

	"vitalis/internal/infrastructure/metrics"
	"vitalis/internal/interfaces/http/middleware"
	"vitalis/internal/interfaces/http/routes"
)

// SetupRoutes installs the global middleware chain and every route group.
func (c *Container) SetupRoutes() {
	c.engine.Use(middleware.Recovery())
	c.engine.Use(middleware.RequestLogger(c.log))
	c.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	c.engine.Use(middleware.SecurityHeaders())
	c.engine.Use(middleware.Metrics(c.collector))

	c.engine.GET("/healthz", c.healthHandler.Check)
	c.engine.GET("/metrics", gin.WrapH(metrics.Handler(c.registry)))

	// Uploaded assets are public once stored.
	c.engine.Static(c.cfg.Upload.PublicBaseURL, c.cfg.Upload.Root)

	routes.SetupPublicRoutes(c.engine, &routes.PublicRouteConfig{
		ArticleHandler:    c.articleHandler,
		ReviewHandler:     c.reviewHandler,
		SupplementHandler: c.supplementHandler,
		BrandHandler:      c.brandHandler,
		ExpertHandler:     c.expertHandler,
		CategoryHandler:   c.categoryHandler,
		FAQHandler:        c.faqHandler,
		SettingHandler:    c.settingHandler,
		ContactHandler:    c.contactHandler,
		RateLimiter:       c.rateLimiter,
	})

	routes.SetupAuthRoutes(c.engine, &routes.AuthRouteConfig{
		AuthHandler:  c.authHandler,
		TokenService: c.tokens,
		RateLimiter:  c.rateLimiter,
	})

	routes.SetupAdminRoutes(c.engine, &routes.AdminRouteConfig{
		ArticleHandler:    c.articleHandler,
		ReviewHandler:     c.reviewHandler,
		SupplementHandler: c.supplementHandler,
		BrandHandler:      c.brandHandler,
		ExpertHandler:     c.expertHandler,
		CategoryHandler:   c.categoryHandler,
		FAQHandler:        c.faqHandler,
		SettingHandler:    c.settingHandler,
		UserHandler:       c.userHandler,
		UploadHandler:     c.uploadHandler,
		TokenService:      c.tokens,
		RateLimiter:       c.rateLimiter,
	})

	routes.SetupAdminPageRoutes(c.engine, &routes.AdminPageRouteConfig{
		TokenService: c.tokens,
		StaticDir:    c.cfg.Server.AdminStaticDir,
	})
}

// Run starts the HTTP server on the configured address.
func (c *Container) Run() error {
	return c.engine.Run(c.cfg.Server.GetAddr())
}
