package routes

import (
	"github.com/gin-gonic/gin"

	"vitalis/internal/interfaces/http/handlers"
	"vitalis/internal/interfaces/http/middleware"
)

// PublicRouteConfig holds dependencies for the read-only public API.
type PublicRouteConfig struct {
	ArticleHandler    *handlers.ArticleHandler
	ReviewHandler     *handlers.ReviewHandler
	SupplementHandler *handlers.SupplementHandler
	BrandHandler      *handlers.BrandHandler
	ExpertHandler     *handlers.ExpertHandler
	CategoryHandler   *handlers.CategoryHandler
	FAQHandler        *handlers.FAQHandler
	SettingHandler    *handlers.SettingHandler
	ContactHandler    *handlers.ContactHandler
	RateLimiter       *middleware.RateLimiter
}

// SetupPublicRoutes configures the public content API. Only published
// content is reachable here.
func SetupPublicRoutes(engine *gin.Engine, cfg *PublicRouteConfig) {
	api := engine.Group("/api")
	{
		api.GET("/articles", cfg.ArticleHandler.PublicList)
		api.GET("/articles/:slug", cfg.ArticleHandler.PublicGet)

		api.GET("/reviews", cfg.ReviewHandler.PublicList)
		api.GET("/reviews/:slug", cfg.ReviewHandler.PublicGet)

		api.GET("/supplements", cfg.SupplementHandler.PublicList)
		api.GET("/supplements/:slug", cfg.SupplementHandler.PublicGet)

		api.GET("/brands", cfg.BrandHandler.List)
		api.GET("/brands/:slug", cfg.BrandHandler.PublicGet)

		api.GET("/experts", cfg.ExpertHandler.List)
		api.GET("/experts/:slug", cfg.ExpertHandler.PublicGet)

		api.GET("/categories", cfg.CategoryHandler.List)
		api.GET("/faqs", cfg.FAQHandler.PublicList)
		api.GET("/settings/public", cfg.SettingHandler.PublicList)

		api.POST("/contact", cfg.RateLimiter.Limit(), cfg.ContactHandler.Submit)
	}
}
