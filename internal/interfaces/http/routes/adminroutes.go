package routes

import (
	"github.com/gin-gonic/gin"

	"vitalis/internal/infrastructure/auth"
	"vitalis/internal/interfaces/http/handlers"
	"vitalis/internal/interfaces/http/middleware"
	"vitalis/internal/shared/authorization"
)

// AdminRouteConfig holds dependencies for the admin API.
type AdminRouteConfig struct {
	ArticleHandler    *handlers.ArticleHandler
	ReviewHandler     *handlers.ReviewHandler
	SupplementHandler *handlers.SupplementHandler
	BrandHandler      *handlers.BrandHandler
	ExpertHandler     *handlers.ExpertHandler
	CategoryHandler   *handlers.CategoryHandler
	FAQHandler        *handlers.FAQHandler
	SettingHandler    *handlers.SettingHandler
	UserHandler       *handlers.UserHandler
	UploadHandler     *handlers.UploadHandler
	TokenService      *auth.TokenService
	RateLimiter       *middleware.RateLimiter
}

// SetupAdminRoutes configures the authenticated admin API. Every route sits
// behind RequireAuth; mutating routes add a capability check matching the
// role table.
func SetupAdminRoutes(engine *gin.Engine, cfg *AdminRouteConfig) {
	admin := engine.Group("/api/admin", middleware.RequireAuth(cfg.TokenService))

	write := middleware.RequireCapability(authorization.CapContentWrite)
	publish := middleware.RequireCapability(authorization.CapContentPublish)
	del := middleware.RequireCapability(authorization.CapContentDelete)

	articles := admin.Group("/articles")
	{
		articles.GET("", cfg.ArticleHandler.List)
		articles.POST("", write, cfg.ArticleHandler.Create)
		articles.GET("/:id", cfg.ArticleHandler.Get)
		articles.PUT("/:id", write, cfg.ArticleHandler.Update)
		articles.DELETE("/:id", del, cfg.ArticleHandler.Delete)
		articles.POST("/:id/publish", publish, cfg.ArticleHandler.Publish)
		articles.POST("/:id/unpublish", publish, cfg.ArticleHandler.Unpublish)
	}

	reviews := admin.Group("/reviews")
	{
		reviews.GET("", cfg.ReviewHandler.List)
		reviews.POST("", write, cfg.ReviewHandler.Create)
		reviews.GET("/:id", cfg.ReviewHandler.Get)
		reviews.PUT("/:id", write, cfg.ReviewHandler.Update)
		reviews.DELETE("/:id", del, cfg.ReviewHandler.Delete)
		reviews.POST("/:id/publish", publish, cfg.ReviewHandler.Publish)
		reviews.POST("/:id/unpublish", publish, cfg.ReviewHandler.Unpublish)
	}

	supplements := admin.Group("/supplements")
	{
		supplements.GET("", cfg.SupplementHandler.List)
		supplements.POST("", write, cfg.SupplementHandler.Create)
		supplements.GET("/:id", cfg.SupplementHandler.Get)
		supplements.PUT("/:id", write, cfg.SupplementHandler.Update)
		supplements.DELETE("/:id", del, cfg.SupplementHandler.Delete)
		supplements.POST("/:id/publish", publish, cfg.SupplementHandler.Publish)
		supplements.POST("/:id/unpublish", publish, cfg.SupplementHandler.Unpublish)
	}

	brands := admin.Group("/brands")
	{
		brands.GET("", cfg.BrandHandler.List)
		brands.POST("", write, cfg.BrandHandler.Create)
		brands.GET("/:id", cfg.BrandHandler.Get)
		brands.PUT("/:id", write, cfg.BrandHandler.Update)
		brands.DELETE("/:id", del, cfg.BrandHandler.Delete)
	}

	experts := admin.Group("/experts")
	{
		experts.GET("", cfg.ExpertHandler.List)
		experts.POST("", write, cfg.ExpertHandler.Create)
		experts.GET("/:id", cfg.ExpertHandler.Get)
		experts.PUT("/:id", write, cfg.ExpertHandler.Update)
		experts.DELETE("/:id", del, cfg.ExpertHandler.Delete)
	}

	categories := admin.Group("/categories")
	{
		categories.GET("", cfg.CategoryHandler.List)
		categories.POST("", write, cfg.CategoryHandler.Create)
		categories.GET("/:id", cfg.CategoryHandler.Get)
		categories.PUT("/:id", write, cfg.CategoryHandler.Update)
		categories.DELETE("/:id", del, cfg.CategoryHandler.Delete)
	}

	faqs := admin.Group("/faqs")
	{
		faqs.GET("", cfg.FAQHandler.List)
		faqs.POST("", write, cfg.FAQHandler.Create)
		faqs.GET("/:id", cfg.FAQHandler.Get)
		faqs.PUT("/:id", write, cfg.FAQHandler.Update)
		faqs.DELETE("/:id", del, cfg.FAQHandler.Delete)
	}

	settings := admin.Group("/settings", middleware.RequireCapability(authorization.CapSettingsManage))
	{
		settings.GET("", cfg.SettingHandler.List)
		settings.PUT("", cfg.SettingHandler.Set)
		settings.GET("/:key", cfg.SettingHandler.Get)
		settings.DELETE("/:key", cfg.SettingHandler.Delete)
	}

	users := admin.Group("/users", middleware.RequireCapability(authorization.CapUsersManage))
	{
		users.GET("", cfg.UserHandler.List)
		users.POST("", cfg.UserHandler.Create)
		users.GET("/:id", cfg.UserHandler.Get)
		users.PUT("/:id", cfg.UserHandler.Update)
		users.DELETE("/:id", cfg.UserHandler.Delete)
	}

	admin.POST("/upload",
		middleware.RequireCapability(authorization.CapUploadsWrite),
		cfg.RateLimiter.Limit(),
		cfg.UploadHandler.Upload,
	)
}
