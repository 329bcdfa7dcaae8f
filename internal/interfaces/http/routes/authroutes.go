package routes

import (
	"github.com/gin-gonic/gin"

	"vitalis/internal/infrastructure/auth"
	"vitalis/internal/interfaces/http/handlers"
	"vitalis/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler  *handlers.AuthHandler
	TokenService *auth.TokenService
	RateLimiter  *middleware.RateLimiter
}

// SetupAuthRoutes configures authentication routes.
func SetupAuthRoutes(engine *gin.Engine, cfg *AuthRouteConfig) {
	authGroup := engine.Group("/api/auth")
	{
		authGroup.POST("/login", cfg.RateLimiter.Limit(), cfg.AuthHandler.Login)
		authGroup.POST("/logout", cfg.AuthHandler.Logout)
		authGroup.GET("/me", middleware.RequireAuth(cfg.TokenService), cfg.AuthHandler.Me)
		authGroup.POST("/password", middleware.RequireAuth(cfg.TokenService), cfg.AuthHandler.ChangePassword)
	}
}
