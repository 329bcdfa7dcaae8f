package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authapp "vitalis/internal/application/auth"
	"vitalis/internal/infrastructure/auth"
	"vitalis/internal/interfaces/http/middleware"
	"vitalis/internal/shared/authorization"
	"vitalis/internal/shared/config"
	"vitalis/internal/shared/logger"
	"vitalis/internal/shared/utils"
)

// AuthHandler handles login, logout and session introspection.
type AuthHandler struct {
	authService  *authapp.Service
	tokens       *auth.TokenService
	cookieConfig config.CookieConfig
	logger       logger.Interface
}

func NewAuthHandler(authService *authapp.Service, tokens *auth.TokenService, cookieConfig config.CookieConfig) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		tokens:       tokens,
		cookieConfig: cookieConfig,
		logger:       logger.NewLogger().With("component", "auth.handler"),
	}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}

// Login handles POST /api/auth/login. On success the token is set as an
// HttpOnly cookie and also returned in the body for non-browser clients.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid login request body", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "email and password are required")
		return
	}

	token, sessionUser, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SetSessionCookie(c, h.cookieConfig, token, h.tokens.SessionMaxAge())
	utils.SuccessResponse(c, http.StatusOK, "login successful", gin.H{
		"token": token,
		"user":  sessionUser,
	})
}

// Logout handles POST /api/auth/logout by clearing the session cookie.
// Tokens are stateless, so logout is purely client-side invalidation.
func (h *AuthHandler) Logout(c *gin.Context) {
	utils.ClearSessionCookie(c, h.cookieConfig)
	utils.SuccessResponse(c, http.StatusOK, "logged out", nil)
}

// Me handles GET /api/auth/me, returning the session user and its
// capability set for the admin UI to shape its navigation.
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	sessionUser, err := h.authService.Me(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	role := authorization.UserRole(sessionUser.Role)
	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"user":         sessionUser,
		"capabilities": role.Capabilities(),
	})
}

// ChangePassword handles POST /api/auth/password.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "current and new password are required")
		return
	}

	if err := h.authService.ChangePassword(c.Request.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "password changed", nil)
}
