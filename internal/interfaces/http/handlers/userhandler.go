package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	userapp "vitalis/internal/application/user"
	"vitalis/internal/interfaces/http/middleware"
	"vitalis/internal/shared/logger"
	"vitalis/internal/shared/utils"
)

// UserHandler handles admin account management endpoints.
type UserHandler struct {
	userService *userapp.Service
	logger      logger.Interface
}

func NewUserHandler(userService *userapp.Service) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger.NewLogger().With("component", "user.handler"),
	}
}

// Create handles POST /api/admin/users.
func (h *UserHandler) Create(c *gin.Context) {
	var input userapp.CreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warnw("invalid create user request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	dto, err := h.userService.Create(c.Request.Context(), input)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto, "user created")
}

// Get handles GET /api/admin/users/:id.
func (h *UserHandler) Get(c *gin.Context) {
	id, err := ParseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	dto, err := h.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto)
}

// Update handles PUT /api/admin/users/:id.
func (h *UserHandler) Update(c *gin.Context) {
	id, err := ParseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var input userapp.UpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	dto, err := h.userService.Update(c.Request.Context(), id, input)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "user updated", dto)
}

// Delete handles DELETE /api/admin/users/:id.
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := ParseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actorID, _ := middleware.CurrentUserID(c)

	if err := h.userService.Delete(c.Request.Context(), id, actorID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// List handles GET /api/admin/users.
func (h *UserHandler) List(c *gin.Context) {
	p, err := utils.ParsePagination(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	users, total, err := h.userService.List(c.Request.Context(), p)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, users, total, p.Page, p.PageSize)
}
