package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	settingapp "vitalis/internal/application/setting"
	"vitalis/internal/shared/logger"
	"vitalis/internal/shared/utils"
)

// SettingHandler handles site settings. The public endpoint exposes only
// settings flagged public, as a flat key/value map.
type SettingHandler struct {
	settingService *settingapp.Service
	logger         logger.Interface
}

func NewSettingHandler(settingService *settingapp.Service) *SettingHandler {
	return &SettingHandler{
		settingService: settingService,
		logger:         logger.NewLogger().With("component", "setting.handler"),
	}
}

// Set handles PUT /api/admin/settings. Creates the key when missing.
func (h *SettingHandler) Set(c *gin.Context) {
	var input settingapp.Input
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warnw("invalid set setting request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	dto, err := h.settingService.Set(c.Request.Context(), input)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "setting saved", dto)
}

func (h *SettingHandler) Get(c *gin.Context) {
	key := c.Param("key")

	dto, err := h.settingService.Get(c.Request.Context(), key)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto)
}

func (h *SettingHandler) Delete(c *gin.Context) {
	key := c.Param("key")

	if err := h.settingService.Delete(c.Request.Context(), key); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *SettingHandler) List(c *gin.Context) {
	settings, err := h.settingService.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", settings)
}

func (h *SettingHandler) PublicList(c *gin.Context) {
	settings, err := h.settingService.ListPublic(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", settings)
}
