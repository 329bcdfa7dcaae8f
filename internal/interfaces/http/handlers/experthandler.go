package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	expertapp "vitalis/internal/application/expert"
	"vitalis/internal/shared/logger"
	"vitalis/internal/shared/slug"
	"vitalis/internal/shared/utils"
)

// ExpertHandler handles medical reviewer profile endpoints.
type ExpertHandler struct {
	expertService *expertapp.Service
	logger        logger.Interface
}

func NewExpertHandler(expertService *expertapp.Service) *ExpertHandler {
	return &ExpertHandler{
		expertService: expertService,
		logger:        logger.NewLogger().With("component", "expert.handler"),
	}
}

func (h *ExpertHandler) Create(c *gin.Context) {
	var input expertapp.Input
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warnw("invalid create expert request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	dto, err := h.expertService.Create(c.Request.Context(), input)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto, "expert created")
}

func (h *ExpertHandler) Get(c *gin.Context) {
	id, err := ParseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	dto, err := h.expertService.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto)
}

func (h *ExpertHandler) Update(c *gin.Context) {
	id, err := ParseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var input expertapp.Input
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	dto, err := h.expertService.Update(c.Request.Context(), id, input)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "expert updated", dto)
}

func (h *ExpertHandler) Delete(c *gin.Context) {
	id, err := ParseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.expertService.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *ExpertHandler) List(c *gin.Context) {
	p, err := utils.ParsePagination(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	experts, total, err := h.expertService.List(c.Request.Context(), p)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, experts, total, p.Page, p.PageSize)
}

func (h *ExpertHandler) PublicGet(c *gin.Context) {
	slugValue := c.Param("slug")
	if !slug.IsValid(slugValue) {
		utils.ErrorResponse(c, http.StatusNotFound, "expert not found")
		return
	}

	dto, err := h.expertService.GetPublicBySlug(c.Request.Context(), slugValue)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto)
}
