package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	brandapp "vitalis/internal/application/brand"
	"vitalis/internal/shared/logger"
	"vitalis/internal/shared/slug"
	"vitalis/internal/shared/utils"
)

// BrandHandler handles supplement brand endpoints.
type BrandHandler struct {
	brandService *brandapp.Service
	logger       logger.Interface
}

func NewBrandHandler(brandService *brandapp.Service) *BrandHandler {
	return &BrandHandler{
		brandService: brandService,
		logger:       logger.NewLogger().With("component", "brand.handler"),
	}
}

func (h *BrandHandler) Create(c *gin.Context) {
	var input brandapp.Input
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warnw("invalid create brand request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	dto, err := h.brandService.Create(c.Request.Context(), input)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto, "brand created")
}

func (h *BrandHandler) Get(c *gin.Context) {
	id, err := ParseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	dto, err := h.brandService.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto)
}

func (h *BrandHandler) Update(c *gin.Context) {
	id, err := ParseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var input brandapp.Input
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	dto, err := h.brandService.Update(c.Request.Context(), id, input)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "brand updated", dto)
}

func (h *BrandHandler) Delete(c *gin.Context) {
	id, err := ParseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.brandService.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *BrandHandler) List(c *gin.Context) {
	p, err := utils.ParsePagination(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	brands, total, err := h.brandService.List(c.Request.Context(), p)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, brands, total, p.Page, p.PageSize)
}

func (h *BrandHandler) PublicGet(c *gin.Context) {
	slugValue := c.Param("slug")
	if !slug.IsValid(slugValue) {
		utils.ErrorResponse(c, http.StatusNotFound, "brand not found")
		return
	}

	dto, err := h.brandService.GetBySlug(c.Request.Context(), slugValue)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto)
}
