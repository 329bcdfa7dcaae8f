package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	reviewapp "vitalis/internal/application/review"
	"vitalis/internal/shared/logger"
	"vitalis/internal/shared/slug"
	"vitalis/internal/shared/utils"
)

// ReviewHandler serves admin CRUD and public reads for product reviews.
type ReviewHandler struct {
	reviewService *reviewapp.Service
	logger        logger.Interface
}

func NewReviewHandler(reviewService *reviewapp.Service) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
		logger:        logger.NewLogger().With("component", "review.handler"),
	}
}

func (h *ReviewHandler) Create(c *gin.Context) {
	var input reviewapp.Input
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warnw("invalid create review request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	dto, err := h.reviewService.Create(c.Request.Context(), input)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto, "review created")
}

func (h *ReviewHandler) Get(c *gin.Context) {
	id, err := ParseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	dto, err := h.reviewService.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto)
}

func (h *ReviewHandler) Update(c *gin.Context) {
	id, err := ParseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var input reviewapp.Input
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	dto, err := h.reviewService.Update(c.Request.Context(), id, input)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "review updated", dto)
}

func (h *ReviewHandler) Delete(c *gin.Context) {
	id, err := ParseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.reviewService.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *ReviewHandler) Publish(c *gin.Context) {
	id, err := ParseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	dto, err := h.reviewService.Publish(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "review published", dto)
}

func (h *ReviewHandler) Unpublish(c *gin.Context) {
	id, err := ParseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	dto, err := h.reviewService.Unpublish(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "review unpublished", dto)
}

func (h *ReviewHandler) List(c *gin.Context) {
	p, err := utils.ParsePagination(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	brandID, err := ParseUintQuery(c, "brand_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	reviews, total, err := h.reviewService.List(c.Request.Context(), reviewapp.ListQuery{
		Status:     c.Query("status"),
		BrandID:    brandID,
		Search:     c.Query("q"),
		Pagination: p,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, reviews, total, p.Page, p.PageSize)
}

func (h *ReviewHandler) PublicList(c *gin.Context) {
	p, err := utils.ParsePagination(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	brandID, err := ParseUintQuery(c, "brand_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	reviews, total, err := h.reviewService.ListPublished(c.Request.Context(), brandID, p)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, reviews, total, p.Page, p.PageSize)
}

func (h *ReviewHandler) PublicGet(c *gin.Context) {
	slugValue := c.Param("slug")
	if !slug.IsValid(slugValue) {
		utils.ErrorResponse(c, http.StatusNotFound, "review not found")
		return
	}

	dto, err := h.reviewService.GetPublishedBySlug(c.Request.Context(), slugValue)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto)
}
