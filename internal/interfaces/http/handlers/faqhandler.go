package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	faqapp "vitalis/internal/application/faq"
	"vitalis/internal/shared/logger"
	"vitalis/internal/shared/utils"
)

// FAQHandler handles FAQ endpoints.
type FAQHandler struct {
	faqService *faqapp.Service
	logger     logger.Interface
}

func NewFAQHandler(faqService *faqapp.Service) *FAQHandler {
	return &FAQHandler{
		faqService: faqService,
		logger:     logger.NewLogger().With("component", "faq.handler"),
	}
}

func (h *FAQHandler) Create(c *gin.Context) {
	var input faqapp.Input
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warnw("invalid create faq request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	dto, err := h.faqService.Create(c.Request.Context(), input)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto, "faq created")
}

func (h *FAQHandler) Get(c *gin.Context) {
	id, err := ParseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	dto, err := h.faqService.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto)
}

func (h *FAQHandler) Update(c *gin.Context) {
	id, err := ParseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var input faqapp.Input
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	dto, err := h.faqService.Update(c.Request.Context(), id, input)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "faq updated", dto)
}

func (h *FAQHandler) Delete(c *gin.Context) {
	id, err := ParseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.faqService.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *FAQHandler) List(c *gin.Context) {
	categoryID, err := ParseUintQuery(c, "category_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	faqs, err := h.faqService.List(c.Request.Context(), categoryID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", faqs)
}

func (h *FAQHandler) PublicList(c *gin.Context) {
	categoryID, err := ParseUintQuery(c, "category_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	faqs, err := h.faqService.ListPublished(c.Request.Context(), categoryID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", faqs)
}
