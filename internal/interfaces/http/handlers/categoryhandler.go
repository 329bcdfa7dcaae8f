package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	categoryapp "vitalis/internal/application/category"
	"vitalis/internal/shared/logger"
	"vitalis/internal/shared/utils"
)

// CategoryHandler handles taxonomy endpoints. Categories carry a kind
// (article, supplement or faq) fixed at creation time.
type CategoryHandler struct {
	categoryService *categoryapp.Service
	logger          logger.Interface
}

func NewCategoryHandler(categoryService *categoryapp.Service) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		logger:          logger.NewLogger().With("component", "category.handler"),
	}
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var input categoryapp.CreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warnw("invalid create category request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	dto, err := h.categoryService.Create(c.Request.Context(), input)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto, "category created")
}

func (h *CategoryHandler) Get(c *gin.Context) {
	id, err := ParseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	dto, err := h.categoryService.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto)
}

func (h *CategoryHandler) Update(c *gin.Context) {
	id, err := ParseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var input categoryapp.UpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	dto, err := h.categoryService.Update(c.Request.Context(), id, input)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "category updated", dto)
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := ParseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.categoryService.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// List handles both the admin and the public category listings. An optional
// kind query narrows the result to one taxonomy.
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categoryService.List(c.Request.Context(), c.Query("kind"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", categories)
}
