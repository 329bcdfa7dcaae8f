package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	supplementapp "vitalis/internal/application/supplement"
	"vitalis/internal/shared/logger"
	"vitalis/internal/shared/slug"
	"vitalis/internal/shared/utils"
)

// SupplementHandler serves admin CRUD and public reads for the ingredient
// encyclopedia.
type SupplementHandler struct {
	supplementService *supplementapp.Service
	logger            logger.Interface
}

func NewSupplementHandler(supplementService *supplementapp.Service) *SupplementHandler {
	return &SupplementHandler{
		supplementService: supplementService,
		logger:            logger.NewLogger().With("component", "supplement.handler"),
	}
}

func (h *SupplementHandler) Create(c *gin.Context) {
	var input supplementapp.Input
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warnw("invalid create supplement request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	dto, err := h.supplementService.Create(c.Request.Context(), input)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto, "supplement created")
}

func (h *SupplementHandler) Get(c *gin.Context) {
	id, err := ParseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	dto, err := h.supplementService.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto)
}

func (h *SupplementHandler) Update(c *gin.Context) {
	id, err := ParseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var input supplementapp.Input
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	dto, err := h.supplementService.Update(c.Request.Context(), id, input)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "supplement updated", dto)
}

func (h *SupplementHandler) Delete(c *gin.Context) {
	id, err := ParseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.supplementService.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *SupplementHandler) Publish(c *gin.Context) {
	id, err := ParseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	dto, err := h.supplementService.Publish(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "supplement published", dto)
}

func (h *SupplementHandler) Unpublish(c *gin.Context) {
	id, err := ParseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	dto, err := h.supplementService.Unpublish(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "supplement unpublished", dto)
}

func (h *SupplementHandler) List(c *gin.Context) {
	p, err := utils.ParsePagination(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	categoryID, err := ParseUintQuery(c, "category_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	supplements, total, err := h.supplementService.List(c.Request.Context(), supplementapp.ListQuery{
		Status:     c.Query("status"),
		CategoryID: categoryID,
		Search:     c.Query("q"),
		Pagination: p,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, supplements, total, p.Page, p.PageSize)
}

func (h *SupplementHandler) PublicList(c *gin.Context) {
	p, err := utils.ParsePagination(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	categoryID, err := ParseUintQuery(c, "category_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	supplements, total, err := h.supplementService.ListPublished(c.Request.Context(), categoryID, p)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, supplements, total, p.Page, p.PageSize)
}

func (h *SupplementHandler) PublicGet(c *gin.Context) {
	slugValue := c.Param("slug")
	if !slug.IsValid(slugValue) {
		utils.ErrorResponse(c, http.StatusNotFound, "supplement not found")
		return
	}

	dto, err := h.supplementService.GetPublishedBySlug(c.Request.Context(), slugValue)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto)
}
