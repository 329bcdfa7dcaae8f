package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	articleapp "vitalis/internal/application/article"
	"vitalis/internal/shared/logger"
	"vitalis/internal/shared/slug"
	"vitalis/internal/shared/utils"
)

// ArticleHandler serves both the admin CRUD endpoints and the public
// read-only article API.
type ArticleHandler struct {
	articleService *articleapp.Service
	logger         logger.Interface
}

func NewArticleHandler(articleService *articleapp.Service) *ArticleHandler {
	return &ArticleHandler{
		articleService: articleService,
		logger:         logger.NewLogger().With("component", "article.handler"),
	}
}

// Create handles POST /api/admin/articles.
func (h *ArticleHandler) Create(c *gin.Context) {
	var input articleapp.Input
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warnw("invalid create article request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	dto, err := h.articleService.Create(c.Request.Context(), input)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto, "article created")
}

// Get handles GET /api/admin/articles/:id.
func (h *ArticleHandler) Get(c *gin.Context) {
	id, err := ParseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	dto, err := h.articleService.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto)
}

// Update handles PUT /api/admin/articles/:id.
func (h *ArticleHandler) Update(c *gin.Context) {
	id, err := ParseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var input articleapp.Input
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	dto, err := h.articleService.Update(c.Request.Context(), id, input)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "article updated", dto)
}

// Delete handles DELETE /api/admin/articles/:id.
func (h *ArticleHandler) Delete(c *gin.Context) {
	id, err := ParseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.articleService.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// Publish handles POST /api/admin/articles/:id/publish.
func (h *ArticleHandler) Publish(c *gin.Context) {
	id, err := ParseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	dto, err := h.articleService.Publish(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "article published", dto)
}

// Unpublish handles POST /api/admin/articles/:id/unpublish.
func (h *ArticleHandler) Unpublish(c *gin.Context) {
	id, err := ParseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	dto, err := h.articleService.Unpublish(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "article unpublished", dto)
}

// List handles GET /api/admin/articles with status/category/author/search
// filters.
func (h *ArticleHandler) List(c *gin.Context) {
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
	authorID, err := ParseUintQuery(c, "author_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	articles, total, err := h.articleService.List(c.Request.Context(), articleapp.ListQuery{
		Status:     c.Query("status"),
		CategoryID: categoryID,
		AuthorID:   authorID,
		Search:     c.Query("q"),
		Pagination: p,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, articles, total, p.Page, p.PageSize)
}

// PublicList handles GET /api/articles.
func (h *ArticleHandler) PublicList(c *gin.Context) {
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

	articles, total, err := h.articleService.ListPublished(c.Request.Context(), categoryID, p)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, articles, total, p.Page, p.PageSize)
}

// PublicGet handles GET /api/articles/:slug. Bad slugs 404 without touching
// the database.
func (h *ArticleHandler) PublicGet(c *gin.Context) {
	slugValue := c.Param("slug")
	if !slug.IsValid(slugValue) {
		utils.ErrorResponse(c, http.StatusNotFound, "article not found")
		return
	}

	dto, err := h.articleService.GetPublishedBySlug(c.Request.Context(), slugValue)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto)
}
