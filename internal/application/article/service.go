// Package article implements article management and public delivery.
// Admin operations work on raw markdown; public reads return sanitized
// HTML rendered from it.
package article

import (
	"context"
	"time"

	"vitalis/internal/domain/article"
	apperrors "vitalis/internal/shared/errors"
	"vitalis/internal/shared/logger"
	"vitalis/internal/shared/services/markdown"
	"vitalis/internal/shared/utils"
)

// DTO is the admin representation, carrying the raw markdown body.
type DTO struct {
	ID            uint    `json:"id"`
	Slug          string  `json:"slug"`
	Title         string  `json:"title"`
	Excerpt       string  `json:"excerpt"`
	Body          string  `json:"body"`
	CoverImageURL string  `json:"cover_image_url"`
	CategoryID    *uint   `json:"category_id"`
	AuthorID      *uint   `json:"author_id"`
	Status        string  `json:"status"`
	PublishedAt   *string `json:"published_at"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

// PublicDTO is the public representation: body rendered to sanitized HTML,
// no draft-only fields.
type PublicDTO struct {
	Slug          string  `json:"slug"`
	Title         string  `json:"title"`
	Excerpt       string  `json:"excerpt"`
	BodyHTML      string  `json:"body_html"`
	CoverImageURL string  `json:"cover_image_url"`
	CategoryID    *uint   `json:"category_id"`
	AuthorID      *uint   `json:"author_id"`
	PublishedAt   *string `json:"published_at"`
}

// Summary omits the body for listing endpoints.
type Summary struct {
	Slug          string  `json:"slug"`
	Title         string  `json:"title"`
	Excerpt       string  `json:"excerpt"`
	CoverImageURL string  `json:"cover_image_url"`
	CategoryID    *uint   `json:"category_id"`
	AuthorID      *uint   `json:"author_id"`
	PublishedAt   *string `json:"published_at"`
}

type Input struct {
	Title         string `json:"title" binding:"required"`
	Slug          string `json:"slug" binding:"omitempty,slug"`
	Excerpt       string `json:"excerpt"`
	Body          string `json:"body"`
	CoverImageURL string `json:"cover_image_url"`
	CategoryID    *uint  `json:"category_id"`
	AuthorID      *uint  `json:"author_id"`
}

type ListQuery struct {
	Status     string
	CategoryID *uint
	AuthorID   *uint
	Search     string
	Pagination utils.Pagination
}

type Service struct {
	articles article.Repository
	renderer markdown.Service
	logger   logger.Interface
}

func NewService(articles article.Repository, renderer markdown.Service) *Service {
	return &Service{
		articles: articles,
		renderer: renderer,
		logger:   logger.NewLogger().With("component", "article.service"),
	}
}

func (s *Service) Create(ctx context.Context, input Input) (*DTO, error) {
	a, err := article.NewArticle(input.Title, input.Slug, input.Excerpt, input.Body, input.CoverImageURL, input.CategoryID, input.AuthorID)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := s.articles.Create(ctx, a); err != nil {
		return nil, err
	}

	s.logger.Infow("article created", "article_id", a.ID(), "slug", a.Slug())
	return toDTO(a), nil
}

func (s *Service) GetByID(ctx context.Context, id uint) (*DTO, error) {
	a, err := s.articles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDTO(a), nil
}

func (s *Service) Update(ctx context.Context, id uint, input Input) (*DTO, error) {
	a, err := s.articles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := a.Update(input.Title, input.Slug, input.Excerpt, input.Body, input.CoverImageURL, input.CategoryID, input.AuthorID); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := s.articles.Update(ctx, a); err != nil {
		return nil, err
	}

	s.logger.Infow("article updated", "article_id", id)
	return toDTO(a), nil
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	if err := s.articles.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Infow("article deleted", "article_id", id)
	return nil
}

func (s *Service) Publish(ctx context.Context, id uint) (*DTO, error) {
	a, err := s.articles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := a.Publish(); err != nil {
		return nil, apperrors.NewConflictError(err.Error())
	}

	if err := s.articles.Update(ctx, a); err != nil {
		return nil, err
	}

	s.logger.Infow("article published", "article_id", id, "slug", a.Slug())
	return toDTO(a), nil
}

func (s *Service) Unpublish(ctx context.Context, id uint) (*DTO, error) {
	a, err := s.articles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	a.Unpublish()

	if err := s.articles.Update(ctx, a); err != nil {
		return nil, err
	}

	s.logger.Infow("article unpublished", "article_id", id)
	return toDTO(a), nil
}

func (s *Service) List(ctx context.Context, q ListQuery) ([]*DTO, int64, error) {
	filter := article.Filter{
		Status:     article.Status(q.Status),
		CategoryID: q.CategoryID,
		AuthorID:   q.AuthorID,
		Search:     q.Search,
	}

	articles, total, err := s.articles.List(ctx, filter, q.Pagination.Limit(), q.Pagination.Offset())
	if err != nil {
		return nil, 0, err
	}

	dtos := make([]*DTO, len(articles))
	for i, a := range articles {
		dtos[i] = toDTO(a)
	}
	return dtos, total, nil
}

// GetPublishedBySlug serves the public article page. Drafts read as not
// found so unpublished URLs leak nothing.
func (s *Service) GetPublishedBySlug(ctx context.Context, slugValue string) (*PublicDTO, error) {
	a, err := s.articles.GetBySlug(ctx, slugValue)
	if err != nil {
		return nil, err
	}
	if !a.IsPublished() {
		return nil, apperrors.NewNotFoundError("article not found")
	}

	html, err := s.renderer.ToHTMLSanitized(a.Body())
	if err != nil {
		return nil, apperrors.NewInternalError("failed to render article body")
	}

	return &PublicDTO{
		Slug:          a.Slug(),
		Title:         a.Title(),
		Excerpt:       a.Excerpt(),
		BodyHTML:      html,
		CoverImageURL: a.CoverImageURL(),
		CategoryID:    a.CategoryID(),
		AuthorID:      a.AuthorID(),
		PublishedAt:   formatTimePtr(a.PublishedAt()),
	}, nil
}

// ListPublished serves the public index, always scoped to published status.
func (s *Service) ListPublished(ctx context.Context, categoryID *uint, p utils.Pagination) ([]*Summary, int64, error) {
	filter := article.Filter{
		Status:     article.StatusPublished,
		CategoryID: categoryID,
	}

	articles, total, err := s.articles.List(ctx, filter, p.Limit(), p.Offset())
	if err != nil {
		return nil, 0, err
	}

	summaries := make([]*Summary, len(articles))
	for i, a := range articles {
		summaries[i] = &Summary{
			Slug:          a.Slug(),
			Title:         a.Title(),
			Excerpt:       a.Excerpt(),
			CoverImageURL: a.CoverImageURL(),
			CategoryID:    a.CategoryID(),
			AuthorID:      a.AuthorID(),
			PublishedAt:   formatTimePtr(a.PublishedAt()),
		}
	}
	return summaries, total, nil
}

func toDTO(a *article.Article) *DTO {
	return &DTO{
		ID:            a.ID(),
		Slug:          a.Slug(),
		Title:         a.Title(),
		Excerpt:       a.Excerpt(),
		Body:          a.Body(),
		CoverImageURL: a.CoverImageURL(),
		CategoryID:    a.CategoryID(),
		AuthorID:      a.AuthorID(),
		Status:        string(a.Status()),
		PublishedAt:   formatTimePtr(a.PublishedAt()),
		CreatedAt:     a.CreatedAt().UTC().Format(time.RFC3339),
		UpdatedAt:     a.UpdatedAt().UTC().Format(time.RFC3339),
	}
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.UTC().Format(time.RFC3339)
	return &formatted
}
