// Package review implements product review management and public delivery.
package review

import (
	"context"
	"time"

	"vitalis/internal/domain/review"
	apperrors "vitalis/internal/shared/errors"
	"vitalis/internal/shared/logger"
	"vitalis/internal/shared/services/markdown"
	"vitalis/internal/shared/utils"
)

type DTO struct {
	ID            uint     `json:"id"`
	Slug          string   `json:"slug"`
	ProductName   string   `json:"product_name"`
	BrandID       *uint    `json:"brand_id"`
	Rating        int      `json:"rating"`
	Verdict       string   `json:"verdict"`
	Pros          []string `json:"pros"`
	Cons          []string `json:"cons"`
	Body          string   `json:"body"`
	CoverImageURL string   `json:"cover_image_url"`
	AuthorID      *uint    `json:"author_id"`
	Status        string   `json:"status"`
	PublishedAt   *string  `json:"published_at"`
	CreatedAt     string   `json:"created_at"`
	UpdatedAt     string   `json:"updated_at"`
}

type PublicDTO struct {
	Slug          string   `json:"slug"`
	ProductName   string   `json:"product_name"`
	BrandID       *uint    `json:"brand_id"`
	Rating        int      `json:"rating"`
	Verdict       string   `json:"verdict"`
	Pros          []string `json:"pros"`
	Cons          []string `json:"cons"`
	BodyHTML      string   `json:"body_html"`
	CoverImageURL string   `json:"cover_image_url"`
	AuthorID      *uint    `json:"author_id"`
	PublishedAt   *string  `json:"published_at"`
}

type Summary struct {
	Slug          string  `json:"slug"`
	ProductName   string  `json:"product_name"`
	BrandID       *uint   `json:"brand_id"`
	Rating        int     `json:"rating"`
	Verdict       string  `json:"verdict"`
	CoverImageURL string  `json:"cover_image_url"`
	PublishedAt   *string `json:"published_at"`
}

type Input struct {
	ProductName   string   `json:"product_name" binding:"required"`
	Slug          string   `json:"slug" binding:"omitempty,slug"`
	BrandID       *uint    `json:"brand_id"`
	Rating        int      `json:"rating" binding:"required,min=1,max=5"`
	Verdict       string   `json:"verdict"`
	Pros          []string `json:"pros"`
	Cons          []string `json:"cons"`
	Body          string   `json:"body"`
	CoverImageURL string   `json:"cover_image_url"`
	AuthorID      *uint    `json:"author_id"`
}

type ListQuery struct {
	Status     string
	BrandID    *uint
	Search     string
	Pagination utils.Pagination
}

type Service struct {
	reviews  review.Repository
	renderer markdown.Service
	logger   logger.Interface
}

func NewService(reviews review.Repository, renderer markdown.Service) *Service {
	return &Service{
		reviews:  reviews,
		renderer: renderer,
		logger:   logger.NewLogger().With("component", "review.service"),
	}
}

func (s *Service) Create(ctx context.Context, input Input) (*DTO, error) {
	r, err := review.NewReview(input.ProductName, input.Slug, input.Verdict, input.Body, input.CoverImageURL,
		input.Rating, input.BrandID, input.AuthorID, input.Pros, input.Cons)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := s.reviews.Create(ctx, r); err != nil {
		return nil, err
	}

	s.logger.Infow("review created", "review_id", r.ID(), "slug", r.Slug())
	return toDTO(r), nil
}

func (s *Service) GetByID(ctx context.Context, id uint) (*DTO, error) {
	r, err := s.reviews.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDTO(r), nil
}

func (s *Service) Update(ctx context.Context, id uint, input Input) (*DTO, error) {
	r, err := s.reviews.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := r.Update(input.ProductName, input.Slug, input.Verdict, input.Body, input.CoverImageURL,
		input.Rating, input.BrandID, input.AuthorID, input.Pros, input.Cons); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := s.reviews.Update(ctx, r); err != nil {
		return nil, err
	}

	s.logger.Infow("review updated", "review_id", id)
	return toDTO(r), nil
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	if err := s.reviews.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Infow("review deleted", "review_id", id)
	return nil
}

func (s *Service) Publish(ctx context.Context, id uint) (*DTO, error) {
	r, err := s.reviews.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := r.Publish(); err != nil {
		return nil, apperrors.NewConflictError(err.Error())
	}

	if err := s.reviews.Update(ctx, r); err != nil {
		return nil, err
	}

	s.logger.Infow("review published", "review_id", id, "slug", r.Slug())
	return toDTO(r), nil
}

func (s *Service) Unpublish(ctx context.Context, id uint) (*DTO, error) {
	r, err := s.reviews.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	r.Unpublish()

	if err := s.reviews.Update(ctx, r); err != nil {
		return nil, err
	}

	s.logger.Infow("review unpublished", "review_id", id)
	return toDTO(r), nil
}

func (s *Service) List(ctx context.Context, q ListQuery) ([]*DTO, int64, error) {
	filter := review.Filter{
		Status:  review.Status(q.Status),
		BrandID: q.BrandID,
		Search:  q.Search,
	}

	reviews, total, err := s.reviews.List(ctx, filter, q.Pagination.Limit(), q.Pagination.Offset())
	if err != nil {
		return nil, 0, err
	}

	dtos := make([]*DTO, len(reviews))
	for i, r := range reviews {
		dtos[i] = toDTO(r)
	}
	return dtos, total, nil
}

func (s *Service) GetPublishedBySlug(ctx context.Context, slugValue string) (*PublicDTO, error) {
	r, err := s.reviews.GetBySlug(ctx, slugValue)
	if err != nil {
		return nil, err
	}
	if !r.IsPublished() {
		return nil, apperrors.NewNotFoundError("review not found")
	}

	html, err := s.renderer.ToHTMLSanitized(r.Body())
	if err != nil {
		return nil, apperrors.NewInternalError("failed to render review body")
	}

	return &PublicDTO{
		Slug:          r.Slug(),
		ProductName:   r.ProductName(),
		BrandID:       r.BrandID(),
		Rating:        r.Rating(),
		Verdict:       r.Verdict(),
		Pros:          r.Pros(),
		Cons:          r.Cons(),
		BodyHTML:      html,
		CoverImageURL: r.CoverImageURL(),
		AuthorID:      r.AuthorID(),
		PublishedAt:   formatTimePtr(r.PublishedAt()),
	}, nil
}

func (s *Service) ListPublished(ctx context.Context, brandID *uint, p utils.Pagination) ([]*Summary, int64, error) {
	filter := review.Filter{
		Status:  review.StatusPublished,
		BrandID: brandID,
	}

	reviews, total, err := s.reviews.List(ctx, filter, p.Limit(), p.Offset())
	if err != nil {
		return nil, 0, err
	}

	summaries := make([]*Summary, len(reviews))
	for i, r := range reviews {
		summaries[i] = &Summary{
			Slug:          r.Slug(),
			ProductName:   r.ProductName(),
			BrandID:       r.BrandID(),
			Rating:        r.Rating(),
			Verdict:       r.Verdict(),
			CoverImageURL: r.CoverImageURL(),
			PublishedAt:   formatTimePtr(r.PublishedAt()),
		}
	}
	return summaries, total, nil
}

func toDTO(r *review.Review) *DTO {
	return &DTO{
		ID:            r.ID(),
		Slug:          r.Slug(),
		ProductName:   r.ProductName(),
		BrandID:       r.BrandID(),
		Rating:        r.Rating(),
		Verdict:       r.Verdict(),
		Pros:          r.Pros(),
		Cons:          r.Cons(),
		Body:          r.Body(),
		CoverImageURL: r.CoverImageURL(),
		AuthorID:      r.AuthorID(),
		Status:        string(r.Status()),
		PublishedAt:   formatTimePtr(r.PublishedAt()),
		CreatedAt:     r.CreatedAt().UTC().Format(time.RFC3339),
		UpdatedAt:     r.UpdatedAt().UTC().Format(time.RFC3339),
	}
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.UTC().Format(time.RFC3339)
	return &formatted
}
