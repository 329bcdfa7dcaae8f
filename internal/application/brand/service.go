// Package brand implements brand directory management.
package brand

import (
	"context"
	"time"

	"vitalis/internal/domain/brand"
	apperrors "vitalis/internal/shared/errors"
	"vitalis/internal/shared/logger"
	"vitalis/internal/shared/utils"
)

type DTO struct {
	ID          uint   `json:"id"`
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description"`
	WebsiteURL  string `json:"website_url"`
	LogoURL     string `json:"logo_url"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

type Input struct {
	Name        string `json:"name" binding:"required"`
	Slug        string `json:"slug" binding:"omitempty,slug"`
	Description string `json:"description"`
	WebsiteURL  string `json:"website_url" binding:"omitempty,url"`
	LogoURL     string `json:"logo_url"`
}

type Service struct {
	brands brand.Repository
	logger logger.Interface
}

func NewService(brands brand.Repository) *Service {
	return &Service{
		brands: brands,
		logger: logger.NewLogger().With("component", "brand.service"),
	}
}

func (s *Service) Create(ctx context.Context, input Input) (*DTO, error) {
	b, err := brand.NewBrand(input.Name, input.Slug, input.Description, input.WebsiteURL, input.LogoURL)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := s.brands.Create(ctx, b); err != nil {
		return nil, err
	}

	s.logger.Infow("brand created", "brand_id", b.ID(), "slug", b.Slug())
	return toDTO(b), nil
}

func (s *Service) GetByID(ctx context.Context, id uint) (*DTO, error) {
	b, err := s.brands.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDTO(b), nil
}

func (s *Service) GetBySlug(ctx context.Context, slugValue string) (*DTO, error) {
	b, err := s.brands.GetBySlug(ctx, slugValue)
	if err != nil {
		return nil, err
	}
	return toDTO(b), nil
}

func (s *Service) Update(ctx context.Context, id uint, input Input) (*DTO, error) {
	b, err := s.brands.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := b.Update(input.Name, input.Slug, input.Description, input.WebsiteURL, input.LogoURL); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := s.brands.Update(ctx, b); err != nil {
		return nil, err
	}

	s.logger.Infow("brand updated", "brand_id", id)
	return toDTO(b), nil
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	if err := s.brands.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Infow("brand deleted", "brand_id", id)
	return nil
}

func (s *Service) List(ctx context.Context, p utils.Pagination) ([]*DTO, int64, error) {
	brands, total, err := s.brands.List(ctx, p.Limit(), p.Offset())
	if err != nil {
		return nil, 0, err
	}

	dtos := make([]*DTO, len(brands))
	for i, b := range brands {
		dtos[i] = toDTO(b)
	}
	return dtos, total, nil
}

func toDTO(b *brand.Brand) *DTO {
	return &DTO{
		ID:          b.ID(),
		Slug:        b.Slug(),
		Name:        b.Name(),
		Description: b.Description(),
		WebsiteURL:  b.WebsiteURL(),
		LogoURL:     b.LogoURL(),
		CreatedAt:   b.CreatedAt().UTC().Format(time.RFC3339),
		UpdatedAt:   b.UpdatedAt().UTC().Format(time.RFC3339),
	}
}
