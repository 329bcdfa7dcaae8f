// Package category implements taxonomy management.
package category

import (
	"context"
	"time"

	"vitalis/internal/domain/category"
	apperrors "vitalis/internal/shared/errors"
	"vitalis/internal/shared/logger"
)

type DTO struct {
	ID          uint   `json:"id"`
	Slug        string `json:"slug"`
	Kind        string `json:"kind"`
	Name        string `json:"name"`
	Description string `json:"description"`
	SortOrder   int    `json:"sort_order"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

type CreateInput struct {
	Name        string `json:"name" binding:"required"`
	Slug        string `json:"slug" binding:"omitempty,slug"`
	Kind        string `json:"kind" binding:"required,oneof=article supplement faq"`
	Description string `json:"description"`
	SortOrder   int    `json:"sort_order"`
}

type UpdateInput struct {
	Name        string `json:"name" binding:"required"`
	Slug        string `json:"slug" binding:"omitempty,slug"`
	Description string `json:"description"`
	SortOrder   int    `json:"sort_order"`
}

type Service struct {
	categories category.Repository
	logger     logger.Interface
}

func NewService(categories category.Repository) *Service {
	return &Service{
		categories: categories,
		logger:     logger.NewLogger().With("component", "category.service"),
	}
}

func (s *Service) Create(ctx context.Context, input CreateInput) (*DTO, error) {
	c, err := category.NewCategory(input.Name, input.Slug, category.Kind(input.Kind), input.Description, input.SortOrder)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := s.categories.Create(ctx, c); err != nil {
		return nil, err
	}

	s.logger.Infow("category created", "category_id", c.ID(), "kind", c.Kind(), "slug", c.Slug())
	return toDTO(c), nil
}

func (s *Service) GetByID(ctx context.Context, id uint) (*DTO, error) {
	c, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDTO(c), nil
}

func (s *Service) Update(ctx context.Context, id uint, input UpdateInput) (*DTO, error) {
	c, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := c.Update(input.Name, input.Slug, input.Description, input.SortOrder); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := s.categories.Update(ctx, c); err != nil {
		return nil, err
	}

	s.logger.Infow("category updated", "category_id", id)
	return toDTO(c), nil
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	if err := s.categories.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Infow("category deleted", "category_id", id)
	return nil
}

// List returns all categories, optionally restricted to one kind.
func (s *Service) List(ctx context.Context, kind string) ([]*DTO, error) {
	var (
		categories []*category.Category
		err        error
	)

	if kind != "" {
		k := category.Kind(kind)
		if !k.IsValid() {
			return nil, apperrors.NewValidationError("invalid category kind", kind)
		}
		categories, err = s.categories.ListByKind(ctx, k)
	} else {
		categories, err = s.categories.List(ctx)
	}
	if err != nil {
		return nil, err
	}

	dtos := make([]*DTO, len(categories))
	for i, c := range categories {
		dtos[i] = toDTO(c)
	}
	return dtos, nil
}

func toDTO(c *category.Category) *DTO {
	return &DTO{
		ID:          c.ID(),
		Slug:        c.Slug(),
		Kind:        string(c.Kind()),
		Name:        c.Name(),
		Description: c.Description(),
		SortOrder:   c.SortOrder(),
		CreatedAt:   c.CreatedAt().UTC().Format(time.RFC3339),
		UpdatedAt:   c.UpdatedAt().UTC().Format(time.RFC3339),
	}
}
