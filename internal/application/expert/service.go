// Package expert implements the expert directory: admin CRUD plus public
// profiles with the bio rendered to HTML.
package expert

import (
	"context"
	"time"

	"vitalis/internal/domain/expert"
	apperrors "vitalis/internal/shared/errors"
	"vitalis/internal/shared/logger"
	"vitalis/internal/shared/services/markdown"
	"vitalis/internal/shared/utils"
)

type DTO struct {
	ID        uint   `json:"id"`
	Slug      string `json:"slug"`
	Name      string `json:"name"`
	Title     string `json:"title"`
	Bio       string `json:"bio"`
	AvatarURL string `json:"avatar_url"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type PublicDTO struct {
	Slug      string `json:"slug"`
	Name      string `json:"name"`
	Title     string `json:"title"`
	BioHTML   string `json:"bio_html"`
	AvatarURL string `json:"avatar_url"`
}

type Input struct {
	Name      string `json:"name" binding:"required"`
	Slug      string `json:"slug" binding:"omitempty,slug"`
	Title     string `json:"title"`
	Bio       string `json:"bio"`
	AvatarURL string `json:"avatar_url"`
}

type Service struct {
	experts  expert.Repository
	renderer markdown.Service
	logger   logger.Interface
}

func NewService(experts expert.Repository, renderer markdown.Service) *Service {
	return &Service{
		experts:  experts,
		renderer: renderer,
		logger:   logger.NewLogger().With("component", "expert.service"),
	}
}

func (s *Service) Create(ctx context.Context, input Input) (*DTO, error) {
	e, err := expert.NewExpert(input.Name, input.Slug, input.Title, input.Bio, input.AvatarURL)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := s.experts.Create(ctx, e); err != nil {
		return nil, err
	}

	s.logger.Infow("expert created", "expert_id", e.ID(), "slug", e.Slug())
	return toDTO(e), nil
}

func (s *Service) GetByID(ctx context.Context, id uint) (*DTO, error) {
	e, err := s.experts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDTO(e), nil
}

func (s *Service) GetPublicBySlug(ctx context.Context, slugValue string) (*PublicDTO, error) {
	e, err := s.experts.GetBySlug(ctx, slugValue)
	if err != nil {
		return nil, err
	}

	html, err := s.renderer.ToHTMLSanitized(e.Bio())
	if err != nil {
		return nil, apperrors.NewInternalError("failed to render expert bio")
	}

	return &PublicDTO{
		Slug:      e.Slug(),
		Name:      e.Name(),
		Title:     e.Title(),
		BioHTML:   html,
		AvatarURL: e.AvatarURL(),
	}, nil
}

func (s *Service) Update(ctx context.Context, id uint, input Input) (*DTO, error) {
	e, err := s.experts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := e.Update(input.Name, input.Slug, input.Title, input.Bio, input.AvatarURL); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := s.experts.Update(ctx, e); err != nil {
		return nil, err
	}

	s.logger.Infow("expert updated", "expert_id", id)
	return toDTO(e), nil
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	if err := s.experts.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Infow("expert deleted", "expert_id", id)
	return nil
}

func (s *Service) List(ctx context.Context, p utils.Pagination) ([]*DTO, int64, error) {
	experts, total, err := s.experts.List(ctx, p.Limit(), p.Offset())
	if err != nil {
		return nil, 0, err
	}

	dtos := make([]*DTO, len(experts))
	for i, e := range experts {
		dtos[i] = toDTO(e)
	}
	return dtos, total, nil
}

func toDTO(e *expert.Expert) *DTO {
	return &DTO{
		ID:        e.ID(),
		Slug:      e.Slug(),
		Name:      e.Name(),
		Title:     e.Title(),
		Bio:       e.Bio(),
		AvatarURL: e.AvatarURL(),
		CreatedAt: e.CreatedAt().UTC().Format(time.RFC3339),
		UpdatedAt: e.UpdatedAt().UTC().Format(time.RFC3339),
	}
}
