// Package supplement implements the ingredient encyclopedia: admin CRUD
// plus public delivery with every markdown section rendered to HTML.
package supplement

import (
	"context"
	"time"

	"vitalis/internal/domain/supplement"
	apperrors "vitalis/internal/shared/errors"
	"vitalis/internal/shared/logger"
	"vitalis/internal/shared/services/markdown"
	"vitalis/internal/shared/utils"
)

type DTO struct {
	ID           uint    `json:"id"`
	Slug         string  `json:"slug"`
	Name         string  `json:"name"`
	Overview     string  `json:"overview"`
	Benefits     string  `json:"benefits"`
	Dosage       string  `json:"dosage"`
	SideEffects  string  `json:"side_effects"`
	Interactions string  `json:"interactions"`
	CategoryID   *uint   `json:"category_id"`
	Status       string  `json:"status"`
	PublishedAt  *string `json:"published_at"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

type PublicDTO struct {
	Slug             string  `json:"slug"`
	Name             string  `json:"name"`
	OverviewHTML     string  `json:"overview_html"`
	BenefitsHTML     string  `json:"benefits_html"`
	DosageHTML       string  `json:"dosage_html"`
	SideEffectsHTML  string  `json:"side_effects_html"`
	InteractionsHTML string  `json:"interactions_html"`
	CategoryID       *uint   `json:"category_id"`
	PublishedAt      *string `json:"published_at"`
}

type Summary struct {
	Slug       string `json:"slug"`
	Name       string `json:"name"`
	CategoryID *uint  `json:"category_id"`
}

type Input struct {
	Name         string `json:"name" binding:"required"`
	Slug         string `json:"slug" binding:"omitempty,slug"`
	Overview     string `json:"overview"`
	Benefits     string `json:"benefits"`
	Dosage       string `json:"dosage"`
	SideEffects  string `json:"side_effects"`
	Interactions string `json:"interactions"`
	CategoryID   *uint  `json:"category_id"`
}

type ListQuery struct {
	Status     string
	CategoryID *uint
	Search     string
	Pagination utils.Pagination
}

type Service struct {
	supplements supplement.Repository
	renderer    markdown.Service
	logger      logger.Interface
}

func NewService(supplements supplement.Repository, renderer markdown.Service) *Service {
	return &Service{
		supplements: supplements,
		renderer:    renderer,
		logger:      logger.NewLogger().With("component", "supplement.service"),
	}
}

func (s *Service) Create(ctx context.Context, input Input) (*DTO, error) {
	sup, err := supplement.NewSupplement(input.Name, input.Slug, input.Overview, input.Benefits,
		input.Dosage, input.SideEffects, input.Interactions, input.CategoryID)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := s.supplements.Create(ctx, sup); err != nil {
		return nil, err
	}

	s.logger.Infow("supplement created", "supplement_id", sup.ID(), "slug", sup.Slug())
	return toDTO(sup), nil
}

func (s *Service) GetByID(ctx context.Context, id uint) (*DTO, error) {
	sup, err := s.supplements.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDTO(sup), nil
}

func (s *Service) Update(ctx context.Context, id uint, input Input) (*DTO, error) {
	sup, err := s.supplements.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := sup.Update(input.Name, input.Slug, input.Overview, input.Benefits, input.Dosage,
		input.SideEffects, input.Interactions, input.CategoryID); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := s.supplements.Update(ctx, sup); err != nil {
		return nil, err
	}

	s.logger.Infow("supplement updated", "supplement_id", id)
	return toDTO(sup), nil
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	if err := s.supplements.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Infow("supplement deleted", "supplement_id", id)
	return nil
}

func (s *Service) Publish(ctx context.Context, id uint) (*DTO, error) {
	sup, err := s.supplements.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := sup.Publish(); err != nil {
		return nil, apperrors.NewConflictError(err.Error())
	}

	if err := s.supplements.Update(ctx, sup); err != nil {
		return nil, err
	}

	s.logger.Infow("supplement published", "supplement_id", id, "slug", sup.Slug())
	return toDTO(sup), nil
}

func (s *Service) Unpublish(ctx context.Context, id uint) (*DTO, error) {
	sup, err := s.supplements.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	sup.Unpublish()

	if err := s.supplements.Update(ctx, sup); err != nil {
		return nil, err
	}

	s.logger.Infow("supplement unpublished", "supplement_id", id)
	return toDTO(sup), nil
}

func (s *Service) List(ctx context.Context, q ListQuery) ([]*DTO, int64, error) {
	filter := supplement.Filter{
		Status:     supplement.Status(q.Status),
		CategoryID: q.CategoryID,
		Search:     q.Search,
	}

	supplements, total, err := s.supplements.List(ctx, filter, q.Pagination.Limit(), q.Pagination.Offset())
	if err != nil {
		return nil, 0, err
	}

	dtos := make([]*DTO, len(supplements))
	for i, sup := range supplements {
		dtos[i] = toDTO(sup)
	}
	return dtos, total, nil
}

func (s *Service) GetPublishedBySlug(ctx context.Context, slugValue string) (*PublicDTO, error) {
	sup, err := s.supplements.GetBySlug(ctx, slugValue)
	if err != nil {
		return nil, err
	}
	if !sup.IsPublished() {
		return nil, apperrors.NewNotFoundError("supplement not found")
	}

	sections := []string{sup.Overview(), sup.Benefits(), sup.Dosage(), sup.SideEffects(), sup.Interactions()}
	rendered := make([]string, len(sections))
	for i, section := range sections {
		html, err := s.renderer.ToHTMLSanitized(section)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to render supplement content")
		}
		rendered[i] = html
	}

	return &PublicDTO{
		Slug:             sup.Slug(),
		Name:             sup.Name(),
		OverviewHTML:     rendered[0],
		BenefitsHTML:     rendered[1],
		DosageHTML:       rendered[2],
		SideEffectsHTML:  rendered[3],
		InteractionsHTML: rendered[4],
		CategoryID:       sup.CategoryID(),
		PublishedAt:      formatTimePtr(sup.PublishedAt()),
	}, nil
}

func (s *Service) ListPublished(ctx context.Context, categoryID *uint, p utils.Pagination) ([]*Summary, int64, error) {
	filter := supplement.Filter{
		Status:     supplement.StatusPublished,
		CategoryID: categoryID,
	}

	supplements, total, err := s.supplements.List(ctx, filter, p.Limit(), p.Offset())
	if err != nil {
		return nil, 0, err
	}

	summaries := make([]*Summary, len(supplements))
	for i, sup := range supplements {
		summaries[i] = &Summary{
			Slug:       sup.Slug(),
			Name:       sup.Name(),
			CategoryID: sup.CategoryID(),
		}
	}
	return summaries, total, nil
}

func toDTO(sup *supplement.Supplement) *DTO {
	return &DTO{
		ID:           sup.ID(),
		Slug:         sup.Slug(),
		Name:         sup.Name(),
		Overview:     sup.Overview(),
		Benefits:     sup.Benefits(),
		Dosage:       sup.Dosage(),
		SideEffects:  sup.SideEffects(),
		Interactions: sup.Interactions(),
		CategoryID:   sup.CategoryID(),
		Status:       string(sup.Status()),
		PublishedAt:  formatTimePtr(sup.PublishedAt()),
		CreatedAt:    sup.CreatedAt().UTC().Format(time.RFC3339),
		UpdatedAt:    sup.UpdatedAt().UTC().Format(time.RFC3339),
	}
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.UTC().Format(time.RFC3339)
	return &formatted
}
