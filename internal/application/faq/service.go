// Package faq implements FAQ management and public delivery with answers
// rendered to HTML.
package faq

import (
	"context"
	"time"

	"vitalis/internal/domain/faq"
	apperrors "vitalis/internal/shared/errors"
	"vitalis/internal/shared/logger"
	"vitalis/internal/shared/services/markdown"
)

type DTO struct {
	ID         uint   `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	CategoryID *uint  `json:"category_id"`
	SortOrder  int    `json:"sort_order"`
	Published  bool   `json:"published"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

type PublicDTO struct {
	Question   string `json:"question"`
	AnswerHTML string `json:"answer_html"`
	CategoryID *uint  `json:"category_id"`
}

type Input struct {
	Question   string `json:"question" binding:"required"`
	Answer     string `json:"answer" binding:"required"`
	CategoryID *uint  `json:"category_id"`
	SortOrder  int    `json:"sort_order"`
	Published  bool   `json:"published"`
}

type Service struct {
	faqs     faq.Repository
	renderer markdown.Service
	logger   logger.Interface
}

func NewService(faqs faq.Repository, renderer markdown.Service) *Service {
	return &Service{
		faqs:     faqs,
		renderer: renderer,
		logger:   logger.NewLogger().With("component", "faq.service"),
	}
}

func (s *Service) Create(ctx context.Context, input Input) (*DTO, error) {
	f, err := faq.NewFAQ(input.Question, input.Answer, input.CategoryID, input.SortOrder)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if input.Published {
		f.Publish()
	}

	if err := s.faqs.Create(ctx, f); err != nil {
		return nil, err
	}

	s.logger.Infow("faq created", "faq_id", f.ID())
	return toDTO(f), nil
}

func (s *Service) GetByID(ctx context.Context, id uint) (*DTO, error) {
	f, err := s.faqs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDTO(f), nil
}

func (s *Service) Update(ctx context.Context, id uint, input Input) (*DTO, error) {
	f, err := s.faqs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := f.Update(input.Question, input.Answer, input.CategoryID, input.SortOrder); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if input.Published {
		f.Publish()
	} else {
		f.Unpublish()
	}

	if err := s.faqs.Update(ctx, f); err != nil {
		return nil, err
	}

	s.logger.Infow("faq updated", "faq_id", id)
	return toDTO(f), nil
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	if err := s.faqs.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Infow("faq deleted", "faq_id", id)
	return nil
}

func (s *Service) List(ctx context.Context, categoryID *uint) ([]*DTO, error) {
	faqs, err := s.faqs.List(ctx, faq.Filter{CategoryID: categoryID})
	if err != nil {
		return nil, err
	}

	dtos := make([]*DTO, len(faqs))
	for i, f := range faqs {
		dtos[i] = toDTO(f)
	}
	return dtos, nil
}

// ListPublished serves the public FAQ page with rendered answers.
func (s *Service) ListPublished(ctx context.Context, categoryID *uint) ([]*PublicDTO, error) {
	faqs, err := s.faqs.List(ctx, faq.Filter{CategoryID: categoryID, PublishedOnly: true})
	if err != nil {
		return nil, err
	}

	dtos := make([]*PublicDTO, len(faqs))
	for i, f := range faqs {
		html, err := s.renderer.ToHTMLSanitized(f.Answer())
		if err != nil {
			return nil, apperrors.NewInternalError("failed to render faq answer")
		}
		dtos[i] = &PublicDTO{
			Question:   f.Question(),
			AnswerHTML: html,
			CategoryID: f.CategoryID(),
		}
	}
	return dtos, nil
}

func toDTO(f *faq.FAQ) *DTO {
	return &DTO{
		ID:         f.ID(),
		Question:   f.Question(),
		Answer:     f.Answer(),
		CategoryID: f.CategoryID(),
		SortOrder:  f.SortOrder(),
		Published:  f.IsPublished(),
		CreatedAt:  f.CreatedAt().UTC().Format(time.RFC3339),
		UpdatedAt:  f.UpdatedAt().UTC().Format(time.RFC3339),
	}
}
