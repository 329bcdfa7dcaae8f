package mappers

import (
	"encoding/json"
	"fmt"

	"vitalis/internal/domain/review"
	"vitalis/internal/infrastructure/persistence/models"
	"vitalis/internal/shared/mapper"
)

// ReviewMapper converts between review domain entities and persistence
// models. Pros and cons lists are serialized as JSON arrays.
type ReviewMapper struct{}

func NewReviewMapper() *ReviewMapper {
	return &ReviewMapper{}
}

func (m *ReviewMapper) ToModel(r *review.Review) *models.ReviewModel {
	model := &models.ReviewModel{
		ID:            r.ID(),
		Slug:          r.Slug(),
		ProductName:   r.ProductName(),
		BrandID:       r.BrandID(),
		Rating:        r.Rating(),
		Verdict:       r.Verdict(),
		Body:          r.Body(),
		CoverImageURL: r.CoverImageURL(),
		AuthorID:      r.AuthorID(),
		Status:        string(r.Status()),
		PublishedAt:   r.PublishedAt(),
		CreatedAt:     r.CreatedAt(),
		UpdatedAt:     r.UpdatedAt(),
	}

	if len(r.Pros()) > 0 {
		prosJSON, _ := json.Marshal(r.Pros())
		model.Pros = string(prosJSON)
	}
	if len(r.Cons()) > 0 {
		consJSON, _ := json.Marshal(r.Cons())
		model.Cons = string(consJSON)
	}

	return model
}

func (m *ReviewMapper) ToEntity(model *models.ReviewModel) (*review.Review, error) {
	var pros, cons []string
	if model.Pros != "" {
		if err := json.Unmarshal([]byte(model.Pros), &pros); err != nil {
			return nil, fmt.Errorf("failed to unmarshal review pros (id=%d): %w", model.ID, err)
		}
	}
	if model.Cons != "" {
		if err := json.Unmarshal([]byte(model.Cons), &cons); err != nil {
			return nil, fmt.Errorf("failed to unmarshal review cons (id=%d): %w", model.ID, err)
		}
	}

	return review.Reconstruct(
		model.ID,
		model.Slug,
		model.ProductName,
		model.BrandID,
		model.Rating,
		model.Verdict,
		pros,
		cons,
		model.Body,
		model.CoverImageURL,
		model.AuthorID,
		review.Status(model.Status),
		model.PublishedAt,
		model.CreatedAt,
		model.UpdatedAt,
	), nil
}

func (m *ReviewMapper) ToEntities(reviewModels []models.ReviewModel) ([]*review.Review, error) {
	return mapper.MapSlice(reviewModels,
		func(model models.ReviewModel) (*review.Review, error) { return m.ToEntity(&model) },
		func(model models.ReviewModel) uint { return model.ID },
	)
}
