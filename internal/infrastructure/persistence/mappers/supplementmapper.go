package mappers

import (
	"vitalis/internal/domain/supplement"
	"vitalis/internal/infrastructure/persistence/models"
)

// SupplementMapper converts between supplement domain entities and
// persistence models.
type SupplementMapper struct{}

func NewSupplementMapper() *SupplementMapper {
	return &SupplementMapper{}
}

func (m *SupplementMapper) ToModel(s *supplement.Supplement) *models.SupplementModel {
	return &models.SupplementModel{
		ID:           s.ID(),
		Slug:         s.Slug(),
		Name:         s.Name(),
		Overview:     s.Overview(),
		Benefits:     s.Benefits(),
		Dosage:       s.Dosage(),
		SideEffects:  s.SideEffects(),
		Interactions: s.Interactions(),
		CategoryID:   s.CategoryID(),
		Status:       string(s.Status()),
		PublishedAt:  s.PublishedAt(),
		CreatedAt:    s.CreatedAt(),
		UpdatedAt:    s.UpdatedAt(),
	}
}

func (m *SupplementMapper) ToEntity(model *models.SupplementModel) *supplement.Supplement {
	return supplement.Reconstruct(
		model.ID,
		model.Slug,
		model.Name,
		model.Overview,
		model.Benefits,
		model.Dosage,
		model.SideEffects,
		model.Interactions,
		model.CategoryID,
		supplement.Status(model.Status),
		model.PublishedAt,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *SupplementMapper) ToEntities(supplementModels []models.SupplementModel) []*supplement.Supplement {
	supplements := make([]*supplement.Supplement, len(supplementModels))
	for i := range supplementModels {
		supplements[i] = m.ToEntity(&supplementModels[i])
	}
	return supplements
}
