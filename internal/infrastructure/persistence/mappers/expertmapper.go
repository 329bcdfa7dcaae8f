package mappers

import (
	"vitalis/internal/domain/expert"
	"vitalis/internal/infrastructure/persistence/models"
)

type ExpertMapper struct{}

func NewExpertMapper() *ExpertMapper {
	return &ExpertMapper{}
}

func (m *ExpertMapper) ToModel(e *expert.Expert) *models.ExpertModel {
	return &models.ExpertModel{
		ID:        e.ID(),
		Slug:      e.Slug(),
		Name:      e.Name(),
		Title:     e.Title(),
		Bio:       e.Bio(),
		AvatarURL: e.AvatarURL(),
		CreatedAt: e.CreatedAt(),
		UpdatedAt: e.UpdatedAt(),
	}
}

func (m *ExpertMapper) ToEntity(model *models.ExpertModel) *expert.Expert {
	return expert.Reconstruct(
		model.ID,
		model.Slug,
		model.Name,
		model.Title,
		model.Bio,
		model.AvatarURL,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *ExpertMapper) ToEntities(expertModels []models.ExpertModel) []*expert.Expert {
	experts := make([]*expert.Expert, len(expertModels))
	for i := range expertModels {
		experts[i] = m.ToEntity(&expertModels[i])
	}
	return experts
}
