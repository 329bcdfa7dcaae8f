package mappers

import (
	"vitalis/internal/domain/faq"
	"vitalis/internal/infrastructure/persistence/models"
)

type FAQMapper struct{}

func NewFAQMapper() *FAQMapper {
	return &FAQMapper{}
}

func (m *FAQMapper) ToModel(f *faq.FAQ) *models.FAQModel {
	return &models.FAQModel{
		ID:         f.ID(),
		Question:   f.Question(),
		Answer:     f.Answer(),
		CategoryID: f.CategoryID(),
		SortOrder:  f.SortOrder(),
		Published:  f.IsPublished(),
		CreatedAt:  f.CreatedAt(),
		UpdatedAt:  f.UpdatedAt(),
	}
}

func (m *FAQMapper) ToEntity(model *models.FAQModel) *faq.FAQ {
	return faq.Reconstruct(
		model.ID,
		model.Question,
		model.Answer,
		model.CategoryID,
		model.SortOrder,
		model.Published,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *FAQMapper) ToEntities(faqModels []models.FAQModel) []*faq.FAQ {
	faqs := make([]*faq.FAQ, len(faqModels))
	for i := range faqModels {
		faqs[i] = m.ToEntity(&faqModels[i])
	}
	return faqs
}
