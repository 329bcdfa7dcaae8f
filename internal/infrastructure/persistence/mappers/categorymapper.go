package mappers

import (
	"vitalis/internal/domain/category"
	"vitalis/internal/infrastructure/persistence/models"
)

type CategoryMapper struct{}

func NewCategoryMapper() *CategoryMapper {
	return &CategoryMapper{}
}

func (m *CategoryMapper) ToModel(c *category.Category) *models.CategoryModel {
	return &models.CategoryModel{
		ID:          c.ID(),
		Slug:        c.Slug(),
		Kind:        string(c.Kind()),
		Name:        c.Name(),
		Description: c.Description(),
		SortOrder:   c.SortOrder(),
		CreatedAt:   c.CreatedAt(),
		UpdatedAt:   c.UpdatedAt(),
	}
}

func (m *CategoryMapper) ToEntity(model *models.CategoryModel) *category.Category {
	return category.Reconstruct(
		model.ID,
		model.Slug,
		model.Name,
		category.Kind(model.Kind),
		model.Description,
		model.SortOrder,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *CategoryMapper) ToEntities(categoryModels []models.CategoryModel) []*category.Category {
	categories := make([]*category.Category, len(categoryModels))
	for i := range categoryModels {
		categories[i] = m.ToEntity(&categoryModels[i])
	}
	return categories
}
