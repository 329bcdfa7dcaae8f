package mappers

import (
	"vitalis/internal/domain/brand"
	"vitalis/internal/infrastructure/persistence/models"
)

type BrandMapper struct{}

func NewBrandMapper() *BrandMapper {
	return &BrandMapper{}
}

func (m *BrandMapper) ToModel(b *brand.Brand) *models.BrandModel {
	return &models.BrandModel{
		ID:          b.ID(),
		Slug:        b.Slug(),
		Name:        b.Name(),
		Description: b.Description(),
		WebsiteURL:  b.WebsiteURL(),
		LogoURL:     b.LogoURL(),
		CreatedAt:   b.CreatedAt(),
		UpdatedAt:   b.UpdatedAt(),
	}
}

func (m *BrandMapper) ToEntity(model *models.BrandModel) *brand.Brand {
	return brand.Reconstruct(
		model.ID,
		model.Slug,
		model.Name,
		model.Description,
		model.WebsiteURL,
		model.LogoURL,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *BrandMapper) ToEntities(brandModels []models.BrandModel) []*brand.Brand {
	brands := make([]*brand.Brand, len(brandModels))
	for i := range brandModels {
		brands[i] = m.ToEntity(&brandModels[i])
	}
	return brands
}
