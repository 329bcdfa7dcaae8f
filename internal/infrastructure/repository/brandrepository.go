package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"vitalis/internal/domain/brand"
	"vitalis/internal/infrastructure/persistence/mappers"
	"vitalis/internal/infrastructure/persistence/models"
	apperrors "vitalis/internal/shared/errors"
)

type BrandRepository struct {
	db     *gorm.DB
	mapper *mappers.BrandMapper
}

func NewBrandRepository(db *gorm.DB) *BrandRepository {
	return &BrandRepository{
		db:     db,
		mapper: mappers.NewBrandMapper(),
	}
}

func (r *BrandRepository) Create(ctx context.Context, b *brand.Brand) error {
	model := r.mapper.ToModel(b)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError(fmt.Sprintf("slug %q already in use", b.Slug()))
		}
		return fmt.Errorf("failed to create brand: %w", err)
	}

	b.SetID(model.ID)
	return nil
}

func (r *BrandRepository) GetByID(ctx context.Context, id uint) (*brand.Brand, error) {
	var model models.BrandModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("brand not found")
		}
		return nil, fmt.Errorf("failed to find brand: %w", err)
	}
	return r.mapper.ToEntity(&model), nil
}

func (r *BrandRepository) GetBySlug(ctx context.Context, slugValue string) (*brand.Brand, error) {
	var model models.BrandModel
	if err := r.db.WithContext(ctx).Where("slug = ?", slugValue).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("brand not found")
		}
		return nil, fmt.Errorf("failed to find brand by slug: %w", err)
	}
	return r.mapper.ToEntity(&model), nil
}

func (r *BrandRepository) Update(ctx context.Context, b *brand.Brand) error {
	model := r.mapper.ToModel(b)

	result := r.db.WithContext(ctx).
		Model(&models.BrandModel{}).
		Where("id = ?", model.ID).
		Select("slug", "name", "description", "website_url", "logo_url", "updated_at").
		Updates(model)
	if result.Error != nil {
		if apperrors.IsDuplicateError(result.Error) {
			return apperrors.NewConflictError(fmt.Sprintf("slug %q already in use", b.Slug()))
		}
		return fmt.Errorf("failed to update brand: %w", result.Error)
	}
	return nil
}

func (r *BrandRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.BrandModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete brand: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("brand not found")
	}
	return nil
}

func (r *BrandRepository) List(ctx context.Context, limit, offset int) ([]*brand.Brand, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.BrandModel{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count brands: %w", err)
	}

	var brandModels []models.BrandModel
	if err := query.
		Order("name ASC").
		Limit(limit).
		Offset(offset).
		Find(&brandModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list brands: %w", err)
	}

	return r.mapper.ToEntities(brandModels), total, nil
}
