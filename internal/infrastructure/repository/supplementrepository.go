package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"vitalis/internal/domain/supplement"
	"vitalis/internal/infrastructure/persistence/mappers"
	"vitalis/internal/infrastructure/persistence/models"
	apperrors "vitalis/internal/shared/errors"
)

type SupplementRepository struct {
	db     *gorm.DB
	mapper *mappers.SupplementMapper
}

func NewSupplementRepository(db *gorm.DB) *SupplementRepository {
	return &SupplementRepository{
		db:     db,
		mapper: mappers.NewSupplementMapper(),
	}
}

func (r *SupplementRepository) Create(ctx context.Context, s *supplement.Supplement) error {
	model := r.mapper.ToModel(s)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError(fmt.Sprintf("slug %q already in use", s.Slug()))
		}
		return fmt.Errorf("failed to create supplement: %w", err)
	}

	s.SetID(model.ID)
	return nil
}

func (r *SupplementRepository) GetByID(ctx context.Context, id uint) (*supplement.Supplement, error) {
	var model models.SupplementModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("supplement not found")
		}
		return nil, fmt.Errorf("failed to find supplement: %w", err)
	}
	return r.mapper.ToEntity(&model), nil
}

func (r *SupplementRepository) GetBySlug(ctx context.Context, slugValue string) (*supplement.Supplement, error) {
	var model models.SupplementModel
	if err := r.db.WithContext(ctx).Where("slug = ?", slugValue).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("supplement not found")
		}
		return nil, fmt.Errorf("failed to find supplement by slug: %w", err)
	}
	return r.mapper.ToEntity(&model), nil
}

func (r *SupplementRepository) Update(ctx context.Context, s *supplement.Supplement) error {
	model := r.mapper.ToModel(s)

	result := r.db.WithContext(ctx).
		Model(&models.SupplementModel{}).
		Where("id = ?", model.ID).
		Select("slug", "name", "overview", "benefits", "dosage", "side_effects",
			"interactions", "category_id", "status", "published_at", "updated_at").
		Updates(model)
	if result.Error != nil {
		if apperrors.IsDuplicateError(result.Error) {
			return apperrors.NewConflictError(fmt.Sprintf("slug %q already in use", s.Slug()))
		}
		return fmt.Errorf("failed to update supplement: %w", result.Error)
	}

	// Note: RowsAffected may be 0 when updated values are identical to existing values.

	return nil
}

func (r *SupplementRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.SupplementModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete supplement: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("supplement not found")
	}
	return nil
}

func (r *SupplementRepository) List(ctx context.Context, filter supplement.Filter, limit, offset int) ([]*supplement.Supplement, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.SupplementModel{})

	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name LIKE ?", pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count supplements: %w", err)
	}

	var supplementModels []models.SupplementModel
	if err := query.
		Order("name ASC").
		Limit(limit).
		Offset(offset).
		Find(&supplementModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list supplements: %w", err)
	}

	return r.mapper.ToEntities(supplementModels), total, nil
}
