package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"vitalis/internal/domain/expert"
	"vitalis/internal/infrastructure/persistence/mappers"
	"vitalis/internal/infrastructure/persistence/models"
	apperrors "vitalis/internal/shared/errors"
)

type ExpertRepository struct {
	db     *gorm.DB
	mapper *mappers.ExpertMapper
}

func NewExpertRepository(db *gorm.DB) *ExpertRepository {
	return &ExpertRepository{
		db:     db,
		mapper: mappers.NewExpertMapper(),
	}
}

func (r *ExpertRepository) Create(ctx context.Context, e *expert.Expert) error {
	model := r.mapper.ToModel(e)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError(fmt.Sprintf("slug %q already in use", e.Slug()))
		}
		return fmt.Errorf("failed to create expert: %w", err)
	}

	e.SetID(model.ID)
	return nil
}

func (r *ExpertRepository) GetByID(ctx context.Context, id uint) (*expert.Expert, error) {
	var model models.ExpertModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("expert not found")
		}
		return nil, fmt.Errorf("failed to find expert: %w", err)
	}
	return r.mapper.ToEntity(&model), nil
}

func (r *ExpertRepository) GetBySlug(ctx context.Context, slugValue string) (*expert.Expert, error) {
	var model models.ExpertModel
	if err := r.db.WithContext(ctx).Where("slug = ?", slugValue).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("expert not found")
		}
		return nil, fmt.Errorf("failed to find expert by slug: %w", err)
	}
	return r.mapper.ToEntity(&model), nil
}

func (r *ExpertRepository) Update(ctx context.Context, e *expert.Expert) error {
	model := r.mapper.ToModel(e)

	result := r.db.WithContext(ctx).
		Model(&models.ExpertModel{}).
		Where("id = ?", model.ID).
		Select("slug", "name", "title", "bio", "avatar_url", "updated_at").
		Updates(model)
	if result.Error != nil {
		if apperrors.IsDuplicateError(result.Error) {
			return apperrors.NewConflictError(fmt.Sprintf("slug %q already in use", e.Slug()))
		}
		return fmt.Errorf("failed to update expert: %w", result.Error)
	}
	return nil
}

func (r *ExpertRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.ExpertModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete expert: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("expert not found")
	}
	return nil
}

func (r *ExpertRepository) List(ctx context.Context, limit, offset int) ([]*expert.Expert, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.ExpertModel{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count experts: %w", err)
	}

	var expertModels []models.ExpertModel
	if err := query.
		Order("name ASC").
		Limit(limit).
		Offset(offset).
		Find(&expertModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list experts: %w", err)
	}

	return r.mapper.ToEntities(expertModels), total, nil
}
