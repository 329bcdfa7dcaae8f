package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"vitalis/internal/domain/review"
	"vitalis/internal/infrastructure/persistence/mappers"
	"vitalis/internal/infrastructure/persistence/models"
	apperrors "vitalis/internal/shared/errors"
)

type ReviewRepository struct {
	db     *gorm.DB
	mapper *mappers.ReviewMapper
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{
		db:     db,
		mapper: mappers.NewReviewMapper(),
	}
}

func (r *ReviewRepository) Create(ctx context.Context, rv *review.Review) error {
	model := r.mapper.ToModel(rv)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError(fmt.Sprintf("slug %q already in use", rv.Slug()))
		}
		return fmt.Errorf("failed to create review: %w", err)
	}

	rv.SetID(model.ID)
	return nil
}

func (r *ReviewRepository) GetByID(ctx context.Context, id uint) (*review.Review, error) {
	var model models.ReviewModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("review not found")
		}
		return nil, fmt.Errorf("failed to find review: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *ReviewRepository) GetBySlug(ctx context.Context, slugValue string) (*review.Review, error) {
	var model models.ReviewModel
	if err := r.db.WithContext(ctx).Where("slug = ?", slugValue).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("review not found")
		}
		return nil, fmt.Errorf("failed to find review by slug: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *ReviewRepository) Update(ctx context.Context, rv *review.Review) error {
	model := r.mapper.ToModel(rv)

	result := r.db.WithContext(ctx).
		Model(&models.ReviewModel{}).
		Where("id = ?", model.ID).
		Select("slug", "product_name", "brand_id", "rating", "verdict", "pros", "cons",
			"body", "cover_image_url", "author_id", "status", "published_at", "updated_at").
		Updates(model)
	if result.Error != nil {
		if apperrors.IsDuplicateError(result.Error) {
			return apperrors.NewConflictError(fmt.Sprintf("slug %q already in use", rv.Slug()))
		}
		return fmt.Errorf("failed to update review: %w", result.Error)
	}

	// Note: RowsAffected may be 0 when updated values are identical to existing values.

	return nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.ReviewModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete review: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("review not found")
	}
	return nil
}

func (r *ReviewRepository) List(ctx context.Context, filter review.Filter, limit, offset int) ([]*review.Review, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.ReviewModel{})

	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.BrandID != nil {
		query = query.Where("brand_id = ?", *filter.BrandID)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("product_name LIKE ? OR verdict LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count reviews: %w", err)
	}

	var reviewModels []models.ReviewModel
	if err := query.
		Order("COALESCE(published_at, created_at) DESC").
		Limit(limit).
		Offset(offset).
		Find(&reviewModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list reviews: %w", err)
	}

	reviews, err := r.mapper.ToEntities(reviewModels)
	if err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}
