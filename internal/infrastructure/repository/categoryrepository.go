package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"vitalis/internal/domain/category"
	"vitalis/internal/infrastructure/persistence/mappers"
	"vitalis/internal/infrastructure/persistence/models"
	apperrors "vitalis/internal/shared/errors"
)

type CategoryRepository struct {
	db     *gorm.DB
	mapper *mappers.CategoryMapper
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{
		db:     db,
		mapper: mappers.NewCategoryMapper(),
	}
}

func (r *CategoryRepository) Create(ctx context.Context, c *category.Category) error {
	model := r.mapper.ToModel(c)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError(fmt.Sprintf("slug %q already in use for kind %q", c.Slug(), c.Kind()))
		}
		return fmt.Errorf("failed to create category: %w", err)
	}

	c.SetID(model.ID)
	return nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id uint) (*category.Category, error) {
	var model models.CategoryModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("category not found")
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	return r.mapper.ToEntity(&model), nil
}

func (r *CategoryRepository) GetBySlug(ctx context.Context, kind category.Kind, slugValue string) (*category.Category, error) {
	var model models.CategoryModel
	if err := r.db.WithContext(ctx).
		Where("kind = ? AND slug = ?", string(kind), slugValue).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("category not found")
		}
		return nil, fmt.Errorf("failed to find category by slug: %w", err)
	}
	return r.mapper.ToEntity(&model), nil
}

func (r *CategoryRepository) Update(ctx context.Context, c *category.Category) error {
	model := r.mapper.ToModel(c)

	result := r.db.WithContext(ctx).
		Model(&models.CategoryModel{}).
		Where("id = ?", model.ID).
		Select("slug", "name", "description", "sort_order", "updated_at").
		Updates(model)
	if result.Error != nil {
		if apperrors.IsDuplicateError(result.Error) {
			return apperrors.NewConflictError(fmt.Sprintf("slug %q already in use for kind %q", c.Slug(), c.Kind()))
		}
		return fmt.Errorf("failed to update category: %w", result.Error)
	}
	return nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.CategoryModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("category not found")
	}
	return nil
}

func (r *CategoryRepository) ListByKind(ctx context.Context, kind category.Kind) ([]*category.Category, error) {
	var categoryModels []models.CategoryModel
	if err := r.db.WithContext(ctx).
		Where("kind = ?", string(kind)).
		Order("sort_order ASC, name ASC").
		Find(&categoryModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return r.mapper.ToEntities(categoryModels), nil
}

func (r *CategoryRepository) List(ctx context.Context) ([]*category.Category, error) {
	var categoryModels []models.CategoryModel
	if err := r.db.WithContext(ctx).
		Order("kind ASC, sort_order ASC, name ASC").
		Find(&categoryModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return r.mapper.ToEntities(categoryModels), nil
}
