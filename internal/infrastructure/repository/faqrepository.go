package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"vitalis/internal/domain/faq"
	"vitalis/internal/infrastructure/persistence/mappers"
	"vitalis/internal/infrastructure/persistence/models"
	apperrors "vitalis/internal/shared/errors"
)

type FAQRepository struct {
	db     *gorm.DB
	mapper *mappers.FAQMapper
}

func NewFAQRepository(db *gorm.DB) *FAQRepository {
	return &FAQRepository{
		db:     db,
		mapper: mappers.NewFAQMapper(),
	}
}

func (r *FAQRepository) Create(ctx context.Context, f *faq.FAQ) error {
	model := r.mapper.ToModel(f)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create faq: %w", err)
	}

	f.SetID(model.ID)
	return nil
}

func (r *FAQRepository) GetByID(ctx context.Context, id uint) (*faq.FAQ, error) {
	var model models.FAQModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("faq not found")
		}
		return nil, fmt.Errorf("failed to find faq: %w", err)
	}
	return r.mapper.ToEntity(&model), nil
}

func (r *FAQRepository) Update(ctx context.Context, f *faq.FAQ) error {
	model := r.mapper.ToModel(f)

	result := r.db.WithContext(ctx).
		Model(&models.FAQModel{}).
		Where("id = ?", model.ID).
		Select("question", "answer", "category_id", "sort_order", "published", "updated_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update faq: %w", result.Error)
	}
	return nil
}

func (r *FAQRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.FAQModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete faq: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("faq not found")
	}
	return nil
}

func (r *FAQRepository) List(ctx context.Context, filter faq.Filter) ([]*faq.FAQ, error) {
	query := r.db.WithContext(ctx).Model(&models.FAQModel{})

	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.PublishedOnly {
		query = query.Where("published = ?", true)
	}

	var faqModels []models.FAQModel
	if err := query.
		Order("sort_order ASC, id ASC").
		Find(&faqModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list faqs: %w", err)
	}
	return r.mapper.ToEntities(faqModels), nil
}
