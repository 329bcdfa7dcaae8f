package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"vitalis/internal/domain/article"
	"vitalis/internal/infrastructure/persistence/mappers"
	"vitalis/internal/infrastructure/persistence/models"
	apperrors "vitalis/internal/shared/errors"
)

type ArticleRepository struct {
	db     *gorm.DB
	mapper *mappers.ArticleMapper
}

func NewArticleRepository(db *gorm.DB) *ArticleRepository {
	return &ArticleRepository{
		db:     db,
		mapper: mappers.NewArticleMapper(),
	}
}

func (r *ArticleRepository) Create(ctx context.Context, a *article.Article) error {
	model := r.mapper.ToModel(a)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError(fmt.Sprintf("slug %q already in use", a.Slug()))
		}
		return fmt.Errorf("failed to create article: %w", err)
	}

	a.SetID(model.ID)
	return nil
}

func (r *ArticleRepository) GetByID(ctx context.Context, id uint) (*article.Article, error) {
	var model models.ArticleModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("article not found")
		}
		return nil, fmt.Errorf("failed to find article: %w", err)
	}
	return r.mapper.ToEntity(&model), nil
}

func (r *ArticleRepository) GetBySlug(ctx context.Context, slugValue string) (*article.Article, error) {
	var model models.ArticleModel
	if err := r.db.WithContext(ctx).Where("slug = ?", slugValue).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("article not found")
		}
		return nil, fmt.Errorf("failed to find article by slug: %w", err)
	}
	return r.mapper.ToEntity(&model), nil
}

func (r *ArticleRepository) Update(ctx context.Context, a *article.Article) error {
	model := r.mapper.ToModel(a)

	result := r.db.WithContext(ctx).
		Model(&models.ArticleModel{}).
		Where("id = ?", model.ID).
		Select("slug", "title", "excerpt", "body", "cover_image_url",
			"category_id", "author_id", "status", "published_at", "updated_at").
		Updates(model)
	if result.Error != nil {
		if apperrors.IsDuplicateError(result.Error) {
			return apperrors.NewConflictError(fmt.Sprintf("slug %q already in use", a.Slug()))
		}
		return fmt.Errorf("failed to update article: %w", result.Error)
	}

	// Note: RowsAffected may be 0 when updated values are identical to existing values.

	return nil
}

func (r *ArticleRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.ArticleModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete article: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("article not found")
	}
	return nil
}

func (r *ArticleRepository) List(ctx context.Context, filter article.Filter, limit, offset int) ([]*article.Article, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.ArticleModel{})

	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.AuthorID != nil {
		query = query.Where("author_id = ?", *filter.AuthorID)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("title LIKE ? OR excerpt LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count articles: %w", err)
	}

	var articleModels []models.ArticleModel
	if err := query.
		Order("COALESCE(published_at, created_at) DESC").
		Limit(limit).
		Offset(offset).
		Find(&articleModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list articles: %w", err)
	}

	return r.mapper.ToEntities(articleModels), total, nil
}
