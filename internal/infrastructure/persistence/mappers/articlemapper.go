package mappers

import (
	"vitalis/internal/domain/article"
	"vitalis/internal/infrastructure/persistence/models"
)

// ArticleMapper converts between article domain entities and persistence models.
type ArticleMapper struct{}

func NewArticleMapper() *ArticleMapper {
	return &ArticleMapper{}
}

func (m *ArticleMapper) ToModel(a *article.Article) *models.ArticleModel {
	return &models.ArticleModel{
		ID:            a.ID(),
		Slug:          a.Slug(),
		Title:         a.Title(),
		Excerpt:       a.Excerpt(),
		Body:          a.Body(),
		CoverImageURL: a.CoverImageURL(),
		CategoryID:    a.CategoryID(),
		AuthorID:      a.AuthorID(),
		Status:        string(a.Status()),
		PublishedAt:   a.PublishedAt(),
		CreatedAt:     a.CreatedAt(),
		UpdatedAt:     a.UpdatedAt(),
	}
}

func (m *ArticleMapper) ToEntity(model *models.ArticleModel) *article.Article {
	return article.Reconstruct(
		model.ID,
		model.Slug,
		model.Title,
		model.Excerpt,
		model.Body,
		model.CoverImageURL,
		model.CategoryID,
		model.AuthorID,
		article.Status(model.Status),
		model.PublishedAt,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *ArticleMapper) ToEntities(articleModels []models.ArticleModel) []*article.Article {
	articles := make([]*article.Article, len(articleModels))
	for i := range articleModels {
		articles[i] = m.ToEntity(&articleModels[i])
	}
	return articles
}
