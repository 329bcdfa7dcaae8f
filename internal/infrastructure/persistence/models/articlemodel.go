package models

import "time"

// ArticleModel is the GORM model for the articles table.
type ArticleModel struct {
	ID            uint   `gorm:"primaryKey;autoIncrement"`
	Slug          string `gorm:"size:120;not null;uniqueIndex"`
	Title         string `gorm:"size:200;not null"`
	Excerpt       string `gorm:"size:500"`
	Body          string `gorm:"type:mediumtext"`
	CoverImageURL string `gorm:"size:500"`
	CategoryID    *uint  `gorm:"index"`
	AuthorID      *uint  `gorm:"index"`
	Status        string `gorm:"size:20;not null;index;default:'draft'"`
	PublishedAt   *time.Time
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`

	// Note: no foreign key constraints. Category and author links are
	// resolved by the application layer.
}

func (ArticleModel) TableName() string {
	return "articles"
}
