package models

import "time"

// CategoryModel is the GORM model for the categories table. Slugs are
// unique per kind.
type CategoryModel struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	Slug        string    `gorm:"size:120;not null;uniqueIndex:idx_categories_kind_slug"`
	Kind        string    `gorm:"size:20;not null;uniqueIndex:idx_categories_kind_slug;index"`
	Name        string    `gorm:"size:200;not null"`
	Description string    `gorm:"size:500"`
	SortOrder   int       `gorm:"not null;default:0"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (CategoryModel) TableName() string {
	return "categories"
}
