package models

import "time"

// ReviewModel is the GORM model for the reviews table. Pros and Cons are
// stored as JSON string arrays.
type ReviewModel struct {
	ID            uint   `gorm:"primaryKey;autoIncrement"`
	Slug          string `gorm:"size:120;not null;uniqueIndex"`
	ProductName   string `gorm:"size:200;not null"`
	BrandID       *uint  `gorm:"index"`
	Rating        int    `gorm:"not null"`
	Verdict       string `gorm:"size:500"`
	Pros          string `gorm:"type:json"`
	Cons          string `gorm:"type:json"`
	Body          string `gorm:"type:mediumtext"`
	CoverImageURL string `gorm:"size:500"`
	AuthorID      *uint  `gorm:"index"`
	Status        string `gorm:"size:20;not null;index;default:'draft'"`
	PublishedAt   *time.Time
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

func (ReviewModel) TableName() string {
	return "reviews"
}
