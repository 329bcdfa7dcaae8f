package models

import "time"

// BrandModel is the GORM model for the brands table.
type BrandModel struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	Slug        string    `gorm:"size:120;not null;uniqueIndex"`
	Name        string    `gorm:"size:200;not null"`
	Description string    `gorm:"type:text"`
	WebsiteURL  string    `gorm:"size:500"`
	LogoURL     string    `gorm:"size:500"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (BrandModel) TableName() string {
	return "brands"
}
