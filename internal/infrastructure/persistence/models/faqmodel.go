package models

import "time"

// FAQModel is the GORM model for the faqs table.
type FAQModel struct {
	ID         uint   `gorm:"primaryKey;autoIncrement"`
	Question   string `gorm:"size:500;not null"`
	Answer     string `gorm:"type:text;not null"`
	CategoryID *uint  `gorm:"index"`
	SortOrder  int    `gorm:"not null;default:0"`
	Published  bool   `gorm:"not null;default:false;index"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

func (FAQModel) TableName() string {
	return "faqs"
}
