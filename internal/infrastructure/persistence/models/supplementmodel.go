package models

import "time"

// SupplementModel is the GORM model for the supplements table.
type SupplementModel struct {
	ID           uint   `gorm:"primaryKey;autoIncrement"`
	Slug         string `gorm:"size:120;not null;uniqueIndex"`
	Name         string `gorm:"size:200;not null"`
	Overview     string `gorm:"type:mediumtext"`
	Benefits     string `gorm:"type:mediumtext"`
	Dosage       string `gorm:"type:text"`
	SideEffects  string `gorm:"type:text"`
	Interactions string `gorm:"type:text"`
	CategoryID   *uint  `gorm:"index"`
	Status       string `gorm:"size:20;not null;index;default:'draft'"`
	PublishedAt  *time.Time
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (SupplementModel) TableName() string {
	return "supplements"
}
