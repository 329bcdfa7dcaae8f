package models

import "time"

// ExpertModel is the GORM model for the experts table.
type ExpertModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	Slug      string    `gorm:"size:120;not null;uniqueIndex"`
	Name      string    `gorm:"size:200;not null"`
	Title     string    `gorm:"size:200"`
	Bio       string    `gorm:"type:text"`
	AvatarURL string    `gorm:"size:500"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (ExpertModel) TableName() string {
	return "experts"
}
