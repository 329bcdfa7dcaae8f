package models

import "time"

// SettingModel is the GORM model for the site_settings table.
type SettingModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	Key       string    `gorm:"column:setting_key;size:100;not null;uniqueIndex"`
	Value     string    `gorm:"type:text"`
	IsPublic  bool      `gorm:"not null;default:false;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (SettingModel) TableName() string {
	return "site_settings"
}
