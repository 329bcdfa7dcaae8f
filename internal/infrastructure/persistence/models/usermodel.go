package models

import "time"

// UserModel is the GORM model for the users table.
type UserModel struct {
	ID           uint      `gorm:"primaryKey;autoIncrement"`
	Email        string    `gorm:"size:255;not null;uniqueIndex"`
	Name         string    `gorm:"size:120;not null"`
	PasswordHash string    `gorm:"size:255;not null"`
	Role         string    `gorm:"size:20;not null;index"`
	Status       string    `gorm:"size:20;not null;default:'active'"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (UserModel) TableName() string {
	return "users"
}
