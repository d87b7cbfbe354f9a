package models

import (
	"time"

	"gorm.io/datatypes"
)

// UserModel is the gorm persistence model for back-office accounts.
type UserModel struct {
	ID           uint           `gorm:"primaryKey"`
	LoginID      string         `gorm:"size:16;index"`
	FirstName    string         `gorm:"size:128;not null"`
	LastName     string         `gorm:"size:128;not null"`
	Username     string         `gorm:"size:128;uniqueIndex;not null"`
	Phone        string         `gorm:"size:32;uniqueIndex;not null"`
	Address      string         `gorm:"size:512"`
	Email        string         `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string         `gorm:"size:255;not null"`
	LoginHistory datatypes.JSON `gorm:"type:json"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (UserModel) TableName() string {
	return "web_users"
}
