package models

import (
	"time"

	"gorm.io/datatypes"
)

// HotelModel is the gorm persistence model for catalog summaries.
type HotelModel struct {
	ID         uint           `gorm:"primaryKey"`
	PublicID   int            `gorm:"uniqueIndex;not null"`
	Name       string         `gorm:"size:255;not null;index"`
	Location   string         `gorm:"size:255;not null;index"`
	Amenities  datatypes.JSON `gorm:"type:json"`
	Price      float64        `gorm:"not null"`
	Discount   string         `gorm:"size:32"`
	Rating     float64        `gorm:"not null;default:0"`
	Image      string         `gorm:"size:512"`
	TopSelling bool           `gorm:"not null;default:false;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (HotelModel) TableName() string {
	return "web_hotels"
}

// HotelDetailsModel is the gorm persistence model for per-hotel content.
// Categories, nearby places and policies are JSON documents.
type HotelDetailsModel struct {
	ID          uint           `gorm:"primaryKey"`
	HotelID     uint           `gorm:"uniqueIndex;not null"`
	Name        string         `gorm:"size:255;not null"`
	Categories  datatypes.JSON `gorm:"type:json;not null"`
	WhatsNearby datatypes.JSON `gorm:"type:json"`
	Policies    datatypes.JSON `gorm:"type:json"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (HotelDetailsModel) TableName() string {
	return "web_hotel_details"
}

// RoomNumberModel is the gorm persistence model for physical rooms.
type RoomNumberModel struct {
	ID           uint   `gorm:"primaryKey"`
	HotelID      uint   `gorm:"not null;uniqueIndex:idx_hotel_category_room"`
	HotelName    string `gorm:"size:255"`
	CategoryName string `gorm:"size:128;not null;uniqueIndex:idx_hotel_category_room"`
	RoomNumber   string `gorm:"size:64;not null;uniqueIndex:idx_hotel_category_room"`
	RoomDetails  string `gorm:"size:1024"`
	RoomImage    string `gorm:"size:512"`
	IsOccupied   bool   `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (RoomNumberModel) TableName() string {
	return "room_numbers"
}
