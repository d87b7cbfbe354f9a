package hotel

import (
	"fmt"
	"time"

	"github.com/anisurarzu/FTB-Server-Demo/internal/shared/biztime"
)

// RoomNumber is a physical room within a hotel category. The
// hotel+category+number combination is unique.
type RoomNumber struct {
	id           uint
	hotelID      uint
	hotelName    string
	categoryName string
	roomNumber   string
	roomDetails  string
	roomImage    string
	isOccupied   bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewRoomNumber(hotelID uint, hotelName, categoryName, roomNumber, roomDetails, roomImage string) (*RoomNumber, error) {
	if hotelID == 0 {
		return nil, fmt.Errorf("hotel ID is required")
	}
	if categoryName == "" {
		return nil, fmt.Errorf("category name is required")
	}
	if roomNumber == "" {
		return nil, fmt.Errorf("room number is required")
	}

	now := biztime.NowUTC()
	return &RoomNumber{
		hotelID:      hotelID,
		hotelName:    hotelName,
		categoryName: categoryName,
		roomNumber:   roomNumber,
		roomDetails:  roomDetails,
		roomImage:    roomImage,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func (r *RoomNumber) UpdateDetails(roomNumber, roomDetails, roomImage string) error {
	if roomNumber == "" {
		return fmt.Errorf("room number is required")
	}
	r.roomNumber = roomNumber
	r.roomDetails = roomDetails
	r.roomImage = roomImage
	r.updatedAt = biztime.NowUTC()
	return nil
}

func (r *RoomNumber) SetOccupied(occupied bool) {
	r.isOccupied = occupied
	r.updatedAt = biztime.NowUTC()
}

func (r *RoomNumber) ID() uint             { return r.id }
func (r *RoomNumber) HotelID() uint        { return r.hotelID }
func (r *RoomNumber) HotelName() string    { return r.hotelName }
func (r *RoomNumber) CategoryName() string { return r.categoryName }
func (r *RoomNumber) RoomNumber() string   { return r.roomNumber }
func (r *RoomNumber) RoomDetails() string  { return r.roomDetails }
func (r *RoomNumber) RoomImage() string    { return r.roomImage }
func (r *RoomNumber) IsOccupied() bool     { return r.isOccupied }
func (r *RoomNumber) CreatedAt() time.Time { return r.createdAt }
func (r *RoomNumber) UpdatedAt() time.Time { return r.updatedAt }

func (r *RoomNumber) SetID(id uint) {
	r.id = id
}

type RoomNumberReconstructParams struct {
	ID           uint
	HotelID      uint
	HotelName    string
	CategoryName string
	RoomNumber   string
	RoomDetails  string
	RoomImage    string
	IsOccupied   bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func ReconstructRoomNumber(params RoomNumberReconstructParams) *RoomNumber {
	return &RoomNumber{
		id:           params.ID,
		hotelID:      params.HotelID,
		hotelName:    params.HotelName,
		categoryName: params.CategoryName,
		roomNumber:   params.RoomNumber,
		roomDetails:  params.RoomDetails,
		roomImage:    params.RoomImage,
		isOccupied:   params.IsOccupied,
		createdAt:    params.CreatedAt,
		updatedAt:    params.UpdatedAt,
	}
}
