package models

import "time"

// BookingModel is the gorm persistence model for reservations. Money
// columns are stored in poisha.
type BookingModel struct {
	ID          uint   `gorm:"primaryKey"`
	FullName    string `gorm:"size:255;not null"`
	NIDPassport string `gorm:"size:64"`
	Address     string `gorm:"size:512"`
	Phone       string `gorm:"size:32;not null;index"`
	Email       string `gorm:"size:255"`

	HotelID          uint   `gorm:"index;not null"`
	HotelName        string `gorm:"size:255;not null"`
	RoomCategoryName string `gorm:"size:128;not null"`
	RoomNumberID     uint   `gorm:"index"`
	RoomNumberName   string `gorm:"size:64;not null"`

	CheckInDate  time.Time `gorm:"not null"`
	CheckOutDate time.Time `gorm:"not null"`
	Nights       int       `gorm:"not null"`
	Adults       int       `gorm:"not null;default:1"`
	Children     int       `gorm:"not null;default:0"`

	RoomPriceInPoisha         int64 `gorm:"not null;default:0"`
	TotalBillInPoisha         int64 `gorm:"not null"`
	AdvancePaymentInPoisha    int64 `gorm:"not null;default:0"`
	DuePaymentInPoisha        int64 `gorm:"not null;default:0"`
	KitchenTotalBillInPoisha  int64 `gorm:"not null;default:0"`
	ExtraBedTotalBillInPoisha int64 `gorm:"not null;default:0"`
	IsKitchen                 bool  `gorm:"not null;default:false"`
	ExtraBed                  bool  `gorm:"not null;default:false"`

	PaymentStatus         string `gorm:"size:32"`
	PaymentMethod         string `gorm:"size:32"`
	PaymentAmountInPoisha int64  `gorm:"not null;default:0"`
	TransactionID         string `gorm:"size:128"`

	BookedBy    string `gorm:"size:128;not null"`
	BookedByID  uint   `gorm:"index;not null"`
	UpdatedByID *uint
	Reference   string `gorm:"size:64"`
	Note        string `gorm:"size:1024"`

	BookingNo string `gorm:"size:16;not null;index"`
	SerialNo  int    `gorm:"not null;index"`

	Status     string `gorm:"size:16;not null;default:pending"`
	StatusID   int    `gorm:"not null;default:1"`
	CanceledBy string `gorm:"size:128"`
	Reason     string `gorm:"size:512"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (BookingModel) TableName() string {
	return "bookings"
}
