package handlers

import (
	"time"

	"github.com/anisurarzu/FTB-Server-Demo/internal/domain/booking"
	"github.com/anisurarzu/FTB-Server-Demo/internal/domain/hotel"
	"github.com/anisurarzu/FTB-Server-Demo/internal/domain/user"
)

// BookingResponse is the booking wire representation. Money fields are
// rendered in taka.
type BookingResponse struct {
	ID                uint       `json:"id"`
	FullName          string     `json:"fullName"`
	NIDPassport       string     `json:"nidPassport,omitempty"`
	Address           string     `json:"address,omitempty"`
	Phone             string     `json:"phone"`
	Email             string     `json:"email,omitempty"`
	HotelID           uint       `json:"hotelID"`
	HotelName         string     `json:"hotelName"`
	RoomCategoryName  string     `json:"roomCategoryName"`
	RoomNumberID      uint       `json:"roomNumberID"`
	RoomNumberName    string     `json:"roomNumberName"`
	CheckInDate       time.Time  `json:"checkInDate"`
	CheckOutDate      time.Time  `json:"checkOutDate"`
	Nights            int        `json:"nights"`
	Adults            int        `json:"adults"`
	Children          int        `json:"children"`
	RoomPrice         float64    `json:"roomPrice"`
	TotalBill         float64    `json:"totalBill"`
	AdvancePayment    float64    `json:"advancePayment"`
	DuePayment        float64    `json:"duePayment"`
	KitchenTotalBill  float64    `json:"kitchenTotalBill"`
	ExtraBedTotalBill float64    `json:"extraBedTotalBill"`
	IsKitchen         bool       `json:"isKitchen"`
	ExtraBed          bool       `json:"extraBed"`
	PaymentStatus     string     `json:"paymentStatus,omitempty"`
	PaymentMethod     string     `json:"paymentMethod,omitempty"`
	PaymentAmount     float64    `json:"paymentAmount"`
	TransactionID     string     `json:"transactionId,omitempty"`
	BookedBy          string     `json:"bookedBy"`
	BookedByID        uint       `json:"bookedByID"`
	Reference         string     `json:"reference,omitempty"`
	Note              string     `json:"note,omitempty"`
	BookingNo         string     `json:"bookingNo"`
	SerialNo          int        `json:"serialNo"`
	Status            string     `json:"status"`
	StatusID          int        `json:"statusID"`
	CanceledBy        string     `json:"canceledBy,omitempty"`
	Reason            string     `json:"reason,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

func toBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:                b.ID(),
		FullName:          b.FullName(),
		NIDPassport:       b.NIDPassport(),
		Address:           b.Address(),
		Phone:             b.Phone(),
		Email:             b.Email(),
		HotelID:           b.HotelID(),
		HotelName:         b.HotelName(),
		RoomCategoryName:  b.RoomCategoryName(),
		RoomNumberID:      b.RoomNumberID(),
		RoomNumberName:    b.RoomNumberName(),
		CheckInDate:       b.CheckInDate(),
		CheckOutDate:      b.CheckOutDate(),
		Nights:            b.Nights(),
		Adults:            b.Adults(),
		Children:          b.Children(),
		RoomPrice:         b.RoomPrice().AmountInTaka(),
		TotalBill:         b.TotalBill().AmountInTaka(),
		AdvancePayment:    b.AdvancePayment().AmountInTaka(),
		DuePayment:        b.DuePayment().AmountInTaka(),
		KitchenTotalBill:  b.KitchenTotalBill().AmountInTaka(),
		ExtraBedTotalBill: b.ExtraBedTotalBill().AmountInTaka(),
		IsKitchen:         b.IsKitchen(),
		ExtraBed:          b.ExtraBed(),
		PaymentStatus:     b.PaymentStatus().String(),
		PaymentMethod:     b.PaymentMethod().String(),
		PaymentAmount:     b.PaymentAmount().AmountInTaka(),
		TransactionID:     b.TransactionID(),
		BookedBy:          b.BookedBy(),
		BookedByID:        b.BookedByID(),
		Reference:         b.Reference(),
		Note:              b.Note(),
		BookingNo:         b.BookingNo(),
		SerialNo:          b.SerialNo(),
		Status:            b.Status().String(),
		StatusID:          b.StatusID(),
		CanceledBy:        b.CanceledBy(),
		Reason:            b.Reason(),
		CreatedAt:         b.CreatedAt(),
		UpdatedAt:         b.UpdatedAt(),
	}
}

func toBookingResponses(bookings []*booking.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, toBookingResponse(b))
	}
	return out
}

type HotelResponse struct {
	ID         int      `json:"id"`
	Name       string   `json:"name"`
	Location   string   `json:"location"`
	Amenities  []string `json:"amenities"`
	Price      float64  `json:"price"`
	Discount   string   `json:"discount,omitempty"`
	Rating     float64  `json:"rating"`
	Image      string   `json:"image,omitempty"`
	TopSelling bool     `json:"topSelling"`
}

func toHotelResponse(h *hotel.Hotel) HotelResponse {
	return HotelResponse{
		ID:         h.PublicID(),
		Name:       h.Name(),
		Location:   h.Location(),
		Amenities:  h.Amenities(),
		Price:      h.Price(),
		Discount:   h.Discount(),
		Rating:     h.Rating(),
		Image:      h.Image(),
		TopSelling: h.TopSelling(),
	}
}

func toHotelResponses(hotels []*hotel.Hotel) []HotelResponse {
	out := make([]HotelResponse, 0, len(hotels))
	for _, h := range hotels {
		out = append(out, toHotelResponse(h))
	}
	return out
}

type HotelDetailsResponse struct {
	ID          uint                `json:"id"`
	HotelID     uint                `json:"hotelId"`
	Name        string              `json:"name"`
	Categories  []hotel.Category    `json:"categories"`
	WhatsNearby []hotel.NearbyPlace `json:"whatsNearby"`
	Policies    []string            `json:"policies"`
}

func toHotelDetailsResponse(d *hotel.HotelDetails) HotelDetailsResponse {
	return HotelDetailsResponse{
		ID:          d.ID(),
		HotelID:     d.HotelID(),
		Name:        d.Name(),
		Categories:  d.Categories(),
		WhatsNearby: d.WhatsNearby(),
		Policies:    d.Policies(),
	}
}

type RoomNumberResponse struct {
	ID           uint   `json:"id"`
	HotelID      uint   `json:"hotelId"`
	HotelName    string `json:"hotelName,omitempty"`
	CategoryName string `json:"categoryName"`
	RoomNumber   string `json:"roomNumber"`
	RoomDetails  string `json:"roomDetails,omitempty"`
	RoomImage    string `json:"roomImage,omitempty"`
	IsOccupied   bool   `json:"isOccupied"`
}

func toRoomNumberResponse(r *hotel.RoomNumber) RoomNumberResponse {
	return RoomNumberResponse{
		ID:           r.ID(),
		HotelID:      r.HotelID(),
		HotelName:    r.HotelName(),
		CategoryName: r.CategoryName(),
		RoomNumber:   r.RoomNumber(),
		RoomDetails:  r.RoomDetails(),
		RoomImage:    r.RoomImage(),
		IsOccupied:   r.IsOccupied(),
	}
}

func toRoomNumberResponses(rooms []*hotel.RoomNumber) []RoomNumberResponse {
	out := make([]RoomNumberResponse, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, toRoomNumberResponse(r))
	}
	return out
}

type UserResponse struct {
	ID        uint   `json:"id"`
	LoginID   string `json:"loginID"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Username  string `json:"username"`
	Phone     string `json:"phone"`
	Address   string `json:"address,omitempty"`
	Email     string `json:"email"`
}

func toUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:        u.ID(),
		LoginID:   u.LoginID(),
		FirstName: u.FirstName(),
		LastName:  u.LastName(),
		Username:  u.Username(),
		Phone:     u.Phone(),
		Address:   u.Address(),
		Email:     u.Email(),
	}
}
