package booking

import (
	"fmt"
	"time"

	vo "github.com/anisurarzu/FTB-Server-Demo/internal/domain/booking/valueobjects"
	pvo "github.com/anisurarzu/FTB-Server-Demo/internal/domain/payment/valueobjects"
	"github.com/anisurarzu/FTB-Server-Demo/internal/shared/biztime"
)

// Booking is the reservation aggregate. Payment mirror fields
// (paymentStatus, paymentMethod, paymentAmount, transactionID) are owned
// by the payment flow and updated out of band with the rest of the
// aggregate.
type Booking struct {
	id uint

	fullName    string
	nidPassport string
	address     string
	phone       string
	email       string

	hotelID          uint
	hotelName        string
	roomCategoryName string
	roomNumberID     uint
	roomNumberName   string

	checkInDate  time.Time
	checkOutDate time.Time
	nights       int
	adults       int
	children     int

	roomPrice         pvo.Money
	totalBill         pvo.Money
	advancePayment    pvo.Money
	duePayment        pvo.Money
	kitchenTotalBill  pvo.Money
	extraBedTotalBill pvo.Money
	isKitchen         bool
	extraBed          bool

	paymentStatus pvo.PaymentStatus
	paymentMethod pvo.PaymentMethod
	paymentAmount pvo.Money
	transactionID string

	bookedBy    string
	bookedByID  uint
	updatedByID *uint
	reference   string
	note        string

	bookingNo string
	serialNo  int

	status     vo.BookingStatus
	canceledBy string
	reason     string

	createdAt time.Time
	updatedAt time.Time
}

// CreateBookingParams carries the caller-supplied fields for a new
// booking. Booking number and serial are assigned separately.
type CreateBookingParams struct {
	FullName         string
	NIDPassport      string
	Address          string
	Phone            string
	Email            string
	HotelID          uint
	HotelName        string
	RoomCategoryName string
	RoomNumberID     uint
	RoomNumberName   string
	CheckInDate      time.Time
	CheckOutDate     time.Time
	Nights           int
	Adults           int
	Children         int
	RoomPrice        pvo.Money
	TotalBill        pvo.Money
	AdvancePayment   pvo.Money
	KitchenTotalBill pvo.Money
	ExtraBedTotalBill pvo.Money
	IsKitchen        bool
	ExtraBed         bool
	BookedBy         string
	BookedByID       uint
	Reference        string
	Note             string
}

func NewBooking(params CreateBookingParams) (*Booking, error) {
	if params.FullName == "" {
		return nil, fmt.Errorf("full name is required")
	}
	if params.Phone == "" {
		return nil, fmt.Errorf("phone number is required")
	}
	if params.HotelName == "" {
		return nil, fmt.Errorf("hotel name is required")
	}
	if params.RoomCategoryName == "" {
		return nil, fmt.Errorf("room category is required")
	}
	if params.RoomNumberName == "" {
		return nil, fmt.Errorf("room number is required")
	}
	if !params.CheckOutDate.After(params.CheckInDate) {
		return nil, fmt.Errorf("check-out date must be after check-in date")
	}
	if params.Nights < 1 {
		return nil, fmt.Errorf("must stay at least one night")
	}
	if params.Adults < 1 {
		return nil, fmt.Errorf("there must be at least one adult")
	}
	if params.Children < 0 {
		return nil, fmt.Errorf("number of children cannot be negative")
	}
	if params.TotalBill.AmountInPoisha() < 0 {
		return nil, fmt.Errorf("total bill cannot be negative")
	}
	if params.AdvancePayment.AmountInPoisha() < 0 {
		return nil, fmt.Errorf("advance payment cannot be negative")
	}
	if params.AdvancePayment.AmountInPoisha() > params.TotalBill.AmountInPoisha() {
		return nil, fmt.Errorf("advance payment cannot exceed total bill")
	}
	if params.BookedBy == "" {
		return nil, fmt.Errorf("booked by name is required")
	}

	now := biztime.NowUTC()
	b := &Booking{
		fullName:          params.FullName,
		nidPassport:       params.NIDPassport,
		address:           params.Address,
		phone:             params.Phone,
		email:             params.Email,
		hotelID:           params.HotelID,
		hotelName:         params.HotelName,
		roomCategoryName:  params.RoomCategoryName,
		roomNumberID:      params.RoomNumberID,
		roomNumberName:    params.RoomNumberName,
		checkInDate:       params.CheckInDate,
		checkOutDate:      params.CheckOutDate,
		nights:            params.Nights,
		adults:            params.Adults,
		children:          params.Children,
		roomPrice:         params.RoomPrice,
		totalBill:         params.TotalBill,
		advancePayment:    params.AdvancePayment,
		kitchenTotalBill:  params.KitchenTotalBill,
		extraBedTotalBill: params.ExtraBedTotalBill,
		isKitchen:         params.IsKitchen,
		extraBed:          params.ExtraBed,
		bookedBy:          params.BookedBy,
		bookedByID:        params.BookedByID,
		reference:         params.Reference,
		note:              params.Note,
		status:            vo.BookingStatusPending,
		createdAt:         now,
		updatedAt:         now,
	}
	b.recalcDuePayment()
	return b, nil
}

func (b *Booking) recalcDuePayment() {
	due := b.totalBill.AmountInPoisha() - b.advancePayment.AmountInPoisha()
	b.duePayment = pvo.NewMoney(due, b.totalBill.Currency())
}

// AssignNumber sets the booking number and the global serial. Called once
// before the first persist.
func (b *Booking) AssignNumber(bookingNo string, serialNo int) {
	b.bookingNo = bookingNo
	b.serialNo = serialNo
	b.updatedAt = biztime.NowUTC()
}

// UpdateBills replaces the money fields and recomputes the due payment.
func (b *Booking) UpdateBills(totalBill, advancePayment, kitchenTotalBill, extraBedTotalBill pvo.Money, updatedByID uint) error {
	if advancePayment.AmountInPoisha() > totalBill.AmountInPoisha() {
		return fmt.Errorf("advance payment cannot exceed total bill")
	}
	b.totalBill = totalBill
	b.advancePayment = advancePayment
	b.kitchenTotalBill = kitchenTotalBill
	b.extraBedTotalBill = extraBedTotalBill
	b.updatedByID = &updatedByID
	b.recalcDuePayment()
	b.updatedAt = biztime.NowUTC()
	return nil
}

// UpdateStay replaces the stay window and occupancy.
func (b *Booking) UpdateStay(checkIn, checkOut time.Time, nights, adults, children int, updatedByID uint) error {
	if !checkOut.After(checkIn) {
		return fmt.Errorf("check-out date must be after check-in date")
	}
	if nights < 1 {
		return fmt.Errorf("must stay at least one night")
	}
	if adults < 1 {
		return fmt.Errorf("there must be at least one adult")
	}
	b.checkInDate = checkIn
	b.checkOutDate = checkOut
	b.nights = nights
	b.adults = adults
	b.children = children
	b.updatedByID = &updatedByID
	b.updatedAt = biztime.NowUTC()
	return nil
}

// ChangeStatus moves the booking to the given status. Canceled and
// completed bookings stay where they are.
func (b *Booking) ChangeStatus(status vo.BookingStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid booking status: %s", status)
	}
	if b.status.IsTerminal() && status != b.status {
		return fmt.Errorf("cannot change status of %s booking", b.status)
	}
	b.status = status
	b.updatedAt = biztime.NowUTC()
	return nil
}

func (b *Booking) Cancel(canceledBy, reason string) error {
	if b.status == vo.BookingStatusCanceled {
		return nil
	}
	if b.status == vo.BookingStatusCompleted {
		return fmt.Errorf("cannot cancel a completed booking")
	}
	b.status = vo.BookingStatusCanceled
	b.canceledBy = canceledBy
	b.reason = reason
	b.updatedAt = biztime.NowUTC()
	return nil
}

// UpdatePaymentInfo mirrors the latest checkout state onto the booking.
func (b *Booking) UpdatePaymentInfo(status pvo.PaymentStatus, method pvo.PaymentMethod, amount pvo.Money, transactionID string) {
	b.paymentStatus = status
	b.paymentMethod = method
	b.paymentAmount = amount
	if transactionID != "" {
		b.transactionID = transactionID
	}
	b.updatedAt = biztime.NowUTC()
}

func (b *Booking) ID() uint                         { return b.id }
func (b *Booking) FullName() string                 { return b.fullName }
func (b *Booking) NIDPassport() string              { return b.nidPassport }
func (b *Booking) Address() string                  { return b.address }
func (b *Booking) Phone() string                    { return b.phone }
func (b *Booking) Email() string                    { return b.email }
func (b *Booking) HotelID() uint                    { return b.hotelID }
func (b *Booking) HotelName() string                { return b.hotelName }
func (b *Booking) RoomCategoryName() string         { return b.roomCategoryName }
func (b *Booking) RoomNumberID() uint               { return b.roomNumberID }
func (b *Booking) RoomNumberName() string           { return b.roomNumberName }
func (b *Booking) CheckInDate() time.Time           { return b.checkInDate }
func (b *Booking) CheckOutDate() time.Time          { return b.checkOutDate }
func (b *Booking) Nights() int                      { return b.nights }
func (b *Booking) Adults() int                      { return b.adults }
func (b *Booking) Children() int                    { return b.children }
func (b *Booking) RoomPrice() pvo.Money             { return b.roomPrice }
func (b *Booking) TotalBill() pvo.Money             { return b.totalBill }
func (b *Booking) AdvancePayment() pvo.Money        { return b.advancePayment }
func (b *Booking) DuePayment() pvo.Money            { return b.duePayment }
func (b *Booking) KitchenTotalBill() pvo.Money      { return b.kitchenTotalBill }
func (b *Booking) ExtraBedTotalBill() pvo.Money     { return b.extraBedTotalBill }
func (b *Booking) IsKitchen() bool                  { return b.isKitchen }
func (b *Booking) ExtraBed() bool                   { return b.extraBed }
func (b *Booking) PaymentStatus() pvo.PaymentStatus { return b.paymentStatus }
func (b *Booking) PaymentMethod() pvo.PaymentMethod { return b.paymentMethod }
func (b *Booking) PaymentAmount() pvo.Money         { return b.paymentAmount }
func (b *Booking) TransactionID() string            { return b.transactionID }
func (b *Booking) BookedBy() string                 { return b.bookedBy }
func (b *Booking) BookedByID() uint                 { return b.bookedByID }
func (b *Booking) UpdatedByID() *uint               { return b.updatedByID }
func (b *Booking) Reference() string                { return b.reference }
func (b *Booking) Note() string                     { return b.note }
func (b *Booking) BookingNo() string                { return b.bookingNo }
func (b *Booking) SerialNo() int                    { return b.serialNo }
func (b *Booking) Status() vo.BookingStatus         { return b.status }
func (b *Booking) StatusID() int                    { return b.status.StatusID() }
func (b *Booking) CanceledBy() string               { return b.canceledBy }
func (b *Booking) Reason() string                   { return b.reason }
func (b *Booking) CreatedAt() time.Time             { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time             { return b.updatedAt }

// SetID sets the booking ID after persistence (used by repository after Create)
func (b *Booking) SetID(id uint) {
	b.id = id
}

// BookingReconstructParams carries persisted state back into the aggregate.
type BookingReconstructParams struct {
	ID                uint
	FullName          string
	NIDPassport       string
	Address           string
	Phone             string
	Email             string
	HotelID           uint
	HotelName         string
	RoomCategoryName  string
	RoomNumberID      uint
	RoomNumberName    string
	CheckInDate       time.Time
	CheckOutDate      time.Time
	Nights            int
	Adults            int
	Children          int
	RoomPrice         pvo.Money
	TotalBill         pvo.Money
	AdvancePayment    pvo.Money
	DuePayment        pvo.Money
	KitchenTotalBill  pvo.Money
	ExtraBedTotalBill pvo.Money
	IsKitchen         bool
	ExtraBed          bool
	PaymentStatus     pvo.PaymentStatus
	PaymentMethod     pvo.PaymentMethod
	PaymentAmount     pvo.Money
	TransactionID     string
	BookedBy          string
	BookedByID        uint
	UpdatedByID       *uint
	Reference         string
	Note              string
	BookingNo         string
	SerialNo          int
	Status            vo.BookingStatus
	CanceledBy        string
	Reason            string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func ReconstructBooking(params BookingReconstructParams) *Booking {
	return &Booking{
		id:                params.ID,
		fullName:          params.FullName,
		nidPassport:       params.NIDPassport,
		address:           params.Address,
		phone:             params.Phone,
		email:             params.Email,
		hotelID:           params.HotelID,
		hotelName:         params.HotelName,
		roomCategoryName:  params.RoomCategoryName,
		roomNumberID:      params.RoomNumberID,
		roomNumberName:    params.RoomNumberName,
		checkInDate:       params.CheckInDate,
		checkOutDate:      params.CheckOutDate,
		nights:            params.Nights,
		adults:            params.Adults,
		children:          params.Children,
		roomPrice:         params.RoomPrice,
		totalBill:         params.TotalBill,
		advancePayment:    params.AdvancePayment,
		duePayment:        params.DuePayment,
		kitchenTotalBill:  params.KitchenTotalBill,
		extraBedTotalBill: params.ExtraBedTotalBill,
		isKitchen:         params.IsKitchen,
		extraBed:          params.ExtraBed,
		paymentStatus:     params.PaymentStatus,
		paymentMethod:     params.PaymentMethod,
		paymentAmount:     params.PaymentAmount,
		transactionID:     params.TransactionID,
		bookedBy:          params.BookedBy,
		bookedByID:        params.BookedByID,
		updatedByID:       params.UpdatedByID,
		reference:         params.Reference,
		note:              params.Note,
		bookingNo:         params.BookingNo,
		serialNo:          params.SerialNo,
		status:            params.Status,
		canceledBy:        params.CanceledBy,
		reason:            params.Reason,
		createdAt:         params.CreatedAt,
		updatedAt:         params.UpdatedAt,
	}
}
