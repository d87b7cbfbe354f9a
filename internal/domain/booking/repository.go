package booking

import "context"

type Repository interface {
	Create(ctx context.Context, booking *Booking) error
	Update(ctx context.Context, booking *Booking) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Booking, error)
	// GetByBookingNo returns every booking sharing the number. Group
	// bookings made under one reference share a booking number.
	GetByBookingNo(ctx context.Context, bookingNo string) ([]*Booking, error)
	List(ctx context.Context) ([]*Booking, error)
	ListByHotelID(ctx context.Context, hotelID uint) ([]*Booking, error)
	ListByUserID(ctx context.Context, bookedByID uint) ([]*Booking, error)
	// GetLastSerialNo returns the highest serial ever assigned, 0 when
	// no bookings exist.
	GetLastSerialNo(ctx context.Context) (int, error)
	// ListBookingNosByPrefix returns all booking numbers starting with
	// the given date prefix.
	ListBookingNosByPrefix(ctx context.Context, prefix string) ([]string, error)
	BookingNoExists(ctx context.Context, bookingNo string) (bool, error)
}
