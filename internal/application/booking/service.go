package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/anisurarzu/FTB-Server-Demo/internal/domain/booking"
	bvo "github.com/anisurarzu/FTB-Server-Demo/internal/domain/booking/valueobjects"
	pvo "github.com/anisurarzu/FTB-Server-Demo/internal/domain/payment/valueobjects"
	"github.com/anisurarzu/FTB-Server-Demo/internal/shared/biztime"
	"github.com/anisurarzu/FTB-Server-Demo/internal/shared/errors"
	"github.com/anisurarzu/FTB-Server-Demo/internal/shared/logger"
)

type CreateBookingCommand struct {
	FullName          string    `json:"fullName" binding:"required"`
	NIDPassport       string    `json:"nidPassport"`
	Address           string    `json:"address"`
	Phone             string    `json:"phone" binding:"required"`
	Email             string    `json:"email"`
	HotelID           uint      `json:"hotelID" binding:"required"`
	HotelName         string    `json:"hotelName" binding:"required"`
	RoomCategoryName  string    `json:"roomCategoryName" binding:"required"`
	RoomNumberID      uint      `json:"roomNumberID" binding:"required"`
	RoomNumberName    string    `json:"roomNumberName" binding:"required"`
	CheckInDate       time.Time `json:"checkInDate" binding:"required"`
	CheckOutDate      time.Time `json:"checkOutDate" binding:"required"`
	Nights            int       `json:"nights" binding:"required,min=1"`
	Adults            int       `json:"adults" binding:"required,min=1"`
	Children          int       `json:"children"`
	RoomPrice         float64   `json:"roomPrice"`
	TotalBill         float64   `json:"totalBill" binding:"required"`
	AdvancePayment    float64   `json:"advancePayment"`
	KitchenTotalBill  float64   `json:"kitchenTotalBill"`
	ExtraBedTotalBill float64   `json:"extraBedTotalBill"`
	IsKitchen         bool      `json:"isKitchen"`
	ExtraBed          bool      `json:"extraBed"`
	BookedBy          string    `json:"bookedBy" binding:"required"`
	BookedByID        uint      `json:"bookedByID" binding:"required"`
	Reference         string    `json:"reference"`
	Note              string    `json:"note"`
}

type UpdateBookingCommand struct {
	CheckInDate       time.Time `json:"checkInDate" binding:"required"`
	CheckOutDate      time.Time `json:"checkOutDate" binding:"required"`
	Nights            int       `json:"nights" binding:"required,min=1"`
	Adults            int       `json:"adults" binding:"required,min=1"`
	Children          int       `json:"children"`
	TotalBill         float64   `json:"totalBill" binding:"required"`
	AdvancePayment    float64   `json:"advancePayment"`
	KitchenTotalBill  float64   `json:"kitchenTotalBill"`
	ExtraBedTotalBill float64   `json:"extraBedTotalBill"`
	UpdatedByID       uint      `json:"updatedByID" binding:"required"`
}

type UpdateStatusCommand struct {
	StatusID   int    `json:"statusID" binding:"required"`
	CanceledBy string `json:"canceledBy"`
	Reason     string `json:"reason"`
}

type CancelBookingCommand struct {
	CanceledBy string `json:"canceledBy" binding:"required"`
	Reason     string `json:"reason"`
}

// Service owns the booking lifecycle: numbering, status moves and the
// queries the back office runs.
type Service struct {
	repo   booking.Repository
	logger logger.Interface
	now    func() time.Time
}

func NewService(repo booking.Repository, log logger.Interface) *Service {
	return &Service{
		repo:   repo,
		logger: log,
		now:    time.Now,
	}
}

func (s *Service) Create(ctx context.Context, cmd CreateBookingCommand) (*booking.Booking, error) {
	b, err := booking.NewBooking(booking.CreateBookingParams{
		FullName:          cmd.FullName,
		NIDPassport:       cmd.NIDPassport,
		Address:           cmd.Address,
		Phone:             cmd.Phone,
		Email:             cmd.Email,
		HotelID:           cmd.HotelID,
		HotelName:         cmd.HotelName,
		RoomCategoryName:  cmd.RoomCategoryName,
		RoomNumberID:      cmd.RoomNumberID,
		RoomNumberName:    cmd.RoomNumberName,
		CheckInDate:       cmd.CheckInDate,
		CheckOutDate:      cmd.CheckOutDate,
		Nights:            cmd.Nights,
		Adults:            cmd.Adults,
		Children:          cmd.Children,
		RoomPrice:         pvo.NewMoneyFromTaka(cmd.RoomPrice, "BDT"),
		TotalBill:         pvo.NewMoneyFromTaka(cmd.TotalBill, "BDT"),
		AdvancePayment:    pvo.NewMoneyFromTaka(cmd.AdvancePayment, "BDT"),
		KitchenTotalBill:  pvo.NewMoneyFromTaka(cmd.KitchenTotalBill, "BDT"),
		ExtraBedTotalBill: pvo.NewMoneyFromTaka(cmd.ExtraBedTotalBill, "BDT"),
		IsKitchen:         cmd.IsKitchen,
		ExtraBed:          cmd.ExtraBed,
		BookedBy:          cmd.BookedBy,
		BookedByID:        cmd.BookedByID,
		Reference:         cmd.Reference,
		Note:              cmd.Note,
	})
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	serialNo, err := s.nextSerialNo(ctx)
	if err != nil {
		return nil, err
	}

	bookingNo, err := s.resolveBookingNo(ctx, cmd.Reference)
	if err != nil {
		return nil, err
	}

	b.AssignNumber(bookingNo, serialNo)

	if err := s.repo.Create(ctx, b); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("booking number already exists", bookingNo)
		}
		s.logger.Errorw("failed to create booking", "bookingNo", bookingNo, "error", err)
		return nil, errors.NewInternalError("failed to create booking")
	}

	s.logger.Infow("booking created",
		"bookingID", b.ID(),
		"bookingNo", bookingNo,
		"serialNo", serialNo,
		"hotelID", cmd.HotelID)
	return b, nil
}

// nextSerialNo increments the global booking serial.
func (s *Service) nextSerialNo(ctx context.Context) (int, error) {
	last, err := s.repo.GetLastSerialNo(ctx)
	if err != nil {
		return 0, errors.NewInternalError("failed to determine next serial number")
	}
	return last + 1, nil
}

// resolveBookingNo reuses the referenced booking number when it exists,
// otherwise generates a fresh one for today.
func (s *Service) resolveBookingNo(ctx context.Context, reference string) (string, error) {
	if reference != "" {
		exists, err := s.repo.BookingNoExists(ctx, reference)
		if err != nil {
			return "", errors.NewInternalError("failed to check booking reference")
		}
		if exists {
			return reference, nil
		}
	}
	return s.generateBookingNo(ctx)
}

// generateBookingNo builds YYMMDDnn where nn is the next two-digit
// serial within the current business day.
func (s *Service) generateBookingNo(ctx context.Context) (string, error) {
	prefix := biztime.DatePrefix(s.now())

	existing, err := s.repo.ListBookingNosByPrefix(ctx, prefix)
	if err != nil {
		return "", errors.NewInternalError("failed to generate booking number")
	}

	maxSerial := 0
	for _, no := range existing {
		if len(no) < 2 {
			continue
		}
		serial := 0
		if _, err := fmt.Sscanf(no[len(no)-2:], "%d", &serial); err != nil {
			continue
		}
		if serial > maxSerial {
			maxSerial = serial
		}
	}

	return fmt.Sprintf("%s%02d", prefix, maxSerial+1), nil
}

func (s *Service) Update(ctx context.Context, id uint, cmd UpdateBookingCommand) (*booking.Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := b.UpdateStay(cmd.CheckInDate, cmd.CheckOutDate, cmd.Nights, cmd.Adults, cmd.Children, cmd.UpdatedByID); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := b.UpdateBills(
		pvo.NewMoneyFromTaka(cmd.TotalBill, "BDT"),
		pvo.NewMoneyFromTaka(cmd.AdvancePayment, "BDT"),
		pvo.NewMoneyFromTaka(cmd.KitchenTotalBill, "BDT"),
		pvo.NewMoneyFromTaka(cmd.ExtraBedTotalBill, "BDT"),
		cmd.UpdatedByID,
	); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.repo.Update(ctx, b); err != nil {
		s.logger.Errorw("failed to update booking", "bookingID", id, "error", err)
		return nil, errors.NewInternalError("failed to update booking")
	}
	return b, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id uint, cmd UpdateStatusCommand) (*booking.Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	status, err := bvo.NewBookingStatusFromID(cmd.StatusID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if status == bvo.BookingStatusCanceled {
		if err := b.Cancel(cmd.CanceledBy, cmd.Reason); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	} else if err := b.ChangeStatus(status); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.repo.Update(ctx, b); err != nil {
		s.logger.Errorw("failed to update booking status", "bookingID", id, "error", err)
		return nil, errors.NewInternalError("failed to update booking status")
	}

	s.logger.Infow("booking status updated",
		"bookingID", id,
		"status", status.String(),
		"statusID", status.StatusID())
	return b, nil
}

func (s *Service) Cancel(ctx context.Context, id uint, cmd CancelBookingCommand) (*booking.Booking, error) {
	return s.UpdateStatus(ctx, id, UpdateStatusCommand{
		StatusID:   bvo.StatusIDCanceled,
		CanceledBy: cmd.CanceledBy,
		Reason:     cmd.Reason,
	})
}

func (s *Service) Get(ctx context.Context, id uint) (*booking.Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByBookingNo(ctx context.Context, bookingNo string) ([]*booking.Booking, error) {
	bookings, err := s.repo.GetByBookingNo(ctx, bookingNo)
	if err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		return nil, errors.NewNotFoundError("no bookings found", bookingNo)
	}
	return bookings, nil
}

func (s *Service) List(ctx context.Context) ([]*booking.Booking, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByHotel(ctx context.Context, hotelID uint) ([]*booking.Booking, error) {
	return s.repo.ListByHotelID(ctx, hotelID)
}

func (s *Service) ListByUser(ctx context.Context, userID uint) ([]*booking.Booking, error) {
	return s.repo.ListByUserID(ctx, userID)
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Errorw("failed to delete booking", "bookingID", id, "error", err)
		return errors.NewInternalError("failed to delete booking")
	}
	return nil
}
