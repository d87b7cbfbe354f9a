package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/anisurarzu/FTB-Server-Demo/internal/domain/booking"
	"github.com/anisurarzu/FTB-Server-Demo/internal/infrastructure/persistence/mappers"
	"github.com/anisurarzu/FTB-Server-Demo/internal/infrastructure/persistence/models"
	"github.com/anisurarzu/FTB-Server-Demo/internal/shared/db"
	"github.com/anisurarzu/FTB-Server-Demo/internal/shared/errors"
)

type BookingRepository struct {
	db     *gorm.DB
	mapper *mappers.BookingMapper
}

var _ booking.Repository = (*BookingRepository)(nil)

func NewBookingRepository(database *gorm.DB) *BookingRepository {
	return &BookingRepository{
		db:     database,
		mapper: mappers.NewBookingMapper(),
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	model := r.mapper.ToModel(b)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return err
	}
	b.SetID(model.ID)
	return nil
}

func (r *BookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	model := r.mapper.ToModel(b)
	return db.GetTxFromContext(ctx, r.db).Save(model).Error
}

func (r *BookingRepository) Delete(ctx context.Context, id uint) error {
	return db.GetTxFromContext(ctx, r.db).Delete(&models.BookingModel{}, id).Error
}

func (r *BookingRepository) GetByID(ctx context.Context, id uint) (*booking.Booking, error) {
	var model models.BookingModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("booking not found")
		}
		return nil, err
	}
	return r.mapper.ToDomain(&model), nil
}

func (r *BookingRepository) GetByBookingNo(ctx context.Context, bookingNo string) ([]*booking.Booking, error) {
	var rows []models.BookingModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("booking_no = ?", bookingNo).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return r.toDomainList(rows), nil
}

func (r *BookingRepository) List(ctx context.Context) ([]*booking.Booking, error) {
	var rows []models.BookingModel
	if err := db.GetTxFromContext(ctx, r.db).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return r.toDomainList(rows), nil
}

func (r *BookingRepository) ListByHotelID(ctx context.Context, hotelID uint) ([]*booking.Booking, error) {
	var rows []models.BookingModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("hotel_id = ?", hotelID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return r.toDomainList(rows), nil
}

func (r *BookingRepository) ListByUserID(ctx context.Context, bookedByID uint) ([]*booking.Booking, error) {
	var rows []models.BookingModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("booked_by_id = ?", bookedByID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return r.toDomainList(rows), nil
}

func (r *BookingRepository) GetLastSerialNo(ctx context.Context) (int, error) {
	var maxSerial *int
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.BookingModel{}).
		Select("MAX(serial_no)").
		Scan(&maxSerial).Error
	if err != nil {
		return 0, err
	}
	if maxSerial == nil {
		return 0, nil
	}
	return *maxSerial, nil
}

func (r *BookingRepository) ListBookingNosByPrefix(ctx context.Context, prefix string) ([]string, error) {
	var nos []string
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.BookingModel{}).
		Where("booking_no LIKE ?", prefix+"%").
		Pluck("booking_no", &nos).Error
	if err != nil {
		return nil, err
	}
	return nos, nil
}

func (r *BookingRepository) BookingNoExists(ctx context.Context, bookingNo string) (bool, error) {
	var count int64
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.BookingModel{}).
		Where("booking_no = ?", bookingNo).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *BookingRepository) toDomainList(rows []models.BookingModel) []*booking.Booking {
	bookings := make([]*booking.Booking, 0, len(rows))
	for i := range rows {
		bookings = append(bookings, r.mapper.ToDomain(&rows[i]))
	}
	return bookings
}
