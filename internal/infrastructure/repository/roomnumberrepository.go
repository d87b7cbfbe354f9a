package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/anisurarzu/FTB-Server-Demo/internal/domain/hotel"
	"github.com/anisurarzu/FTB-Server-Demo/internal/infrastructure/persistence/mappers"
	"github.com/anisurarzu/FTB-Server-Demo/internal/infrastructure/persistence/models"
	"github.com/anisurarzu/FTB-Server-Demo/internal/shared/db"
	"github.com/anisurarzu/FTB-Server-Demo/internal/shared/errors"
)

type RoomNumberRepository struct {
	db     *gorm.DB
	mapper *mappers.RoomNumberMapper
}

var _ hotel.RoomNumberRepository = (*RoomNumberRepository)(nil)

func NewRoomNumberRepository(database *gorm.DB) *RoomNumberRepository {
	return &RoomNumberRepository{
		db:     database,
		mapper: mappers.NewRoomNumberMapper(),
	}
}

func (r *RoomNumberRepository) Create(ctx context.Context, room *hotel.RoomNumber) error {
	model := r.mapper.ToModel(room)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return err
	}
	room.SetID(model.ID)
	return nil
}

func (r *RoomNumberRepository) Update(ctx context.Context, room *hotel.RoomNumber) error {
	model := r.mapper.ToModel(room)
	return db.GetTxFromContext(ctx, r.db).Save(model).Error
}

func (r *RoomNumberRepository) Delete(ctx context.Context, id uint) error {
	return db.GetTxFromContext(ctx, r.db).Delete(&models.RoomNumberModel{}, id).Error
}

func (r *RoomNumberRepository) GetByID(ctx context.Context, id uint) (*hotel.RoomNumber, error) {
	var model models.RoomNumberModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("room number not found")
		}
		return nil, err
	}
	return r.mapper.ToDomain(&model), nil
}

func (r *RoomNumberRepository) List(ctx context.Context) ([]*hotel.RoomNumber, error) {
	var rows []models.RoomNumberModel
	if err := db.GetTxFromContext(ctx, r.db).Find(&rows).Error; err != nil {
		return nil, err
	}
	return r.toDomainList(rows), nil
}

func (r *RoomNumberRepository) ListByHotelID(ctx context.Context, hotelID uint) ([]*hotel.RoomNumber, error) {
	var rows []models.RoomNumberModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("hotel_id = ?", hotelID).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return r.toDomainList(rows), nil
}

func (r *RoomNumberRepository) ListByCategory(ctx context.Context, categoryName string) ([]*hotel.RoomNumber, error) {
	var rows []models.RoomNumberModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("category_name = ?", categoryName).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return r.toDomainList(rows), nil
}

func (r *RoomNumberRepository) ListByHotelAndCategory(ctx context.Context, hotelID uint, categoryName string) ([]*hotel.RoomNumber, error) {
	var rows []models.RoomNumberModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("hotel_id = ? AND category_name = ?", hotelID, categoryName).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return r.toDomainList(rows), nil
}

func (r *RoomNumberRepository) Exists(ctx context.Context, hotelID uint, categoryName, roomNumber string) (bool, error) {
	var count int64
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.RoomNumberModel{}).
		Where("hotel_id = ? AND category_name = ? AND room_number = ?", hotelID, categoryName, roomNumber).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *RoomNumberRepository) toDomainList(rows []models.RoomNumberModel) []*hotel.RoomNumber {
	rooms := make([]*hotel.RoomNumber, 0, len(rows))
	for i := range rows {
		rooms = append(rooms, r.mapper.ToDomain(&rows[i]))
	}
	return rooms
}
