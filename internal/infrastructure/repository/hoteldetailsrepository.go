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

type HotelDetailsRepository struct {
	db     *gorm.DB
	mapper *mappers.HotelDetailsMapper
}

var _ hotel.DetailsRepository = (*HotelDetailsRepository)(nil)

func NewHotelDetailsRepository(database *gorm.DB) *HotelDetailsRepository {
	return &HotelDetailsRepository{
		db:     database,
		mapper: mappers.NewHotelDetailsMapper(),
	}
}

func (r *HotelDetailsRepository) Create(ctx context.Context, details *hotel.HotelDetails) error {
	model, err := r.mapper.ToModel(details)
	if err != nil {
		return err
	}
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return err
	}
	details.SetID(model.ID)
	return nil
}

func (r *HotelDetailsRepository) Update(ctx context.Context, details *hotel.HotelDetails) error {
	model, err := r.mapper.ToModel(details)
	if err != nil {
		return err
	}
	return db.GetTxFromContext(ctx, r.db).Save(model).Error
}

func (r *HotelDetailsRepository) Delete(ctx context.Context, id uint) error {
	return db.GetTxFromContext(ctx, r.db).Delete(&models.HotelDetailsModel{}, id).Error
}

func (r *HotelDetailsRepository) GetByID(ctx context.Context, id uint) (*hotel.HotelDetails, error) {
	var model models.HotelDetailsModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("hotel details not found")
		}
		return nil, err
	}
	return r.mapper.ToDomain(&model)
}

func (r *HotelDetailsRepository) GetByHotelID(ctx context.Context, hotelID uint) (*hotel.HotelDetails, error) {
	var model models.HotelDetailsModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("hotel_id = ?", hotelID).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("hotel details not found")
		}
		return nil, err
	}
	return r.mapper.ToDomain(&model)
}

func (r *HotelDetailsRepository) List(ctx context.Context) ([]*hotel.HotelDetails, error) {
	var rows []models.HotelDetailsModel
	if err := db.GetTxFromContext(ctx, r.db).Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]*hotel.HotelDetails, 0, len(rows))
	for i := range rows {
		d, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}
