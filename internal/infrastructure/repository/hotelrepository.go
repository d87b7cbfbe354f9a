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

type HotelRepository struct {
	db     *gorm.DB
	mapper *mappers.HotelMapper
}

var _ hotel.Repository = (*HotelRepository)(nil)

func NewHotelRepository(database *gorm.DB) *HotelRepository {
	return &HotelRepository{
		db:     database,
		mapper: mappers.NewHotelMapper(),
	}
}

func (r *HotelRepository) Create(ctx context.Context, h *hotel.Hotel) error {
	model, err := r.mapper.ToModel(h)
	if err != nil {
		return err
	}
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return err
	}
	h.SetID(model.ID)
	return nil
}

func (r *HotelRepository) Update(ctx context.Context, h *hotel.Hotel) error {
	model, err := r.mapper.ToModel(h)
	if err != nil {
		return err
	}
	return db.GetTxFromContext(ctx, r.db).Save(model).Error
}

func (r *HotelRepository) Delete(ctx context.Context, id uint) error {
	return db.GetTxFromContext(ctx, r.db).Delete(&models.HotelModel{}, id).Error
}

func (r *HotelRepository) GetByID(ctx context.Context, id uint) (*hotel.Hotel, error) {
	var model models.HotelModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("hotel not found")
		}
		return nil, err
	}
	return r.mapper.ToDomain(&model)
}

func (r *HotelRepository) GetByPublicID(ctx context.Context, publicID int) (*hotel.Hotel, error) {
	var model models.HotelModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("public_id = ?", publicID).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("hotel not found")
		}
		return nil, err
	}
	return r.mapper.ToDomain(&model)
}

func (r *HotelRepository) List(ctx context.Context) ([]*hotel.Hotel, error) {
	var rows []models.HotelModel
	if err := db.GetTxFromContext(ctx, r.db).Order("public_id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return r.toDomainList(rows)
}

func (r *HotelRepository) Search(ctx context.Context, criteria hotel.SearchCriteria) ([]*hotel.Hotel, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.HotelModel{})

	if criteria.Name != "" {
		query = query.Where("name LIKE ?", "%"+criteria.Name+"%")
	}
	if criteria.Location != "" {
		query = query.Where("location LIKE ?", "%"+criteria.Location+"%")
	}
	if criteria.MinPrice != nil {
		query = query.Where("price >= ?", *criteria.MinPrice)
	}
	if criteria.MaxPrice != nil {
		query = query.Where("price <= ?", *criteria.MaxPrice)
	}
	if criteria.MinRating != nil {
		query = query.Where("rating >= ?", *criteria.MinRating)
	}
	if criteria.TopSelling != nil {
		query = query.Where("top_selling = ?", *criteria.TopSelling)
	}

	var rows []models.HotelModel
	if err := query.Order("public_id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return r.toDomainList(rows)
}

func (r *HotelRepository) ListTopSelling(ctx context.Context) ([]*hotel.Hotel, error) {
	var rows []models.HotelModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("top_selling = ?", true).
		Order("rating DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return r.toDomainList(rows)
}

func (r *HotelRepository) MaxPublicID(ctx context.Context) (int, error) {
	var maxID *int
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.HotelModel{}).
		Select("MAX(public_id)").
		Scan(&maxID).Error
	if err != nil {
		return 0, err
	}
	if maxID == nil {
		return 0, nil
	}
	return *maxID, nil
}

func (r *HotelRepository) toDomainList(rows []models.HotelModel) ([]*hotel.Hotel, error) {
	hotels := make([]*hotel.Hotel, 0, len(rows))
	for i := range rows {
		h, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		hotels = append(hotels, h)
	}
	return hotels, nil
}
