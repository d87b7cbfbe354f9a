package hotel

import (
	"context"

	"github.com/anisurarzu/FTB-Server-Demo/internal/domain/hotel"
	"github.com/anisurarzu/FTB-Server-Demo/internal/shared/errors"
	"github.com/anisurarzu/FTB-Server-Demo/internal/shared/logger"
)

type CreateHotelCommand struct {
	Name       string   `json:"name" binding:"required"`
	Location   string   `json:"location" binding:"required"`
	Amenities  []string `json:"amenities"`
	Price      float64  `json:"price" binding:"required"`
	Discount   string   `json:"discount"`
	Rating     float64  `json:"rating" binding:"min=0,max=5"`
	Image      string   `json:"image"`
	TopSelling bool     `json:"topSelling"`
}

type UpdateHotelCommand struct {
	Name       string   `json:"name" binding:"required"`
	Location   string   `json:"location" binding:"required"`
	Amenities  []string `json:"amenities"`
	Price      float64  `json:"price" binding:"required"`
	Discount   string   `json:"discount"`
	Rating     float64  `json:"rating" binding:"min=0,max=5"`
	Image      string   `json:"image"`
	TopSelling bool     `json:"topSelling"`
}

type SearchHotelsQuery struct {
	Name       string   `form:"name"`
	Location   string   `form:"location"`
	MinPrice   *float64 `form:"minPrice"`
	MaxPrice   *float64 `form:"maxPrice"`
	MinRating  *float64 `form:"minRating"`
	TopSelling *bool    `form:"topSelling"`
}

// Service manages the public hotel catalog.
type Service struct {
	repo   hotel.Repository
	logger logger.Interface
}

func NewService(repo hotel.Repository, log logger.Interface) *Service {
	return &Service{repo: repo, logger: log}
}

func (s *Service) Create(ctx context.Context, cmd CreateHotelCommand) (*hotel.Hotel, error) {
	maxID, err := s.repo.MaxPublicID(ctx)
	if err != nil {
		return nil, errors.NewInternalError("failed to allocate hotel ID")
	}

	h, err := hotel.NewHotel(maxID+1, cmd.Name, cmd.Location, cmd.Amenities, cmd.Price, cmd.Discount, cmd.Rating, cmd.Image, cmd.TopSelling)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.repo.Create(ctx, h); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("hotel already exists", cmd.Name)
		}
		s.logger.Errorw("failed to create hotel", "name", cmd.Name, "error", err)
		return nil, errors.NewInternalError("failed to create hotel")
	}

	s.logger.Infow("hotel created", "hotelID", h.ID(), "publicID", h.PublicID(), "name", h.Name())
	return h, nil
}

func (s *Service) Update(ctx context.Context, id uint, cmd UpdateHotelCommand) (*hotel.Hotel, error) {
	h, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := h.UpdateDetails(cmd.Name, cmd.Location, cmd.Amenities, cmd.Price, cmd.Discount, cmd.Rating, cmd.Image, cmd.TopSelling); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.repo.Update(ctx, h); err != nil {
		s.logger.Errorw("failed to update hotel", "hotelID", id, "error", err)
		return nil, errors.NewInternalError("failed to update hotel")
	}
	return h, nil
}

func (s *Service) Get(ctx context.Context, id uint) (*hotel.Hotel, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*hotel.Hotel, error) {
	return s.repo.List(ctx)
}

func (s *Service) Search(ctx context.Context, query SearchHotelsQuery) ([]*hotel.Hotel, error) {
	return s.repo.Search(ctx, hotel.SearchCriteria{
		Name:       query.Name,
		Location:   query.Location,
		MinPrice:   query.MinPrice,
		MaxPrice:   query.MaxPrice,
		MinRating:  query.MinRating,
		TopSelling: query.TopSelling,
	})
}

func (s *Service) ListTopSelling(ctx context.Context) ([]*hotel.Hotel, error) {
	return s.repo.ListTopSelling(ctx)
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Errorw("failed to delete hotel", "hotelID", id, "error", err)
		return errors.NewInternalError("failed to delete hotel")
	}
	return nil
}
