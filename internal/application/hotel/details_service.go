package hotel

import (
	"context"

	"github.com/anisurarzu/FTB-Server-Demo/internal/domain/hotel"
	"github.com/anisurarzu/FTB-Server-Demo/internal/shared/errors"
	"github.com/anisurarzu/FTB-Server-Demo/internal/shared/logger"
)

type CreateHotelDetailsCommand struct {
	HotelID     uint                `json:"hotelId" binding:"required"`
	Name        string              `json:"name" binding:"required"`
	Categories  []hotel.Category    `json:"categories" binding:"required,min=1"`
	WhatsNearby []hotel.NearbyPlace `json:"whatsNearby"`
	Policies    []string            `json:"policies"`
}

type UpdateHotelDetailsCommand struct {
	Name        string              `json:"name" binding:"required"`
	Categories  []hotel.Category    `json:"categories" binding:"required,min=1"`
	WhatsNearby []hotel.NearbyPlace `json:"whatsNearby"`
	Policies    []string            `json:"policies"`
}

// DetailsService manages the per-hotel content pages.
type DetailsService struct {
	repo      hotel.DetailsRepository
	hotelRepo hotel.Repository
	logger    logger.Interface
}

func NewDetailsService(repo hotel.DetailsRepository, hotelRepo hotel.Repository, log logger.Interface) *DetailsService {
	return &DetailsService{repo: repo, hotelRepo: hotelRepo, logger: log}
}

func (s *DetailsService) Create(ctx context.Context, cmd CreateHotelDetailsCommand) (*hotel.HotelDetails, error) {
	if _, err := s.hotelRepo.GetByID(ctx, cmd.HotelID); err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError("hotel not found")
		}
		return nil, err
	}

	if existing, err := s.repo.GetByHotelID(ctx, cmd.HotelID); err == nil && existing != nil {
		return nil, errors.NewConflictError("details already exist for this hotel")
	} else if err != nil && !errors.IsNotFoundError(err) {
		return nil, err
	}

	details, err := hotel.NewHotelDetails(cmd.HotelID, cmd.Name, cmd.Categories, cmd.WhatsNearby, cmd.Policies)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.repo.Create(ctx, details); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("details already exist for this hotel")
		}
		s.logger.Errorw("failed to create hotel details", "hotelID", cmd.HotelID, "error", err)
		return nil, errors.NewInternalError("failed to create hotel details")
	}

	s.logger.Infow("hotel details created", "hotelID", cmd.HotelID, "categories", len(cmd.Categories))
	return details, nil
}

func (s *DetailsService) Update(ctx context.Context, id uint, cmd UpdateHotelDetailsCommand) (*hotel.HotelDetails, error) {
	details, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := details.UpdateContent(cmd.Name, cmd.Categories, cmd.WhatsNearby, cmd.Policies); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.repo.Update(ctx, details); err != nil {
		s.logger.Errorw("failed to update hotel details", "detailsID", id, "error", err)
		return nil, errors.NewInternalError("failed to update hotel details")
	}
	return details, nil
}

func (s *DetailsService) Get(ctx context.Context, id uint) (*hotel.HotelDetails, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *DetailsService) GetByHotelID(ctx context.Context, hotelID uint) (*hotel.HotelDetails, error) {
	return s.repo.GetByHotelID(ctx, hotelID)
}

func (s *DetailsService) List(ctx context.Context) ([]*hotel.HotelDetails, error) {
	return s.repo.List(ctx)
}

// Categories returns the room categories of one hotel.
func (s *DetailsService) Categories(ctx context.Context, hotelID uint) ([]hotel.Category, error) {
	details, err := s.repo.GetByHotelID(ctx, hotelID)
	if err != nil {
		return nil, err
	}
	return details.Categories(), nil
}

func (s *DetailsService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Errorw("failed to delete hotel details", "detailsID", id, "error", err)
		return errors.NewInternalError("failed to delete hotel details")
	}
	return nil
}
