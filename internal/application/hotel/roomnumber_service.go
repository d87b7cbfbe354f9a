package hotel

import (
	"context"

	"github.com/anisurarzu/FTB-Server-Demo/internal/domain/hotel"
	"github.com/anisurarzu/FTB-Server-Demo/internal/shared/errors"
	"github.com/anisurarzu/FTB-Server-Demo/internal/shared/logger"
)

type CreateRoomNumberCommand struct {
	HotelID      uint   `json:"hotelId" binding:"required"`
	CategoryName string `json:"categoryName" binding:"required"`
	RoomNumber   string `json:"roomNumber" binding:"required"`
	RoomDetails  string `json:"roomDetails"`
	RoomImage    string `json:"roomImage"`
}

type UpdateRoomNumberCommand struct {
	RoomNumber  string `json:"roomNumber" binding:"required"`
	RoomDetails string `json:"roomDetails"`
	RoomImage   string `json:"roomImage"`
	IsOccupied  *bool  `json:"isOccupied"`
}

// RoomNumberService manages physical rooms. Creation verifies the hotel
// and its category exist before adding a room.
type RoomNumberService struct {
	repo        hotel.RoomNumberRepository
	detailsRepo hotel.DetailsRepository
	logger      logger.Interface
}

func NewRoomNumberService(repo hotel.RoomNumberRepository, detailsRepo hotel.DetailsRepository, log logger.Interface) *RoomNumberService {
	return &RoomNumberService{repo: repo, detailsRepo: detailsRepo, logger: log}
}

func (s *RoomNumberService) Create(ctx context.Context, cmd CreateRoomNumberCommand) (*hotel.RoomNumber, error) {
	details, err := s.detailsRepo.GetByHotelID(ctx, cmd.HotelID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError("hotel not found")
		}
		return nil, err
	}
	if details.FindCategory(cmd.CategoryName) == nil {
		return nil, errors.NewNotFoundError("category not found", cmd.CategoryName)
	}

	exists, err := s.repo.Exists(ctx, cmd.HotelID, cmd.CategoryName, cmd.RoomNumber)
	if err != nil {
		return nil, errors.NewInternalError("failed to check room number")
	}
	if exists {
		return nil, errors.NewConflictError("room number already exists in this category", cmd.RoomNumber)
	}

	room, err := hotel.NewRoomNumber(cmd.HotelID, details.Name(), cmd.CategoryName, cmd.RoomNumber, cmd.RoomDetails, cmd.RoomImage)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.repo.Create(ctx, room); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("room number already exists in this category", cmd.RoomNumber)
		}
		s.logger.Errorw("failed to create room number", "hotelID", cmd.HotelID, "roomNumber", cmd.RoomNumber, "error", err)
		return nil, errors.NewInternalError("failed to create room number")
	}

	return room, nil
}

func (s *RoomNumberService) Update(ctx context.Context, id uint, cmd UpdateRoomNumberCommand) (*hotel.RoomNumber, error) {
	room, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if cmd.RoomNumber != room.RoomNumber() {
		exists, err := s.repo.Exists(ctx, room.HotelID(), room.CategoryName(), cmd.RoomNumber)
		if err != nil {
			return nil, errors.NewInternalError("failed to check room number")
		}
		if exists {
			return nil, errors.NewConflictError("room number already exists in this category", cmd.RoomNumber)
		}
	}

	if err := room.UpdateDetails(cmd.RoomNumber, cmd.RoomDetails, cmd.RoomImage); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if cmd.IsOccupied != nil {
		room.SetOccupied(*cmd.IsOccupied)
	}

	if err := s.repo.Update(ctx, room); err != nil {
		s.logger.Errorw("failed to update room number", "roomID", id, "error", err)
		return nil, errors.NewInternalError("failed to update room number")
	}
	return room, nil
}

func (s *RoomNumberService) Get(ctx context.Context, id uint) (*hotel.RoomNumber, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *RoomNumberService) List(ctx context.Context) ([]*hotel.RoomNumber, error) {
	return s.repo.List(ctx)
}

func (s *RoomNumberService) ListByHotel(ctx context.Context, hotelID uint) ([]*hotel.RoomNumber, error) {
	return s.repo.ListByHotelID(ctx, hotelID)
}

func (s *RoomNumberService) ListByCategory(ctx context.Context, categoryName string) ([]*hotel.RoomNumber, error) {
	return s.repo.ListByCategory(ctx, categoryName)
}

func (s *RoomNumberService) ListByHotelAndCategory(ctx context.Context, hotelID uint, categoryName string) ([]*hotel.RoomNumber, error) {
	return s.repo.ListByHotelAndCategory(ctx, hotelID, categoryName)
}

func (s *RoomNumberService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Errorw("failed to delete room number", "roomID", id, "error", err)
		return errors.NewInternalError("failed to delete room number")
	}
	return nil
}
