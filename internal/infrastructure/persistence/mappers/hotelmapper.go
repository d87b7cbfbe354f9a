package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/anisurarzu/FTB-Server-Demo/internal/domain/hotel"
	"github.com/anisurarzu/FTB-Server-Demo/internal/infrastructure/persistence/models"
)

func marshalJSON(v interface{}) (datatypes.JSON, error) {
	if v == nil {
		return nil, nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON column: %w", err)
	}
	return datatypes.JSON(raw), nil
}

type HotelMapper struct{}

func NewHotelMapper() *HotelMapper {
	return &HotelMapper{}
}

func (m *HotelMapper) ToModel(h *hotel.Hotel) (*models.HotelModel, error) {
	amenities, err := marshalJSON(h.Amenities())
	if err != nil {
		return nil, err
	}
	return &models.HotelModel{
		ID:         h.ID(),
		PublicID:   h.PublicID(),
		Name:       h.Name(),
		Location:   h.Location(),
		Amenities:  amenities,
		Price:      h.Price(),
		Discount:   h.Discount(),
		Rating:     h.Rating(),
		Image:      h.Image(),
		TopSelling: h.TopSelling(),
		CreatedAt:  h.CreatedAt(),
		UpdatedAt:  h.UpdatedAt(),
	}, nil
}

func (m *HotelMapper) ToDomain(model *models.HotelModel) (*hotel.Hotel, error) {
	var amenities []string
	if len(model.Amenities) > 0 {
		if err := json.Unmarshal(model.Amenities, &amenities); err != nil {
			return nil, fmt.Errorf("failed to unmarshal amenities: %w", err)
		}
	}
	return hotel.ReconstructHotel(hotel.HotelReconstructParams{
		ID:         model.ID,
		PublicID:   model.PublicID,
		Name:       model.Name,
		Location:   model.Location,
		Amenities:  amenities,
		Price:      model.Price,
		Discount:   model.Discount,
		Rating:     model.Rating,
		Image:      model.Image,
		TopSelling: model.TopSelling,
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
	}), nil
}

type HotelDetailsMapper struct{}

func NewHotelDetailsMapper() *HotelDetailsMapper {
	return &HotelDetailsMapper{}
}

func (m *HotelDetailsMapper) ToModel(d *hotel.HotelDetails) (*models.HotelDetailsModel, error) {
	categories, err := marshalJSON(d.Categories())
	if err != nil {
		return nil, err
	}
	nearby, err := marshalJSON(d.WhatsNearby())
	if err != nil {
		return nil, err
	}
	policies, err := marshalJSON(d.Policies())
	if err != nil {
		return nil, err
	}
	return &models.HotelDetailsModel{
		ID:          d.ID(),
		HotelID:     d.HotelID(),
		Name:        d.Name(),
		Categories:  categories,
		WhatsNearby: nearby,
		Policies:    policies,
		CreatedAt:   d.CreatedAt(),
		UpdatedAt:   d.UpdatedAt(),
	}, nil
}

func (m *HotelDetailsMapper) ToDomain(model *models.HotelDetailsModel) (*hotel.HotelDetails, error) {
	var categories []hotel.Category
	if len(model.Categories) > 0 {
		if err := json.Unmarshal(model.Categories, &categories); err != nil {
			return nil, fmt.Errorf("failed to unmarshal categories: %w", err)
		}
	}
	var nearby []hotel.NearbyPlace
	if len(model.WhatsNearby) > 0 {
		if err := json.Unmarshal(model.WhatsNearby, &nearby); err != nil {
			return nil, fmt.Errorf("failed to unmarshal nearby places: %w", err)
		}
	}
	var policies []string
	if len(model.Policies) > 0 {
		if err := json.Unmarshal(model.Policies, &policies); err != nil {
			return nil, fmt.Errorf("failed to unmarshal policies: %w", err)
		}
	}
	return hotel.ReconstructHotelDetails(hotel.HotelDetailsReconstructParams{
		ID:          model.ID,
		HotelID:     model.HotelID,
		Name:        model.Name,
		Categories:  categories,
		WhatsNearby: nearby,
		Policies:    policies,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}), nil
}

type RoomNumberMapper struct{}

func NewRoomNumberMapper() *RoomNumberMapper {
	return &RoomNumberMapper{}
}

func (m *RoomNumberMapper) ToModel(r *hotel.RoomNumber) *models.RoomNumberModel {
	return &models.RoomNumberModel{
		ID:           r.ID(),
		HotelID:      r.HotelID(),
		HotelName:    r.HotelName(),
		CategoryName: r.CategoryName(),
		RoomNumber:   r.RoomNumber(),
		RoomDetails:  r.RoomDetails(),
		RoomImage:    r.RoomImage(),
		IsOccupied:   r.IsOccupied(),
		CreatedAt:    r.CreatedAt(),
		UpdatedAt:    r.UpdatedAt(),
	}
}

func (m *RoomNumberMapper) ToDomain(model *models.RoomNumberModel) *hotel.RoomNumber {
	return hotel.ReconstructRoomNumber(hotel.RoomNumberReconstructParams{
		ID:           model.ID,
		HotelID:      model.HotelID,
		HotelName:    model.HotelName,
		CategoryName: model.CategoryName,
		RoomNumber:   model.RoomNumber,
		RoomDetails:  model.RoomDetails,
		RoomImage:    model.RoomImage,
		IsOccupied:   model.IsOccupied,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	})
}
