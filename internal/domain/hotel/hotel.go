package hotel

import (
	"fmt"
	"time"

	"github.com/anisurarzu/FTB-Server-Demo/internal/shared/biztime"
)

// Hotel is the public catalog summary shown in listings and search.
// PublicID is the stable numeric identifier exposed to clients; it is
// assigned sequentially and survives re-imports of the catalog.
type Hotel struct {
	id         uint
	publicID   int
	name       string
	location   string
	amenities  []string
	price      float64
	discount   string
	rating     float64
	image      string
	topSelling bool
	createdAt  time.Time
	updatedAt  time.Time
}

func NewHotel(publicID int, name, location string, amenities []string, price float64, discount string, rating float64, image string, topSelling bool) (*Hotel, error) {
	if publicID <= 0 {
		return nil, fmt.Errorf("hotel public ID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("hotel name is required")
	}
	if location == "" {
		return nil, fmt.Errorf("hotel location is required")
	}
	if price < 0 {
		return nil, fmt.Errorf("price cannot be negative")
	}
	if rating < 0 || rating > 5 {
		return nil, fmt.Errorf("rating must be between 0 and 5")
	}

	now := biztime.NowUTC()
	return &Hotel{
		publicID:   publicID,
		name:       name,
		location:   location,
		amenities:  amenities,
		price:      price,
		discount:   discount,
		rating:     rating,
		image:      image,
		topSelling: topSelling,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func (h *Hotel) UpdateDetails(name, location string, amenities []string, price float64, discount string, rating float64, image string, topSelling bool) error {
	if name == "" {
		return fmt.Errorf("hotel name is required")
	}
	if location == "" {
		return fmt.Errorf("hotel location is required")
	}
	if price < 0 {
		return fmt.Errorf("price cannot be negative")
	}
	if rating < 0 || rating > 5 {
		return fmt.Errorf("rating must be between 0 and 5")
	}
	h.name = name
	h.location = location
	h.amenities = amenities
	h.price = price
	h.discount = discount
	h.rating = rating
	h.image = image
	h.topSelling = topSelling
	h.updatedAt = biztime.NowUTC()
	return nil
}

func (h *Hotel) MarkTopSelling(topSelling bool) {
	h.topSelling = topSelling
	h.updatedAt = biztime.NowUTC()
}

func (h *Hotel) ID() uint            { return h.id }
func (h *Hotel) PublicID() int       { return h.publicID }
func (h *Hotel) Name() string        { return h.name }
func (h *Hotel) Location() string    { return h.location }
func (h *Hotel) Amenities() []string { return h.amenities }
func (h *Hotel) Price() float64      { return h.price }
func (h *Hotel) Discount() string    { return h.discount }
func (h *Hotel) Rating() float64     { return h.rating }
func (h *Hotel) Image() string       { return h.image }
func (h *Hotel) TopSelling() bool    { return h.topSelling }
func (h *Hotel) CreatedAt() time.Time { return h.createdAt }
func (h *Hotel) UpdatedAt() time.Time { return h.updatedAt }

// SetID sets the hotel ID after persistence (used by repository after Create)
func (h *Hotel) SetID(id uint) {
	h.id = id
}

type HotelReconstructParams struct {
	ID         uint
	PublicID   int
	Name       string
	Location   string
	Amenities  []string
	Price      float64
	Discount   string
	Rating     float64
	Image      string
	TopSelling bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func ReconstructHotel(params HotelReconstructParams) *Hotel {
	return &Hotel{
		id:         params.ID,
		publicID:   params.PublicID,
		name:       params.Name,
		location:   params.Location,
		amenities:  params.Amenities,
		price:      params.Price,
		discount:   params.Discount,
		rating:     params.Rating,
		image:      params.Image,
		topSelling: params.TopSelling,
		createdAt:  params.CreatedAt,
		updatedAt:  params.UpdatedAt,
	}
}
