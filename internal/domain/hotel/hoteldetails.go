package hotel

import (
	"fmt"
	"time"

	"github.com/anisurarzu/FTB-Server-Demo/internal/shared/biztime"
)

// CategoryImage is an uploaded image attached to a room category.
type CategoryImage struct {
	URL  string `json:"url"`
	Name string `json:"name,omitempty"`
	Size int64  `json:"size,omitempty"`
	Type string `json:"type,omitempty"`
}

// PriceRange is a seasonal price window. Start and End bound the window
// inclusively.
type PriceRange struct {
	Start           time.Time `json:"start"`
	End             time.Time `json:"end"`
	Price           float64   `json:"price"`
	DiscountPercent float64   `json:"discountPercent"`
	Taxes           float64   `json:"taxes"`
}

// NearbyPlace is a point of interest near the hotel.
type NearbyPlace struct {
	Name     string `json:"name"`
	Distance string `json:"distance"`
}

// Category is a bookable room category within a hotel. Categories are
// embedded in the details document and referenced elsewhere by name.
type Category struct {
	CategoryName    string          `json:"categoryName"`
	CategoryDetails string          `json:"categoryDetails,omitempty"`
	AdultCount      int             `json:"adultCount"`
	ChildCount      int             `json:"childCount"`
	Amenities       []string        `json:"amenities"`
	Images          []CategoryImage `json:"images"`
	PriceRanges     []PriceRange    `json:"priceRanges"`
}

// HotelDetails is the per-hotel content page: room categories, nearby
// places and house policies. Exactly one details record exists per hotel.
type HotelDetails struct {
	id         uint
	hotelID    uint
	name       string
	categories []Category
	whatsNearby []NearbyPlace
	policies   []string
	createdAt  time.Time
	updatedAt  time.Time
}

func NewHotelDetails(hotelID uint, name string, categories []Category, whatsNearby []NearbyPlace, policies []string) (*HotelDetails, error) {
	if hotelID == 0 {
		return nil, fmt.Errorf("hotel ID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("hotel name is required")
	}
	if len(categories) == 0 {
		return nil, fmt.Errorf("at least one category is required")
	}
	for _, c := range categories {
		if c.CategoryName == "" {
			return nil, fmt.Errorf("category name is required")
		}
	}

	now := biztime.NowUTC()
	return &HotelDetails{
		hotelID:     hotelID,
		name:        name,
		categories:  categories,
		whatsNearby: whatsNearby,
		policies:    policies,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func (d *HotelDetails) UpdateContent(name string, categories []Category, whatsNearby []NearbyPlace, policies []string) error {
	if name == "" {
		return fmt.Errorf("hotel name is required")
	}
	if len(categories) == 0 {
		return fmt.Errorf("at least one category is required")
	}
	d.name = name
	d.categories = categories
	d.whatsNearby = whatsNearby
	d.policies = policies
	d.updatedAt = biztime.NowUTC()
	return nil
}

// FindCategory returns the category with the given name, nil when absent.
func (d *HotelDetails) FindCategory(name string) *Category {
	for i := range d.categories {
		if d.categories[i].CategoryName == name {
			return &d.categories[i]
		}
	}
	return nil
}

func (d *HotelDetails) ID() uint                   { return d.id }
func (d *HotelDetails) HotelID() uint              { return d.hotelID }
func (d *HotelDetails) Name() string               { return d.name }
func (d *HotelDetails) Categories() []Category     { return d.categories }
func (d *HotelDetails) WhatsNearby() []NearbyPlace { return d.whatsNearby }
func (d *HotelDetails) Policies() []string         { return d.policies }
func (d *HotelDetails) CreatedAt() time.Time       { return d.createdAt }
func (d *HotelDetails) UpdatedAt() time.Time       { return d.updatedAt }

func (d *HotelDetails) SetID(id uint) {
	d.id = id
}

type HotelDetailsReconstructParams struct {
	ID          uint
	HotelID     uint
	Name        string
	Categories  []Category
	WhatsNearby []NearbyPlace
	Policies    []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func ReconstructHotelDetails(params HotelDetailsReconstructParams) *HotelDetails {
	return &HotelDetails{
		id:          params.ID,
		hotelID:     params.HotelID,
		name:        params.Name,
		categories:  params.Categories,
		whatsNearby: params.WhatsNearby,
		policies:    params.Policies,
		createdAt:   params.CreatedAt,
		updatedAt:   params.UpdatedAt,
	}
}
