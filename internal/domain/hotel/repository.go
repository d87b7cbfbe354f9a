package hotel

import "context"

// SearchCriteria narrows a hotel listing. Zero values mean "no filter".
type SearchCriteria struct {
	Name       string
	Location   string
	MinPrice   *float64
	MaxPrice   *float64
	MinRating  *float64
	TopSelling *bool
}

type Repository interface {
	Create(ctx context.Context, hotel *Hotel) error
	Update(ctx context.Context, hotel *Hotel) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Hotel, error)
	GetByPublicID(ctx context.Context, publicID int) (*Hotel, error)
	List(ctx context.Context) ([]*Hotel, error)
	Search(ctx context.Context, criteria SearchCriteria) ([]*Hotel, error)
	ListTopSelling(ctx context.Context) ([]*Hotel, error)
	// MaxPublicID returns the highest public ID assigned so far, 0 when
	// the catalog is empty.
	MaxPublicID(ctx context.Context) (int, error)
}

type DetailsRepository interface {
	Create(ctx context.Context, details *HotelDetails) error
	Update(ctx context.Context, details *HotelDetails) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*HotelDetails, error)
	GetByHotelID(ctx context.Context, hotelID uint) (*HotelDetails, error)
	List(ctx context.Context) ([]*HotelDetails, error)
}

type RoomNumberRepository interface {
	Create(ctx context.Context, room *RoomNumber) error
	Update(ctx context.Context, room *RoomNumber) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*RoomNumber, error)
	List(ctx context.Context) ([]*RoomNumber, error)
	ListByHotelID(ctx context.Context, hotelID uint) ([]*RoomNumber, error)
	ListByCategory(ctx context.Context, categoryName string) ([]*RoomNumber, error)
	ListByHotelAndCategory(ctx context.Context, hotelID uint, categoryName string) ([]*RoomNumber, error)
	Exists(ctx context.Context, hotelID uint, categoryName, roomNumber string) (bool, error)
}
