package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/anisurarzu/FTB-Server-Demo/internal/domain/booking"
	"github.com/anisurarzu/FTB-Server-Demo/internal/domain/hotel"
	"github.com/anisurarzu/FTB-Server-Demo/internal/domain/payment"
	pvo "github.com/anisurarzu/FTB-Server-Demo/internal/domain/payment/valueobjects"
	"github.com/anisurarzu/FTB-Server-Demo/internal/domain/user"
	"github.com/anisurarzu/FTB-Server-Demo/internal/infrastructure/migration"
	"github.com/anisurarzu/FTB-Server-Demo/internal/shared/errors"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, migration.Run(db))
	return db
}

func newTestPayment(t *testing.T, bookingID uint, providerPaymentID string) *payment.Payment {
	t.Helper()
	p, err := payment.NewPayment(bookingID, pvo.NewMoneyFromTaka(3000, "BDT"), pvo.PaymentMethodBkash, "Karim Ahmed", "01811223344")
	require.NoError(t, err)
	p.AttachProvider(providerPaymentID, "INV-1712345678901")
	return p
}

func TestPaymentRepositoryRoundTrip(t *testing.T) {
	repo := NewPaymentRepository(setupTestDB(t))
	ctx := context.Background()

	p := newTestPayment(t, 42, "TR0011abc")
	require.NoError(t, repo.Create(ctx, p))
	require.NotZero(t, p.ID())

	loaded, err := repo.GetByProviderPaymentID(ctx, "TR0011abc")
	require.NoError(t, err)
	assert.Equal(t, p.ID(), loaded.ID())
	assert.Equal(t, uint(42), loaded.BookingID())
	assert.Equal(t, pvo.PaymentStatusPending, loaded.Status())
	assert.Equal(t, int64(300000), loaded.Amount().AmountInPoisha())
	assert.Equal(t, "INV-1712345678901", loaded.MerchantInvoiceNumber())

	require.NoError(t, loaded.MarkAsCompleted("TRX555"))
	require.NoError(t, repo.Update(ctx, loaded))

	reloaded, err := repo.GetByID(ctx, loaded.ID())
	require.NoError(t, err)
	assert.Equal(t, pvo.PaymentStatusCompleted, reloaded.Status())
	require.NotNil(t, reloaded.TransactionID())
	assert.Equal(t, "TRX555", *reloaded.TransactionID())
	require.NotNil(t, reloaded.PaymentDate())
}

func TestPaymentRepositoryNotFound(t *testing.T) {
	repo := NewPaymentRepository(setupTestDB(t))

	_, err := repo.GetByProviderPaymentID(context.Background(), "TR-missing")
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestPaymentRepositoryListByBookingID(t *testing.T) {
	repo := NewPaymentRepository(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestPayment(t, 42, "TR1")))
	require.NoError(t, repo.Create(ctx, newTestPayment(t, 42, "TR2")))
	require.NoError(t, repo.Create(ctx, newTestPayment(t, 7, "TR3")))

	payments, err := repo.ListByBookingID(ctx, 42)
	require.NoError(t, err)
	assert.Len(t, payments, 2)
}

func newTestBooking(t *testing.T, bookingNo string, serialNo int) *booking.Booking {
	t.Helper()
	checkIn := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)
	b, err := booking.NewBooking(booking.CreateBookingParams{
		FullName:         "Karim Ahmed",
		Phone:            "01811223344",
		HotelID:          3,
		HotelName:        "Sea Pearl Resort",
		RoomCategoryName: "Deluxe Couple",
		RoomNumberID:     12,
		RoomNumberName:   "301",
		CheckInDate:      checkIn,
		CheckOutDate:     checkIn.AddDate(0, 0, 2),
		Nights:           2,
		Adults:           2,
		RoomPrice:        pvo.NewMoneyFromTaka(4500, "BDT"),
		TotalBill:        pvo.NewMoneyFromTaka(9000, "BDT"),
		AdvancePayment:   pvo.NewMoneyFromTaka(3000, "BDT"),
		BookedBy:         "reception1",
		BookedByID:       7,
	})
	require.NoError(t, err)
	b.AssignNumber(bookingNo, serialNo)
	return b
}

func TestBookingRepositoryRoundTrip(t *testing.T) {
	repo := NewBookingRepository(setupTestDB(t))
	ctx := context.Background()

	b := newTestBooking(t, "25061001", 1)
	require.NoError(t, repo.Create(ctx, b))

	loaded, err := repo.GetByID(ctx, b.ID())
	require.NoError(t, err)
	assert.Equal(t, "25061001", loaded.BookingNo())
	assert.Equal(t, int64(600000), loaded.DuePayment().AmountInPoisha())
	assert.Equal(t, 1, loaded.StatusID())

	loaded.UpdatePaymentInfo(pvo.PaymentStatusCompleted, pvo.PaymentMethodBkash, pvo.NewMoneyFromTaka(3000, "BDT"), "TRX555")
	require.NoError(t, repo.Update(ctx, loaded))

	reloaded, err := repo.GetByID(ctx, b.ID())
	require.NoError(t, err)
	assert.Equal(t, pvo.PaymentStatusCompleted, reloaded.PaymentStatus())
	assert.Equal(t, "TRX555", reloaded.TransactionID())
}

func TestBookingRepositorySerialAndPrefixQueries(t *testing.T) {
	repo := NewBookingRepository(setupTestDB(t))
	ctx := context.Background()

	last, err := repo.GetLastSerialNo(ctx)
	require.NoError(t, err)
	assert.Zero(t, last)

	require.NoError(t, repo.Create(ctx, newTestBooking(t, "25061001", 1)))
	require.NoError(t, repo.Create(ctx, newTestBooking(t, "25061002", 2)))
	require.NoError(t, repo.Create(ctx, newTestBooking(t, "25061101", 3)))

	last, err = repo.GetLastSerialNo(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, last)

	nos, err := repo.ListBookingNosByPrefix(ctx, "250610")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"25061001", "25061002"}, nos)

	exists, err := repo.BookingNoExists(ctx, "25061101")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.BookingNoExists(ctx, "25061199")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestBookingRepositoryListByHotelAndUser(t *testing.T) {
	repo := NewBookingRepository(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestBooking(t, "25061001", 1)))
	require.NoError(t, repo.Create(ctx, newTestBooking(t, "25061001", 2)))

	byHotel, err := repo.ListByHotelID(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, byHotel, 2)

	byNo, err := repo.GetByBookingNo(ctx, "25061001")
	require.NoError(t, err)
	assert.Len(t, byNo, 2)

	byUser, err := repo.ListByUserID(ctx, 7)
	require.NoError(t, err)
	assert.Len(t, byUser, 2)
}

func TestHotelRepositoryRoundTripAndSearch(t *testing.T) {
	repo := NewHotelRepository(setupTestDB(t))
	ctx := context.Background()

	h1, err := hotel.NewHotel(1, "Sea Pearl Resort", "Cox's Bazar", []string{"pool", "wifi"}, 4500, "10%", 4.7, "sea-pearl.jpg", true)
	require.NoError(t, err)
	h2, err := hotel.NewHotel(2, "Hotel Grand Dhaka", "Dhaka", []string{"wifi"}, 3000, "", 4.1, "", false)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, h1))
	require.NoError(t, repo.Create(ctx, h2))

	maxID, err := repo.MaxPublicID(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, maxID)

	loaded, err := repo.GetByPublicID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"pool", "wifi"}, loaded.Amenities())

	minRating := 4.5
	results, err := repo.Search(ctx, hotel.SearchCriteria{MinRating: &minRating})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Sea Pearl Resort", results[0].Name())

	top, err := repo.ListTopSelling(ctx)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, "Sea Pearl Resort", top[0].Name())
}

func TestHotelDetailsRepositoryRoundTrip(t *testing.T) {
	repo := NewHotelDetailsRepository(setupTestDB(t))
	ctx := context.Background()

	details, err := hotel.NewHotelDetails(3, "Sea Pearl Resort", []hotel.Category{
		{
			CategoryName: "Deluxe Couple",
			AdultCount:   2,
			Amenities:    []string{"balcony"},
			PriceRanges: []hotel.PriceRange{
				{
					Start: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
					End:   time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC),
					Price: 4500,
				},
			},
		},
	}, []hotel.NearbyPlace{{Name: "Laboni Beach", Distance: "0.5 km"}}, []string{"No smoking"})
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, details))

	loaded, err := repo.GetByHotelID(ctx, 3)
	require.NoError(t, err)
	require.Len(t, loaded.Categories(), 1)
	assert.Equal(t, "Deluxe Couple", loaded.Categories()[0].CategoryName)
	require.Len(t, loaded.WhatsNearby(), 1)
	assert.Equal(t, "Laboni Beach", loaded.WhatsNearby()[0].Name)
	assert.Equal(t, []string{"No smoking"}, loaded.Policies())
}

func TestRoomNumberRepositoryUniqueness(t *testing.T) {
	repo := NewRoomNumberRepository(setupTestDB(t))
	ctx := context.Background()

	room, err := hotel.NewRoomNumber(3, "Sea Pearl Resort", "Deluxe Couple", "301", "", "")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, room))

	exists, err := repo.Exists(ctx, 3, "Deluxe Couple", "301")
	require.NoError(t, err)
	assert.True(t, exists)

	dup, err := hotel.NewRoomNumber(3, "Sea Pearl Resort", "Deluxe Couple", "301", "", "")
	require.NoError(t, err)
	err = repo.Create(ctx, dup)
	require.Error(t, err)
	assert.True(t, errors.IsDuplicateError(err))

	rooms, err := repo.ListByHotelAndCategory(ctx, 3, "Deluxe Couple")
	require.NoError(t, err)
	assert.Len(t, rooms, 1)
}

func TestUserRepositoryRoundTrip(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))
	ctx := context.Background()

	u, err := user.NewUser("FTB-4821", "Anisur", "Rahman", "anisur", "01711112222", "Dhaka", "anisur@example.com", "bcrypt-hash")
	require.NoError(t, err)
	u.RecordLogin(user.LoginRecord{Latitude: "23.8103", PublicIP: "103.4.145.1"})
	require.NoError(t, repo.Create(ctx, u))

	byUsername, err := repo.GetByUsername(ctx, "anisur")
	require.NoError(t, err)
	assert.Equal(t, "anisur@example.com", byUsername.Email())
	require.Len(t, byUsername.LoginHistory(), 1)
	assert.Equal(t, "23.8103", byUsername.LoginHistory()[0].Latitude)

	_, err = repo.GetByEmail(ctx, "nobody@example.com")
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))

	dup, err := user.NewUser("FTB-1000", "Other", "User", "anisur", "01800000000", "", "other@example.com", "hash")
	require.NoError(t, err)
	err = repo.Create(ctx, dup)
	require.Error(t, err)
	assert.True(t, errors.IsDuplicateError(err))
}
