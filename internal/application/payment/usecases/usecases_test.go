package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anisurarzu/FTB-Server-Demo/internal/application/payment/gateway"
	"github.com/anisurarzu/FTB-Server-Demo/internal/domain/booking"
	"github.com/anisurarzu/FTB-Server-Demo/internal/domain/payment"
	vo "github.com/anisurarzu/FTB-Server-Demo/internal/domain/payment/valueobjects"
	"github.com/anisurarzu/FTB-Server-Demo/internal/shared/errors"
	"github.com/anisurarzu/FTB-Server-Demo/internal/shared/logger"
)

type fakeGateway struct {
	createResp  *gateway.CreateCheckoutResponse
	createErr   error
	execResp    *gateway.ExecuteCheckoutResponse
	execErr     error
	statusResp  *gateway.StatusResponse
	statusErr   error
	createCalls int
	execCalls   int
	statusCalls int
	lastCreate  gateway.CreateCheckoutRequest
}

func (g *fakeGateway) CreateCheckout(_ context.Context, req gateway.CreateCheckoutRequest) (*gateway.CreateCheckoutResponse, error) {
	g.createCalls++
	g.lastCreate = req
	return g.createResp, g.createErr
}

func (g *fakeGateway) ExecuteCheckout(_ context.Context, _ string) (*gateway.ExecuteCheckoutResponse, error) {
	g.execCalls++
	return g.execResp, g.execErr
}

func (g *fakeGateway) QueryStatus(_ context.Context, _ string) (*gateway.StatusResponse, error) {
	g.statusCalls++
	return g.statusResp, g.statusErr
}

type fakePaymentRepo struct {
	records   map[string]*payment.Payment
	createErr error
	updateErr error
	updates   int
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{records: make(map[string]*payment.Payment)}
}

func (r *fakePaymentRepo) Create(_ context.Context, p *payment.Payment) error {
	if r.createErr != nil {
		return r.createErr
	}
	p.SetID(uint(len(r.records) + 1))
	r.records[p.ProviderPaymentID()] = p
	return nil
}

func (r *fakePaymentRepo) Update(_ context.Context, p *payment.Payment) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.updates++
	r.records[p.ProviderPaymentID()] = p
	return nil
}

func (r *fakePaymentRepo) GetByID(_ context.Context, id uint) (*payment.Payment, error) {
	for _, p := range r.records {
		if p.ID() == id {
			return p, nil
		}
	}
	return nil, errors.NewNotFoundError("payment not found")
}

func (r *fakePaymentRepo) GetByProviderPaymentID(_ context.Context, providerPaymentID string) (*payment.Payment, error) {
	p, ok := r.records[providerPaymentID]
	if !ok {
		return nil, errors.NewNotFoundError("payment not found")
	}
	return p, nil
}

func (r *fakePaymentRepo) ListByBookingID(_ context.Context, bookingID uint) ([]*payment.Payment, error) {
	var out []*payment.Payment
	for _, p := range r.records {
		if p.BookingID() == bookingID {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeBookingRepo struct {
	bookings  map[uint]*booking.Booking
	updateErr error
	updates   int
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[uint]*booking.Booking)}
}

func (r *fakeBookingRepo) Create(_ context.Context, b *booking.Booking) error {
	b.SetID(uint(len(r.bookings) + 1))
	r.bookings[b.ID()] = b
	return nil
}

func (r *fakeBookingRepo) Update(_ context.Context, b *booking.Booking) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.updates++
	r.bookings[b.ID()] = b
	return nil
}

func (r *fakeBookingRepo) Delete(_ context.Context, id uint) error {
	delete(r.bookings, id)
	return nil
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id uint) (*booking.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, errors.NewNotFoundError("booking not found")
	}
	return b, nil
}

func (r *fakeBookingRepo) GetByBookingNo(_ context.Context, _ string) ([]*booking.Booking, error) {
	return nil, nil
}

func (r *fakeBookingRepo) List(_ context.Context) ([]*booking.Booking, error) { return nil, nil }

func (r *fakeBookingRepo) ListByHotelID(_ context.Context, _ uint) ([]*booking.Booking, error) {
	return nil, nil
}

func (r *fakeBookingRepo) ListByUserID(_ context.Context, _ uint) ([]*booking.Booking, error) {
	return nil, nil
}

func (r *fakeBookingRepo) GetLastSerialNo(_ context.Context) (int, error) { return 0, nil }

func (r *fakeBookingRepo) ListBookingNosByPrefix(_ context.Context, _ string) ([]string, error) {
	return nil, nil
}

func (r *fakeBookingRepo) BookingNoExists(_ context.Context, _ string) (bool, error) {
	return false, nil
}

func seedBooking(t *testing.T, repo *fakeBookingRepo) *booking.Booking {
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
		RoomPrice:        vo.NewMoneyFromTaka(4500, "BDT"),
		TotalBill:        vo.NewMoneyFromTaka(9000, "BDT"),
		AdvancePayment:   vo.NewMoneyFromTaka(3000, "BDT"),
		BookedBy:         "reception1",
		BookedByID:       7,
	})
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), b))
	return b
}

func validInitiateCommand(bookingID uint) InitiateCheckoutCommand {
	return InitiateCheckoutCommand{
		BookingID:     bookingID,
		Amount:        3000,
		CustomerName:  "Karim Ahmed",
		CustomerPhone: "01811223344",
	}
}

func TestInitiateCheckoutValidation(t *testing.T) {
	gw := &fakeGateway{}
	uc := NewInitiateCheckoutUseCase(newFakePaymentRepo(), newFakeBookingRepo(), gw, logger.NewNop())

	tests := []struct {
		name   string
		mutate func(*InitiateCheckoutCommand)
	}{
		{"missing booking ID", func(c *InitiateCheckoutCommand) { c.BookingID = 0 }},
		{"zero amount", func(c *InitiateCheckoutCommand) { c.Amount = 0 }},
		{"negative amount", func(c *InitiateCheckoutCommand) { c.Amount = -10 }},
		{"missing customer name", func(c *InitiateCheckoutCommand) { c.CustomerName = "" }},
		{"missing customer phone", func(c *InitiateCheckoutCommand) { c.CustomerPhone = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := validInitiateCommand(1)
			tt.mutate(&cmd)
			_, err := uc.Execute(context.Background(), cmd)
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
		})
	}
	assert.Zero(t, gw.createCalls, "validation failures must not reach the gateway")
}

func TestInitiateCheckoutSuccess(t *testing.T) {
	gw := &fakeGateway{
		createResp: &gateway.CreateCheckoutResponse{
			PaymentID: "TR0011abc",
			BkashURL:  "https://sandbox.bka.sh/checkout/TR0011abc",
		},
	}
	paymentRepo := newFakePaymentRepo()
	bookingRepo := newFakeBookingRepo()
	b := seedBooking(t, bookingRepo)

	uc := NewInitiateCheckoutUseCase(paymentRepo, bookingRepo, gw, logger.NewNop())
	uc.now = func() time.Time { return time.UnixMilli(1712345678901) }

	result, err := uc.Execute(context.Background(), validInitiateCommand(b.ID()))
	require.NoError(t, err)

	assert.Equal(t, "TR0011abc", result.PaymentID)
	assert.Equal(t, "https://sandbox.bka.sh/checkout/TR0011abc", result.BkashURL)
	assert.Equal(t, "3000.00", result.Amount)
	assert.Equal(t, "INV-1712345678901", result.MerchantInvoiceNumber)
	assert.Equal(t, "3000.00", gw.lastCreate.Amount)
	assert.Equal(t, "BDT", gw.lastCreate.Currency)

	record, err := paymentRepo.GetByProviderPaymentID(context.Background(), "TR0011abc")
	require.NoError(t, err)
	assert.Equal(t, vo.PaymentStatusPending, record.Status())
	assert.Equal(t, "INV-1712345678901", record.MerchantInvoiceNumber())

	assert.Equal(t, vo.PaymentStatusPending, b.PaymentStatus())
	assert.Equal(t, vo.PaymentMethodBkash, b.PaymentMethod())
	assert.Equal(t, int64(300000), b.PaymentAmount().AmountInPoisha())
}

func TestInitiateCheckoutFreshInvoicePerAttempt(t *testing.T) {
	gw := &fakeGateway{
		createResp: &gateway.CreateCheckoutResponse{PaymentID: "TR1", BkashURL: "https://x"},
	}
	bookingRepo := newFakeBookingRepo()
	b := seedBooking(t, bookingRepo)

	uc := NewInitiateCheckoutUseCase(newFakePaymentRepo(), bookingRepo, gw, logger.NewNop())
	millis := int64(1000)
	uc.now = func() time.Time {
		millis++
		return time.UnixMilli(millis)
	}

	first, err := uc.Execute(context.Background(), validInitiateCommand(b.ID()))
	require.NoError(t, err)
	gw.createResp = &gateway.CreateCheckoutResponse{PaymentID: "TR2", BkashURL: "https://x"}
	second, err := uc.Execute(context.Background(), validInitiateCommand(b.ID()))
	require.NoError(t, err)

	assert.NotEqual(t, first.MerchantInvoiceNumber, second.MerchantInvoiceNumber)
}

func TestInitiateCheckoutGatewayFailure(t *testing.T) {
	gw := &fakeGateway{createErr: errors.NewGatewayError("create failed")}
	paymentRepo := newFakePaymentRepo()
	bookingRepo := newFakeBookingRepo()
	b := seedBooking(t, bookingRepo)

	uc := NewInitiateCheckoutUseCase(paymentRepo, bookingRepo, gw, logger.NewNop())
	_, err := uc.Execute(context.Background(), validInitiateCommand(b.ID()))
	require.Error(t, err)
	assert.True(t, errors.IsGatewayError(err))
	assert.Empty(t, paymentRepo.records, "no record persisted on gateway failure")
}

func TestInitiateCheckoutMissingBookingIsSkipped(t *testing.T) {
	gw := &fakeGateway{
		createResp: &gateway.CreateCheckoutResponse{PaymentID: "TR1", BkashURL: "https://x"},
	}
	paymentRepo := newFakePaymentRepo()
	uc := NewInitiateCheckoutUseCase(paymentRepo, newFakeBookingRepo(), gw, logger.NewNop())

	result, err := uc.Execute(context.Background(), validInitiateCommand(99))
	require.NoError(t, err)
	assert.Equal(t, "TR1", result.PaymentID)
	assert.Len(t, paymentRepo.records, 1)
}

func TestInitiateCheckoutBookingWriteFailure(t *testing.T) {
	gw := &fakeGateway{
		createResp: &gateway.CreateCheckoutResponse{PaymentID: "TR1", BkashURL: "https://x"},
	}
	bookingRepo := newFakeBookingRepo()
	b := seedBooking(t, bookingRepo)
	bookingRepo.updateErr = errors.NewInternalError("write failed")

	uc := NewInitiateCheckoutUseCase(newFakePaymentRepo(), bookingRepo, gw, logger.NewNop())
	_, err := uc.Execute(context.Background(), validInitiateCommand(b.ID()))
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeInternal, appErr.Type)
}

func seedPendingPayment(t *testing.T, repo *fakePaymentRepo, bookingID uint, providerPaymentID string) *payment.Payment {
	t.Helper()
	p, err := payment.NewPayment(bookingID, vo.NewMoneyFromTaka(3000, "BDT"), vo.PaymentMethodBkash, "Karim Ahmed", "01811223344")
	require.NoError(t, err)
	p.AttachProvider(providerPaymentID, "INV-1")
	require.NoError(t, repo.Create(context.Background(), p))
	return p
}

func TestExecuteCheckoutRequiresPaymentID(t *testing.T) {
	gw := &fakeGateway{}
	uc := NewExecuteCheckoutUseCase(newFakePaymentRepo(), newFakeBookingRepo(), gw, logger.NewNop())

	_, err := uc.Execute(context.Background(), ExecuteCheckoutCommand{})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.Zero(t, gw.execCalls)
}

func TestExecuteCheckoutGatewayFailureLeavesStateUntouched(t *testing.T) {
	gw := &fakeGateway{execErr: errors.NewGatewayError("checkout execute failed", "Insufficient Balance")}
	paymentRepo := newFakePaymentRepo()
	bookingRepo := newFakeBookingRepo()
	b := seedBooking(t, bookingRepo)
	seedPendingPayment(t, paymentRepo, b.ID(), "TR1")

	uc := NewExecuteCheckoutUseCase(paymentRepo, bookingRepo, gw, logger.NewNop())
	_, err := uc.Execute(context.Background(), ExecuteCheckoutCommand{PaymentID: "TR1"})
	require.Error(t, err)
	assert.True(t, errors.IsGatewayError(err))

	record, err := paymentRepo.GetByProviderPaymentID(context.Background(), "TR1")
	require.NoError(t, err)
	assert.Equal(t, vo.PaymentStatusPending, record.Status())
	assert.Empty(t, b.TransactionID())
}

func TestExecuteCheckoutSuccess(t *testing.T) {
	gw := &fakeGateway{
		execResp: &gateway.ExecuteCheckoutResponse{
			PaymentID:         "TR1",
			TrxID:             "TRX555",
			TransactionStatus: "Completed",
			Amount:            "3000.00",
		},
	}
	paymentRepo := newFakePaymentRepo()
	bookingRepo := newFakeBookingRepo()
	b := seedBooking(t, bookingRepo)
	seedPendingPayment(t, paymentRepo, b.ID(), "TR1")

	uc := NewExecuteCheckoutUseCase(paymentRepo, bookingRepo, gw, logger.NewNop())
	result, err := uc.Execute(context.Background(), ExecuteCheckoutCommand{PaymentID: "TR1"})
	require.NoError(t, err)
	assert.Equal(t, "TRX555", result.TrxID)
	assert.Equal(t, "Completed", result.TransactionStatus)

	record, err := paymentRepo.GetByProviderPaymentID(context.Background(), "TR1")
	require.NoError(t, err)
	assert.Equal(t, vo.PaymentStatusCompleted, record.Status())
	require.NotNil(t, record.TransactionID())
	assert.Equal(t, "TRX555", *record.TransactionID())
	require.NotNil(t, record.PaymentDate())

	assert.Equal(t, vo.PaymentStatusCompleted, b.PaymentStatus())
	assert.Equal(t, "TRX555", b.TransactionID())
}

func TestExecuteCheckoutMissingLocalRecordStillSucceeds(t *testing.T) {
	gw := &fakeGateway{
		execResp: &gateway.ExecuteCheckoutResponse{
			PaymentID:         "TR-unknown",
			TrxID:             "TRX1",
			TransactionStatus: "Completed",
		},
	}
	bookingRepo := newFakeBookingRepo()
	uc := NewExecuteCheckoutUseCase(newFakePaymentRepo(), bookingRepo, gw, logger.NewNop())

	result, err := uc.Execute(context.Background(), ExecuteCheckoutCommand{PaymentID: "TR-unknown"})
	require.NoError(t, err)
	assert.Equal(t, "TRX1", result.TrxID)
	assert.Zero(t, bookingRepo.updates, "no booking touched without a local record")
}

func TestExecuteCheckoutLocalWriteFailureIsSwallowed(t *testing.T) {
	gw := &fakeGateway{
		execResp: &gateway.ExecuteCheckoutResponse{
			PaymentID:         "TR1",
			TrxID:             "TRX1",
			TransactionStatus: "Completed",
		},
	}
	paymentRepo := newFakePaymentRepo()
	bookingRepo := newFakeBookingRepo()
	b := seedBooking(t, bookingRepo)
	seedPendingPayment(t, paymentRepo, b.ID(), "TR1")
	paymentRepo.updateErr = errors.NewInternalError("write failed")

	uc := NewExecuteCheckoutUseCase(paymentRepo, bookingRepo, gw, logger.NewNop())
	result, err := uc.Execute(context.Background(), ExecuteCheckoutCommand{PaymentID: "TR1"})
	require.NoError(t, err, "remote success wins over local write failure")
	assert.Equal(t, "TRX1", result.TrxID)
}

func TestVerifyCheckoutIsReadOnly(t *testing.T) {
	gw := &fakeGateway{
		statusResp: &gateway.StatusResponse{
			PaymentID:         "TR1",
			TransactionStatus: "Initiated",
			Raw:               map[string]interface{}{"transactionStatus": "Initiated"},
		},
	}
	uc := NewVerifyCheckoutUseCase(gw, logger.NewNop())

	status, err := uc.Execute(context.Background(), VerifyCheckoutCommand{PaymentID: "TR1"})
	require.NoError(t, err)
	assert.Equal(t, "Initiated", status.TransactionStatus)
	assert.Equal(t, 1, gw.statusCalls)
	assert.Zero(t, gw.execCalls)
	assert.Zero(t, gw.createCalls)
}

func TestVerifyCheckoutRequiresPaymentID(t *testing.T) {
	uc := NewVerifyCheckoutUseCase(&fakeGateway{}, logger.NewNop())
	_, err := uc.Execute(context.Background(), VerifyCheckoutCommand{})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func newCallbackUseCase(paymentRepo *fakePaymentRepo, bookingRepo *fakeBookingRepo, gw *fakeGateway) *HandleCheckoutCallbackUseCase {
	executeUC := NewExecuteCheckoutUseCase(paymentRepo, bookingRepo, gw, logger.NewNop())
	return NewHandleCheckoutCallbackUseCase(paymentRepo, executeUC, logger.NewNop())
}

func TestCallbackIgnoresNonSuccessStatus(t *testing.T) {
	gw := &fakeGateway{}
	paymentRepo := newFakePaymentRepo()
	bookingRepo := newFakeBookingRepo()
	b := seedBooking(t, bookingRepo)
	seedPendingPayment(t, paymentRepo, b.ID(), "TR1")

	uc := newCallbackUseCase(paymentRepo, bookingRepo, gw)
	require.NoError(t, uc.Execute(context.Background(), HandleCheckoutCallbackCommand{PaymentID: "TR1", Status: "failure"}))
	require.NoError(t, uc.Execute(context.Background(), HandleCheckoutCallbackCommand{PaymentID: "TR1", Status: "cancel"}))
	require.NoError(t, uc.Execute(context.Background(), HandleCheckoutCallbackCommand{Status: "success"}))

	assert.Zero(t, gw.execCalls)
	record, err := paymentRepo.GetByProviderPaymentID(context.Background(), "TR1")
	require.NoError(t, err)
	assert.Equal(t, vo.PaymentStatusPending, record.Status())
}

func TestCallbackUnknownPaymentIsAcknowledged(t *testing.T) {
	gw := &fakeGateway{}
	uc := newCallbackUseCase(newFakePaymentRepo(), newFakeBookingRepo(), gw)

	require.NoError(t, uc.Execute(context.Background(), HandleCheckoutCallbackCommand{PaymentID: "TR-missing", Status: "success"}))
	assert.Zero(t, gw.execCalls)
}

func TestCallbackSettlesPendingPayment(t *testing.T) {
	gw := &fakeGateway{
		execResp: &gateway.ExecuteCheckoutResponse{
			PaymentID:         "TR1",
			TrxID:             "TRX9",
			TransactionStatus: "Completed",
		},
	}
	paymentRepo := newFakePaymentRepo()
	bookingRepo := newFakeBookingRepo()
	b := seedBooking(t, bookingRepo)
	seedPendingPayment(t, paymentRepo, b.ID(), "TR1")

	uc := newCallbackUseCase(paymentRepo, bookingRepo, gw)
	require.NoError(t, uc.Execute(context.Background(), HandleCheckoutCallbackCommand{PaymentID: "TR1", Status: "success"}))

	assert.Equal(t, 1, gw.execCalls)
	record, err := paymentRepo.GetByProviderPaymentID(context.Background(), "TR1")
	require.NoError(t, err)
	assert.Equal(t, vo.PaymentStatusCompleted, record.Status())
	assert.Equal(t, "TRX9", b.TransactionID())
}

func TestCallbackSkipsSettledPayment(t *testing.T) {
	gw := &fakeGateway{}
	paymentRepo := newFakePaymentRepo()
	bookingRepo := newFakeBookingRepo()
	b := seedBooking(t, bookingRepo)
	p := seedPendingPayment(t, paymentRepo, b.ID(), "TR1")
	require.NoError(t, p.MarkAsCompleted("TRX1"))

	uc := newCallbackUseCase(paymentRepo, bookingRepo, gw)
	require.NoError(t, uc.Execute(context.Background(), HandleCheckoutCallbackCommand{PaymentID: "TR1", Status: "success"}))

	assert.Zero(t, gw.execCalls, "settled payments trigger no remote call")
}

func TestCallbackExecuteFailureStillAcknowledged(t *testing.T) {
	gw := &fakeGateway{execErr: errors.NewGatewayError("checkout execute failed")}
	paymentRepo := newFakePaymentRepo()
	bookingRepo := newFakeBookingRepo()
	b := seedBooking(t, bookingRepo)
	seedPendingPayment(t, paymentRepo, b.ID(), "TR1")

	uc := newCallbackUseCase(paymentRepo, bookingRepo, gw)
	require.NoError(t, uc.Execute(context.Background(), HandleCheckoutCallbackCommand{PaymentID: "TR1", Status: "success"}))
	assert.Equal(t, 1, gw.execCalls)
}
