package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anisurarzu/FTB-Server-Demo/internal/application/payment/gateway"
	"github.com/anisurarzu/FTB-Server-Demo/internal/application/payment/usecases"
	"github.com/anisurarzu/FTB-Server-Demo/internal/domain/booking"
	"github.com/anisurarzu/FTB-Server-Demo/internal/domain/payment"
	pvo "github.com/anisurarzu/FTB-Server-Demo/internal/domain/payment/valueobjects"
	"github.com/anisurarzu/FTB-Server-Demo/internal/shared/errors"
	"github.com/anisurarzu/FTB-Server-Demo/internal/shared/logger"
	"github.com/anisurarzu/FTB-Server-Demo/internal/shared/utils"
)

type stubGateway struct {
	createResp  *gateway.CreateCheckoutResponse
	createErr   error
	executeResp *gateway.ExecuteCheckoutResponse
	executeErr  error
	statusResp  *gateway.StatusResponse
	statusErr   error

	createCalls  int
	executeCalls int
}

func (g *stubGateway) CreateCheckout(ctx context.Context, req gateway.CreateCheckoutRequest) (*gateway.CreateCheckoutResponse, error) {
	g.createCalls++
	return g.createResp, g.createErr
}

func (g *stubGateway) ExecuteCheckout(ctx context.Context, paymentID string) (*gateway.ExecuteCheckoutResponse, error) {
	g.executeCalls++
	return g.executeResp, g.executeErr
}

func (g *stubGateway) QueryStatus(ctx context.Context, paymentID string) (*gateway.StatusResponse, error) {
	return g.statusResp, g.statusErr
}

type stubPaymentRepo struct {
	byProviderID map[string]*payment.Payment
}

func newStubPaymentRepo() *stubPaymentRepo {
	return &stubPaymentRepo{byProviderID: make(map[string]*payment.Payment)}
}

func (r *stubPaymentRepo) Create(ctx context.Context, p *payment.Payment) error {
	p.SetID(uint(len(r.byProviderID) + 1))
	r.byProviderID[p.ProviderPaymentID()] = p
	return nil
}

func (r *stubPaymentRepo) Update(ctx context.Context, p *payment.Payment) error {
	r.byProviderID[p.ProviderPaymentID()] = p
	return nil
}

func (r *stubPaymentRepo) GetByID(ctx context.Context, id uint) (*payment.Payment, error) {
	for _, p := range r.byProviderID {
		if p.ID() == id {
			return p, nil
		}
	}
	return nil, errors.NewNotFoundError("payment not found")
}

func (r *stubPaymentRepo) GetByProviderPaymentID(ctx context.Context, providerPaymentID string) (*payment.Payment, error) {
	p, ok := r.byProviderID[providerPaymentID]
	if !ok {
		return nil, errors.NewNotFoundError("payment not found")
	}
	return p, nil
}

func (r *stubPaymentRepo) ListByBookingID(ctx context.Context, bookingID uint) ([]*payment.Payment, error) {
	return nil, nil
}

type stubBookingRepo struct{}

func (stubBookingRepo) Create(ctx context.Context, b *booking.Booking) error { return nil }
func (stubBookingRepo) Update(ctx context.Context, b *booking.Booking) error { return nil }
func (stubBookingRepo) Delete(ctx context.Context, id uint) error            { return nil }
func (stubBookingRepo) GetByID(ctx context.Context, id uint) (*booking.Booking, error) {
	return nil, errors.NewNotFoundError("booking not found")
}
func (stubBookingRepo) GetByBookingNo(ctx context.Context, bookingNo string) ([]*booking.Booking, error) {
	return nil, nil
}
func (stubBookingRepo) List(ctx context.Context) ([]*booking.Booking, error) { return nil, nil }
func (stubBookingRepo) ListByHotelID(ctx context.Context, hotelID uint) ([]*booking.Booking, error) {
	return nil, nil
}
func (stubBookingRepo) ListByUserID(ctx context.Context, bookedByID uint) ([]*booking.Booking, error) {
	return nil, nil
}
func (stubBookingRepo) GetLastSerialNo(ctx context.Context) (int, error) { return 0, nil }
func (stubBookingRepo) ListBookingNosByPrefix(ctx context.Context, prefix string) ([]string, error) {
	return nil, nil
}
func (stubBookingRepo) BookingNoExists(ctx context.Context, bookingNo string) (bool, error) {
	return false, nil
}

func newPaymentTestRouter(t *testing.T, gw *stubGateway, repo *stubPaymentRepo) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logger.NewNop()
	initiateUC := usecases.NewInitiateCheckoutUseCase(repo, stubBookingRepo{}, gw, log)
	executeUC := usecases.NewExecuteCheckoutUseCase(repo, stubBookingRepo{}, gw, log)
	verifyUC := usecases.NewVerifyCheckoutUseCase(gw, log)
	callbackUC := usecases.NewHandleCheckoutCallbackUseCase(repo, executeUC, log)

	handler := NewPaymentHandler(initiateUC, executeUC, verifyUC, callbackUC, log)

	engine := gin.New()
	engine.POST("/api/payment/initiate", handler.Initiate)
	engine.POST("/api/payment/execute", handler.Execute)
	engine.POST("/api/payment/verify", handler.Verify)
	engine.GET("/api/payment/callback", handler.Callback)
	engine.POST("/api/payment/callback", handler.Callback)
	return engine
}

func performJSON(engine *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) utils.APIResponse {
	t.Helper()
	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestPaymentHandler_Initiate_Success(t *testing.T) {
	gw := &stubGateway{
		createResp: &gateway.CreateCheckoutResponse{
			PaymentID: "TR001",
			BkashURL:  "https://sandbox.bka.sh/checkout/TR001",
		},
	}
	repo := newStubPaymentRepo()
	engine := newPaymentTestRouter(t, gw, repo)

	w := performJSON(engine, http.MethodPost, "/api/payment/initiate", gin.H{
		"bookingId":     1,
		"amount":        3000.0,
		"customerName":  "Rahim Uddin",
		"customerPhone": "01712345678",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeEnvelope(t, w)
	assert.True(t, resp.Success)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "TR001", data["paymentID"])
	assert.Equal(t, "https://sandbox.bka.sh/checkout/TR001", data["bkashURL"])

	_, err := repo.GetByProviderPaymentID(context.Background(), "TR001")
	assert.NoError(t, err)
}

func TestPaymentHandler_Initiate_ValidationError(t *testing.T) {
	gw := &stubGateway{}
	engine := newPaymentTestRouter(t, gw, newStubPaymentRepo())

	w := performJSON(engine, http.MethodPost, "/api/payment/initiate", gin.H{
		"bookingId": 1,
		"amount":    3000.0,
		// customerName and customerPhone missing
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeEnvelope(t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, 0, gw.createCalls)
}

func TestPaymentHandler_Initiate_GatewayError(t *testing.T) {
	gw := &stubGateway{
		createErr: errors.NewGatewayError("payment initiation failed", "Invalid amount"),
	}
	engine := newPaymentTestRouter(t, gw, newStubPaymentRepo())

	w := performJSON(engine, http.MethodPost, "/api/payment/initiate", gin.H{
		"bookingId":     1,
		"amount":        3000.0,
		"customerName":  "Rahim Uddin",
		"customerPhone": "01712345678",
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decodeEnvelope(t, w)
	assert.False(t, resp.Success)
}

func TestPaymentHandler_Execute_Success(t *testing.T) {
	gw := &stubGateway{
		createResp: &gateway.CreateCheckoutResponse{PaymentID: "TR002", BkashURL: "https://sandbox.bka.sh/checkout/TR002"},
		executeResp: &gateway.ExecuteCheckoutResponse{
			PaymentID:         "TR002",
			TrxID:             "ABC123",
			TransactionStatus: "Completed",
		},
	}
	repo := newStubPaymentRepo()
	engine := newPaymentTestRouter(t, gw, repo)

	w := performJSON(engine, http.MethodPost, "/api/payment/initiate", gin.H{
		"bookingId":     1,
		"amount":        3000.0,
		"customerName":  "Rahim Uddin",
		"customerPhone": "01712345678",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = performJSON(engine, http.MethodPost, "/api/payment/execute", gin.H{"paymentID": "TR002"})
	assert.Equal(t, http.StatusOK, w.Code)

	p, err := repo.GetByProviderPaymentID(context.Background(), "TR002")
	require.NoError(t, err)
	assert.Equal(t, pvo.PaymentStatusCompleted, p.Status())
}

func TestPaymentHandler_Execute_MissingPaymentID(t *testing.T) {
	gw := &stubGateway{}
	engine := newPaymentTestRouter(t, gw, newStubPaymentRepo())

	w := performJSON(engine, http.MethodPost, "/api/payment/execute", gin.H{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, gw.executeCalls)
}

func TestPaymentHandler_Execute_GatewayFailure(t *testing.T) {
	gw := &stubGateway{
		executeErr: errors.NewGatewayError("payment execution failed", "Insufficient Balance"),
	}
	engine := newPaymentTestRouter(t, gw, newStubPaymentRepo())

	w := performJSON(engine, http.MethodPost, "/api/payment/execute", gin.H{"paymentID": "TR003"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decodeEnvelope(t, w)
	assert.False(t, resp.Success)
}

func TestPaymentHandler_Verify_ReturnsRawStatus(t *testing.T) {
	gw := &stubGateway{
		statusResp: &gateway.StatusResponse{
			PaymentID:         "TR004",
			TransactionStatus: "Initiated",
			Raw: map[string]interface{}{
				"paymentID":         "TR004",
				"transactionStatus": "Initiated",
			},
		},
	}
	engine := newPaymentTestRouter(t, gw, newStubPaymentRepo())

	w := performJSON(engine, http.MethodPost, "/api/payment/verify", gin.H{"paymentID": "TR004"})

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeEnvelope(t, w)
	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Initiated", data["transactionStatus"])
}

func TestPaymentHandler_Callback_AlwaysAcksWithOK(t *testing.T) {
	gw := &stubGateway{
		executeErr: stderrors.New("gateway down"),
	}
	repo := newStubPaymentRepo()
	engine := newPaymentTestRouter(t, gw, repo)

	// unknown payment
	req := httptest.NewRequest(http.MethodGet, "/api/payment/callback?paymentID=TRX&status=success", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// failure status
	req = httptest.NewRequest(http.MethodGet, "/api/payment/callback?paymentID=TRX&status=failure", nil)
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// no identifiers at all
	req = httptest.NewRequest(http.MethodGet, "/api/payment/callback", nil)
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPaymentHandler_Callback_SettlesPendingPayment(t *testing.T) {
	gw := &stubGateway{
		createResp: &gateway.CreateCheckoutResponse{PaymentID: "TR005", BkashURL: "https://sandbox.bka.sh/checkout/TR005"},
		executeResp: &gateway.ExecuteCheckoutResponse{
			PaymentID:         "TR005",
			TrxID:             "XYZ789",
			TransactionStatus: "Completed",
		},
	}
	repo := newStubPaymentRepo()
	engine := newPaymentTestRouter(t, gw, repo)

	w := performJSON(engine, http.MethodPost, "/api/payment/initiate", gin.H{
		"bookingId":     1,
		"amount":        3000.0,
		"customerName":  "Rahim Uddin",
		"customerPhone": "01712345678",
	})
	require.Equal(t, http.StatusOK, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/payment/callback?paymentID=TR005&status=success", nil)
	w2 := httptest.NewRecorder()
	engine.ServeHTTP(w2, req)
	assert.Equal(t, http.StatusOK, w2.Code)
	assert.Equal(t, 1, gw.executeCalls)

	p, err := repo.GetByProviderPaymentID(context.Background(), "TR005")
	require.NoError(t, err)
	assert.Equal(t, pvo.PaymentStatusCompleted, p.Status())
}
