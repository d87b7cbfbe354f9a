package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/anisurarzu/FTB-Server-Demo/internal/domain/payment/valueobjects"
)

func validAmount(t *testing.T) vo.Money {
	t.Helper()
	return vo.NewMoneyFromTaka(1500.50, "BDT")
}

func TestNewPayment(t *testing.T) {
	amount := validAmount(t)

	tests := []struct {
		name          string
		bookingID     uint
		customerName  string
		customerPhone string
		wantErr       string
	}{
		{
			name:          "valid payment",
			bookingID:     42,
			customerName:  "Rahim Uddin",
			customerPhone: "01711112222",
		},
		{
			name:          "missing booking ID",
			bookingID:     0,
			customerName:  "Rahim Uddin",
			customerPhone: "01711112222",
			wantErr:       "booking ID is required",
		},
		{
			name:          "missing customer name",
			bookingID:     42,
			customerPhone: "01711112222",
			wantErr:       "customer name is required",
		},
		{
			name:         "missing customer phone",
			bookingID:    42,
			customerName: "Rahim Uddin",
			wantErr:      "customer phone is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPayment(tt.bookingID, amount, vo.PaymentMethodBkash, tt.customerName, tt.customerPhone)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, vo.PaymentStatusPending, p.Status())
			assert.Equal(t, tt.bookingID, p.BookingID())
			assert.Nil(t, p.TransactionID())
			assert.Nil(t, p.PaymentDate())
		})
	}
}

func TestNewPaymentRejectsNonPositiveAmount(t *testing.T) {
	zero := vo.NewMoney(0, "BDT")

	_, err := NewPayment(42, zero, vo.PaymentMethodBkash, "Rahim Uddin", "01711112222")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "amount must be positive")
}

func TestAttachProvider(t *testing.T) {
	p, err := NewPayment(42, validAmount(t), vo.PaymentMethodBkash, "Rahim Uddin", "01711112222")
	require.NoError(t, err)

	p.AttachProvider("TR0011abcdef", "INV-1712345678901")

	assert.Equal(t, "TR0011abcdef", p.ProviderPaymentID())
	assert.Equal(t, "INV-1712345678901", p.MerchantInvoiceNumber())
	assert.Equal(t, vo.PaymentStatusPending, p.Status())
}

func TestMarkAsCompleted(t *testing.T) {
	p, err := NewPayment(42, validAmount(t), vo.PaymentMethodBkash, "Rahim Uddin", "01711112222")
	require.NoError(t, err)

	require.NoError(t, p.MarkAsCompleted("TRX123456"))
	assert.Equal(t, vo.PaymentStatusCompleted, p.Status())
	require.NotNil(t, p.TransactionID())
	assert.Equal(t, "TRX123456", *p.TransactionID())
	require.NotNil(t, p.PaymentDate())
	assert.Equal(t, 1, p.Version())
}

func TestMarkAsCompletedIsIdempotent(t *testing.T) {
	p, err := NewPayment(42, validAmount(t), vo.PaymentMethodBkash, "Rahim Uddin", "01711112222")
	require.NoError(t, err)

	require.NoError(t, p.MarkAsCompleted("TRX123456"))
	require.NoError(t, p.MarkAsCompleted("TRX999999"))

	// second call keeps original transaction and does not bump version
	assert.Equal(t, "TRX123456", *p.TransactionID())
	assert.Equal(t, 1, p.Version())
}

func TestMarkAsCompletedRejectsTerminalFailure(t *testing.T) {
	p, err := NewPayment(42, validAmount(t), vo.PaymentMethodBkash, "Rahim Uddin", "01711112222")
	require.NoError(t, err)

	require.NoError(t, p.MarkAsFailed())
	err = p.MarkAsCompleted("TRX123456")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot complete payment")
}

func TestMarkAsFailed(t *testing.T) {
	p, err := NewPayment(42, validAmount(t), vo.PaymentMethodBkash, "Rahim Uddin", "01711112222")
	require.NoError(t, err)

	require.NoError(t, p.MarkAsFailed())
	assert.Equal(t, vo.PaymentStatusFailed, p.Status())

	err = p.MarkAsFailed()
	require.Error(t, err)
}

func TestReconstructPayment(t *testing.T) {
	trx := "TRX777"
	p := ReconstructPayment(PaymentReconstructParams{
		ID:                    7,
		BookingID:             42,
		PaymentMethod:         vo.PaymentMethodBkash,
		Amount:                validAmount(t),
		Status:                vo.PaymentStatusCompleted,
		ProviderPaymentID:     "TR0011abcdef",
		TransactionID:         &trx,
		MerchantInvoiceNumber: "INV-1712345678901",
		CustomerName:          "Rahim Uddin",
		CustomerPhone:         "01711112222",
		Version:               2,
	})

	assert.Equal(t, uint(7), p.ID())
	assert.Equal(t, vo.PaymentStatusCompleted, p.Status())
	assert.Equal(t, "TR0011abcdef", p.ProviderPaymentID())
	assert.Equal(t, 2, p.Version())
}
