package payment

import (
	"fmt"
	"time"

	vo "github.com/anisurarzu/FTB-Server-Demo/internal/domain/payment/valueobjects"
	"github.com/anisurarzu/FTB-Server-Demo/internal/shared/biztime"
)

// Payment records a single checkout attempt against a booking. Once the
// provider assigns a payment ID it becomes the lookup key for the
// execute, verify and callback steps.
type Payment struct {
	id                    uint
	bookingID             uint
	paymentMethod         vo.PaymentMethod
	amount                vo.Money
	status                vo.PaymentStatus
	providerPaymentID     string
	transactionID         *string
	merchantInvoiceNumber string
	customerName          string
	customerPhone         string
	paymentDate           *time.Time

	version   int
	createdAt time.Time
	updatedAt time.Time
}

func NewPayment(bookingID uint, amount vo.Money, method vo.PaymentMethod, customerName, customerPhone string) (*Payment, error) {
	if bookingID == 0 {
		return nil, fmt.Errorf("booking ID is required")
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("amount must be positive")
	}
	if customerName == "" {
		return nil, fmt.Errorf("customer name is required")
	}
	if customerPhone == "" {
		return nil, fmt.Errorf("customer phone is required")
	}

	now := biztime.NowUTC()
	return &Payment{
		bookingID:     bookingID,
		amount:        amount,
		paymentMethod: method,
		status:        vo.PaymentStatusPending,
		customerName:  customerName,
		customerPhone: customerPhone,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// AttachProvider stores the identifiers assigned during checkout create.
// The invoice number is generated per attempt and never reused.
func (p *Payment) AttachProvider(providerPaymentID, merchantInvoiceNumber string) {
	p.providerPaymentID = providerPaymentID
	p.merchantInvoiceNumber = merchantInvoiceNumber
	p.updatedAt = biztime.NowUTC()
}

// MarkAsCompleted records a successful execute. Calling it on an already
// completed payment is a no-op so callback re-entry stays idempotent.
func (p *Payment) MarkAsCompleted(transactionID string) error {
	if p.status == vo.PaymentStatusCompleted {
		return nil
	}
	if p.status != vo.PaymentStatusPending {
		return fmt.Errorf("cannot complete payment with status %s", p.status)
	}

	now := biztime.NowUTC()
	p.status = vo.PaymentStatusCompleted
	p.transactionID = &transactionID
	p.paymentDate = &now
	p.updatedAt = now
	p.version++

	return nil
}

func (p *Payment) MarkAsFailed() error {
	if p.status.IsTerminal() {
		return fmt.Errorf("cannot fail payment with terminal status %s", p.status)
	}

	p.status = vo.PaymentStatusFailed
	p.updatedAt = biztime.NowUTC()
	p.version++

	return nil
}

func (p *Payment) ID() uint                       { return p.id }
func (p *Payment) BookingID() uint                { return p.bookingID }
func (p *Payment) PaymentMethod() vo.PaymentMethod { return p.paymentMethod }
func (p *Payment) Amount() vo.Money               { return p.amount }
func (p *Payment) Status() vo.PaymentStatus       { return p.status }
func (p *Payment) ProviderPaymentID() string      { return p.providerPaymentID }
func (p *Payment) TransactionID() *string         { return p.transactionID }
func (p *Payment) MerchantInvoiceNumber() string  { return p.merchantInvoiceNumber }
func (p *Payment) CustomerName() string           { return p.customerName }
func (p *Payment) CustomerPhone() string          { return p.customerPhone }
func (p *Payment) PaymentDate() *time.Time        { return p.paymentDate }
func (p *Payment) Version() int                   { return p.version }
func (p *Payment) CreatedAt() time.Time           { return p.createdAt }
func (p *Payment) UpdatedAt() time.Time           { return p.updatedAt }

// SetID sets the payment ID after persistence (used by repository after Create)
func (p *Payment) SetID(id uint) {
	p.id = id
}

// PaymentReconstructParams carries persisted state back into the aggregate.
type PaymentReconstructParams struct {
	ID                    uint
	BookingID             uint
	PaymentMethod         vo.PaymentMethod
	Amount                vo.Money
	Status                vo.PaymentStatus
	ProviderPaymentID     string
	TransactionID         *string
	MerchantInvoiceNumber string
	CustomerName          string
	CustomerPhone         string
	PaymentDate           *time.Time
	Version               int
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

func ReconstructPayment(params PaymentReconstructParams) *Payment {
	return &Payment{
		id:                    params.ID,
		bookingID:             params.BookingID,
		paymentMethod:         params.PaymentMethod,
		amount:                params.Amount,
		status:                params.Status,
		providerPaymentID:     params.ProviderPaymentID,
		transactionID:         params.TransactionID,
		merchantInvoiceNumber: params.MerchantInvoiceNumber,
		customerName:          params.CustomerName,
		customerPhone:         params.CustomerPhone,
		paymentDate:           params.PaymentDate,
		version:               params.Version,
		createdAt:             params.CreatedAt,
		updatedAt:             params.UpdatedAt,
	}
}
