package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/anisurarzu/FTB-Server-Demo/internal/application/payment/gateway"
	"github.com/anisurarzu/FTB-Server-Demo/internal/domain/booking"
	"github.com/anisurarzu/FTB-Server-Demo/internal/domain/payment"
	vo "github.com/anisurarzu/FTB-Server-Demo/internal/domain/payment/valueobjects"
	"github.com/anisurarzu/FTB-Server-Demo/internal/shared/errors"
	"github.com/anisurarzu/FTB-Server-Demo/internal/shared/logger"
)

type InitiateCheckoutCommand struct {
	BookingID     uint    `json:"bookingId" binding:"required"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	CustomerName  string  `json:"customerName" binding:"required"`
	CustomerPhone string  `json:"customerPhone" binding:"required"`
}

type InitiateCheckoutResult struct {
	PaymentID             string `json:"paymentID"`
	BkashURL              string `json:"bkashURL"`
	Amount                string `json:"amount"`
	MerchantInvoiceNumber string `json:"merchantInvoiceNumber"`
}

// InitiateCheckoutUseCase starts a checkout session, persists the pending
// payment record and mirrors the pending state onto the booking. The
// booking mirror is best effort when the booking is gone, but a write
// failure against an existing booking is surfaced.
type InitiateCheckoutUseCase struct {
	paymentRepo payment.Repository
	bookingRepo booking.Repository
	gateway     gateway.CheckoutGateway
	logger      logger.Interface
	now         func() time.Time
}

func NewInitiateCheckoutUseCase(
	paymentRepo payment.Repository,
	bookingRepo booking.Repository,
	gw gateway.CheckoutGateway,
	log logger.Interface,
) *InitiateCheckoutUseCase {
	return &InitiateCheckoutUseCase{
		paymentRepo: paymentRepo,
		bookingRepo: bookingRepo,
		gateway:     gw,
		logger:      log,
		now:         time.Now,
	}
}

func (uc *InitiateCheckoutUseCase) Execute(ctx context.Context, cmd InitiateCheckoutCommand) (*InitiateCheckoutResult, error) {
	if cmd.BookingID == 0 {
		return nil, errors.NewValidationError("booking ID is required")
	}
	if cmd.Amount <= 0 {
		return nil, errors.NewValidationError("amount must be greater than zero")
	}
	if cmd.CustomerName == "" {
		return nil, errors.NewValidationError("customer name is required")
	}
	if cmd.CustomerPhone == "" {
		return nil, errors.NewValidationError("customer phone is required")
	}

	amount := vo.NewMoneyFromTaka(cmd.Amount, "BDT")

	// A fresh invoice number per attempt; retries never reuse one.
	invoiceNo := fmt.Sprintf("INV-%d", uc.now().UnixMilli())

	created, err := uc.gateway.CreateCheckout(ctx, gateway.CreateCheckoutRequest{
		Amount:                amount.FormatAmount(),
		Currency:              amount.Currency(),
		MerchantInvoiceNumber: invoiceNo,
		PayerReference:        cmd.CustomerPhone,
	})
	if err != nil {
		uc.logger.Errorw("checkout create failed",
			"bookingID", cmd.BookingID,
			"invoiceNo", invoiceNo,
			"error", err)
		return nil, err
	}

	record, err := payment.NewPayment(cmd.BookingID, amount, vo.PaymentMethodBkash, cmd.CustomerName, cmd.CustomerPhone)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	record.AttachProvider(created.PaymentID, invoiceNo)

	if err := uc.paymentRepo.Create(ctx, record); err != nil {
		uc.logger.Errorw("failed to persist payment record",
			"paymentID", created.PaymentID,
			"error", err)
		return nil, errors.NewInternalError("failed to save payment record")
	}

	if err := uc.mirrorPendingToBooking(ctx, cmd.BookingID, amount); err != nil {
		return nil, err
	}

	uc.logger.Infow("checkout initiated",
		"bookingID", cmd.BookingID,
		"paymentID", created.PaymentID,
		"invoiceNo", invoiceNo,
		"amount", amount.FormatAmount())

	return &InitiateCheckoutResult{
		PaymentID:             created.PaymentID,
		BkashURL:              created.BkashURL,
		Amount:                amount.FormatAmount(),
		MerchantInvoiceNumber: invoiceNo,
	}, nil
}

// mirrorPendingToBooking updates the booking's payment snapshot. A missing
// booking is skipped, the payment record already exists on its own.
func (uc *InitiateCheckoutUseCase) mirrorPendingToBooking(ctx context.Context, bookingID uint, amount vo.Money) error {
	b, err := uc.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			uc.logger.Warnw("booking not found for payment mirror, skipping",
				"bookingID", bookingID)
			return nil
		}
		return errors.NewInternalError("failed to load booking")
	}

	b.UpdatePaymentInfo(vo.PaymentStatusPending, vo.PaymentMethodBkash, amount, "")
	if err := uc.bookingRepo.Update(ctx, b); err != nil {
		uc.logger.Errorw("failed to mirror pending payment onto booking",
			"bookingID", bookingID,
			"error", err)
		return errors.NewInternalError("failed to update booking payment info")
	}
	return nil
}
