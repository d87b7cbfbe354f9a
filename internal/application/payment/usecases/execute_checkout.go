package usecases

import (
	"context"

	"github.com/anisurarzu/FTB-Server-Demo/internal/application/payment/gateway"
	"github.com/anisurarzu/FTB-Server-Demo/internal/domain/booking"
	"github.com/anisurarzu/FTB-Server-Demo/internal/domain/payment"
	vo "github.com/anisurarzu/FTB-Server-Demo/internal/domain/payment/valueobjects"
	"github.com/anisurarzu/FTB-Server-Demo/internal/shared/errors"
	"github.com/anisurarzu/FTB-Server-Demo/internal/shared/logger"
)

type ExecuteCheckoutCommand struct {
	PaymentID string `json:"paymentID" binding:"required"`
}

type ExecuteCheckoutResult struct {
	PaymentID         string `json:"paymentID"`
	TrxID             string `json:"trxID"`
	TransactionStatus string `json:"transactionStatus"`
	Amount            string `json:"amount"`
}

// ExecuteCheckoutUseCase finalizes a checkout session. The remote execute
// is the commit point: once the provider reports Completed, local write
// failures are logged and swallowed so the caller still sees success.
type ExecuteCheckoutUseCase struct {
	paymentRepo payment.Repository
	bookingRepo booking.Repository
	gateway     gateway.CheckoutGateway
	logger      logger.Interface
}

func NewExecuteCheckoutUseCase(
	paymentRepo payment.Repository,
	bookingRepo booking.Repository,
	gw gateway.CheckoutGateway,
	log logger.Interface,
) *ExecuteCheckoutUseCase {
	return &ExecuteCheckoutUseCase{
		paymentRepo: paymentRepo,
		bookingRepo: bookingRepo,
		gateway:     gw,
		logger:      log,
	}
}

func (uc *ExecuteCheckoutUseCase) Execute(ctx context.Context, cmd ExecuteCheckoutCommand) (*ExecuteCheckoutResult, error) {
	if cmd.PaymentID == "" {
		return nil, errors.NewValidationError("payment ID is required")
	}

	executed, err := uc.gateway.ExecuteCheckout(ctx, cmd.PaymentID)
	if err != nil {
		uc.logger.Errorw("checkout execute failed",
			"paymentID", cmd.PaymentID,
			"error", err)
		return nil, err
	}

	uc.recordCompletion(ctx, cmd.PaymentID, executed.TrxID)

	return &ExecuteCheckoutResult{
		PaymentID:         executed.PaymentID,
		TrxID:             executed.TrxID,
		TransactionStatus: executed.TransactionStatus,
		Amount:            executed.Amount,
	}, nil
}

// recordCompletion applies the completed state locally. The money has
// already moved so every failure here is logged, never returned.
func (uc *ExecuteCheckoutUseCase) recordCompletion(ctx context.Context, paymentID, trxID string) {
	record, err := uc.paymentRepo.GetByProviderPaymentID(ctx, paymentID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			uc.logger.Warnw("no local record for completed checkout",
				"paymentID", paymentID)
		} else {
			uc.logger.Errorw("failed to load payment record after execute",
				"paymentID", paymentID,
				"error", err)
		}
		return
	}

	if err := record.MarkAsCompleted(trxID); err != nil {
		uc.logger.Errorw("cannot mark payment completed",
			"paymentID", paymentID,
			"status", record.Status(),
			"error", err)
		return
	}
	if err := uc.paymentRepo.Update(ctx, record); err != nil {
		uc.logger.Errorw("failed to persist completed payment",
			"paymentID", paymentID,
			"trxID", trxID,
			"error", err)
		return
	}

	b, err := uc.bookingRepo.GetByID(ctx, record.BookingID())
	if err != nil {
		if errors.IsNotFoundError(err) {
			uc.logger.Warnw("booking not found for payment mirror, skipping",
				"bookingID", record.BookingID(),
				"paymentID", paymentID)
		} else {
			uc.logger.Errorw("failed to load booking after execute",
				"bookingID", record.BookingID(),
				"error", err)
		}
		return
	}

	b.UpdatePaymentInfo(vo.PaymentStatusCompleted, record.PaymentMethod(), record.Amount(), trxID)
	if err := uc.bookingRepo.Update(ctx, b); err != nil {
		uc.logger.Errorw("failed to mirror completed payment onto booking",
			"bookingID", b.ID(),
			"paymentID", paymentID,
			"error", err)
	}
}
