package usecases

import (
	"context"

	"github.com/anisurarzu/FTB-Server-Demo/internal/domain/payment"
	vo "github.com/anisurarzu/FTB-Server-Demo/internal/domain/payment/valueobjects"
	"github.com/anisurarzu/FTB-Server-Demo/internal/shared/errors"
	"github.com/anisurarzu/FTB-Server-Demo/internal/shared/logger"
)

type HandleCheckoutCallbackCommand struct {
	PaymentID string `form:"paymentID" json:"paymentID"`
	Status    string `form:"status" json:"status"`
}

// HandleCheckoutCallbackUseCase processes the provider's redirect
// callback. The callback is advisory: the provider is always
// acknowledged, and the actual settlement goes through the same execute
// path the interactive flow uses. A record that is already completed
// triggers no second execute.
type HandleCheckoutCallbackUseCase struct {
	paymentRepo payment.Repository
	executeUC   *ExecuteCheckoutUseCase
	logger      logger.Interface
}

func NewHandleCheckoutCallbackUseCase(
	paymentRepo payment.Repository,
	executeUC *ExecuteCheckoutUseCase,
	log logger.Interface,
) *HandleCheckoutCallbackUseCase {
	return &HandleCheckoutCallbackUseCase{
		paymentRepo: paymentRepo,
		executeUC:   executeUC,
		logger:      log,
	}
}

func (uc *HandleCheckoutCallbackUseCase) Execute(ctx context.Context, cmd HandleCheckoutCallbackCommand) error {
	if cmd.PaymentID == "" {
		uc.logger.Warnw("callback without payment ID, ignoring")
		return nil
	}
	if cmd.Status != "success" {
		uc.logger.Infow("callback reported non-success status, no action",
			"paymentID", cmd.PaymentID,
			"status", cmd.Status)
		return nil
	}

	record, err := uc.paymentRepo.GetByProviderPaymentID(ctx, cmd.PaymentID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			uc.logger.Warnw("callback for unknown payment",
				"paymentID", cmd.PaymentID)
			return nil
		}
		uc.logger.Errorw("failed to load payment record for callback",
			"paymentID", cmd.PaymentID,
			"error", err)
		return nil
	}

	if record.Status() != vo.PaymentStatusPending {
		uc.logger.Infow("callback for settled payment, no action",
			"paymentID", cmd.PaymentID,
			"status", record.Status())
		return nil
	}

	if _, err := uc.executeUC.Execute(ctx, ExecuteCheckoutCommand{PaymentID: cmd.PaymentID}); err != nil {
		uc.logger.Errorw("callback-driven execute failed",
			"paymentID", cmd.PaymentID,
			"error", err)
	}
	return nil
}
