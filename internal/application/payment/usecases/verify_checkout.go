package usecases

import (
	"context"

	"github.com/anisurarzu/FTB-Server-Demo/internal/application/payment/gateway"
	"github.com/anisurarzu/FTB-Server-Demo/internal/shared/errors"
	"github.com/anisurarzu/FTB-Server-Demo/internal/shared/logger"
)

type VerifyCheckoutCommand struct {
	PaymentID string `json:"paymentID" binding:"required"`
}

// VerifyCheckoutUseCase queries the provider for a session's current
// state. It never mutates anything locally.
type VerifyCheckoutUseCase struct {
	gateway gateway.CheckoutGateway
	logger  logger.Interface
}

func NewVerifyCheckoutUseCase(gw gateway.CheckoutGateway, log logger.Interface) *VerifyCheckoutUseCase {
	return &VerifyCheckoutUseCase{
		gateway: gw,
		logger:  log,
	}
}

func (uc *VerifyCheckoutUseCase) Execute(ctx context.Context, cmd VerifyCheckoutCommand) (*gateway.StatusResponse, error) {
	if cmd.PaymentID == "" {
		return nil, errors.NewValidationError("payment ID is required")
	}

	status, err := uc.gateway.QueryStatus(ctx, cmd.PaymentID)
	if err != nil {
		uc.logger.Errorw("checkout status query failed",
			"paymentID", cmd.PaymentID,
			"error", err)
		return nil, err
	}

	return status, nil
}
