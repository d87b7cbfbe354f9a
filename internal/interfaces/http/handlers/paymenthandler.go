package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anisurarzu/FTB-Server-Demo/internal/application/payment/usecases"
	"github.com/anisurarzu/FTB-Server-Demo/internal/shared/errors"
	"github.com/anisurarzu/FTB-Server-Demo/internal/shared/logger"
	"github.com/anisurarzu/FTB-Server-Demo/internal/shared/utils"
)

type PaymentHandler struct {
	initiateUC *usecases.InitiateCheckoutUseCase
	executeUC  *usecases.ExecuteCheckoutUseCase
	verifyUC   *usecases.VerifyCheckoutUseCase
	callbackUC *usecases.HandleCheckoutCallbackUseCase
	logger     logger.Interface
}

func NewPaymentHandler(
	initiateUC *usecases.InitiateCheckoutUseCase,
	executeUC *usecases.ExecuteCheckoutUseCase,
	verifyUC *usecases.VerifyCheckoutUseCase,
	callbackUC *usecases.HandleCheckoutCallbackUseCase,
	log logger.Interface,
) *PaymentHandler {
	return &PaymentHandler{
		initiateUC: initiateUC,
		executeUC:  executeUC,
		verifyUC:   verifyUC,
		callbackUC: callbackUC,
		logger:     log,
	}
}

func (h *PaymentHandler) Initiate(c *gin.Context) {
	var cmd usecases.InitiateCheckoutCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.initiateUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Payment initiated", result)
}

func (h *PaymentHandler) Execute(c *gin.Context) {
	var cmd usecases.ExecuteCheckoutCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("paymentID is required"))
		return
	}

	result, err := h.executeUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Payment completed", result)
}

func (h *PaymentHandler) Verify(c *gin.Context) {
	var cmd usecases.VerifyCheckoutCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("paymentID is required"))
		return
	}

	status, err := h.verifyUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Payment status", status.Raw)
}

// Callback handles the provider redirect. The provider is acknowledged
// with 200 no matter what happened locally, otherwise it would retry
// against an already settled session.
func (h *PaymentHandler) Callback(c *gin.Context) {
	cmd := usecases.HandleCheckoutCallbackCommand{
		PaymentID: c.Query("paymentID"),
		Status:    c.Query("status"),
	}
	if cmd.PaymentID == "" {
		// some flows post the identifiers instead
		_ = c.ShouldBindJSON(&cmd)
	}

	if err := h.callbackUC.Execute(c.Request.Context(), cmd); err != nil {
		h.logger.Errorw("callback processing failed", "paymentID", cmd.PaymentID, "error", err)
	}

	utils.SuccessResponse(c, http.StatusOK, "Callback received", nil)
}
