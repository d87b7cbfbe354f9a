// Package mappers converts between domain aggregates and persistence
// models.
package mappers

import (
	"github.com/anisurarzu/FTB-Server-Demo/internal/domain/payment"
	vo "github.com/anisurarzu/FTB-Server-Demo/internal/domain/payment/valueobjects"
	"github.com/anisurarzu/FTB-Server-Demo/internal/infrastructure/persistence/models"
)

type PaymentMapper struct{}

func NewPaymentMapper() *PaymentMapper {
	return &PaymentMapper{}
}

func (m *PaymentMapper) ToModel(p *payment.Payment) *models.PaymentModel {
	return &models.PaymentModel{
		ID:                    p.ID(),
		BookingID:             p.BookingID(),
		PaymentMethod:         p.PaymentMethod().String(),
		AmountInPoisha:        p.Amount().AmountInPoisha(),
		Currency:              p.Amount().Currency(),
		Status:                p.Status().String(),
		ProviderPaymentID:     p.ProviderPaymentID(),
		TransactionID:         p.TransactionID(),
		MerchantInvoiceNumber: p.MerchantInvoiceNumber(),
		CustomerName:          p.CustomerName(),
		CustomerPhone:         p.CustomerPhone(),
		PaymentDate:           p.PaymentDate(),
		Version:               p.Version(),
		CreatedAt:             p.CreatedAt(),
		UpdatedAt:             p.UpdatedAt(),
	}
}

func (m *PaymentMapper) ToDomain(model *models.PaymentModel) *payment.Payment {
	return payment.ReconstructPayment(payment.PaymentReconstructParams{
		ID:                    model.ID,
		BookingID:             model.BookingID,
		PaymentMethod:         vo.PaymentMethod(model.PaymentMethod),
		Amount:                vo.NewMoney(model.AmountInPoisha, model.Currency),
		Status:                vo.PaymentStatus(model.Status),
		ProviderPaymentID:     model.ProviderPaymentID,
		TransactionID:         model.TransactionID,
		MerchantInvoiceNumber: model.MerchantInvoiceNumber,
		CustomerName:          model.CustomerName,
		CustomerPhone:         model.CustomerPhone,
		PaymentDate:           model.PaymentDate,
		Version:               model.Version,
		CreatedAt:             model.CreatedAt,
		UpdatedAt:             model.UpdatedAt,
	})
}
