// Package repository contains gorm-backed implementations of the domain
// repository interfaces.
package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/anisurarzu/FTB-Server-Demo/internal/domain/payment"
	"github.com/anisurarzu/FTB-Server-Demo/internal/infrastructure/persistence/mappers"
	"github.com/anisurarzu/FTB-Server-Demo/internal/infrastructure/persistence/models"
	"github.com/anisurarzu/FTB-Server-Demo/internal/shared/db"
	"github.com/anisurarzu/FTB-Server-Demo/internal/shared/errors"
)

type PaymentRepository struct {
	db     *gorm.DB
	mapper *mappers.PaymentMapper
}

var _ payment.Repository = (*PaymentRepository)(nil)

func NewPaymentRepository(database *gorm.DB) *PaymentRepository {
	return &PaymentRepository{
		db:     database,
		mapper: mappers.NewPaymentMapper(),
	}
}

func (r *PaymentRepository) Create(ctx context.Context, p *payment.Payment) error {
	model := r.mapper.ToModel(p)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return err
	}
	p.SetID(model.ID)
	return nil
}

func (r *PaymentRepository) Update(ctx context.Context, p *payment.Payment) error {
	model := r.mapper.ToModel(p)
	return db.GetTxFromContext(ctx, r.db).Save(model).Error
}

func (r *PaymentRepository) GetByID(ctx context.Context, id uint) (*payment.Payment, error) {
	var model models.PaymentModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("payment not found")
		}
		return nil, err
	}
	return r.mapper.ToDomain(&model), nil
}

func (r *PaymentRepository) GetByProviderPaymentID(ctx context.Context, providerPaymentID string) (*payment.Payment, error) {
	var model models.PaymentModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("provider_payment_id = ?", providerPaymentID).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("payment not found")
		}
		return nil, err
	}
	return r.mapper.ToDomain(&model), nil
}

func (r *PaymentRepository) ListByBookingID(ctx context.Context, bookingID uint) ([]*payment.Payment, error) {
	var rows []models.PaymentModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("booking_id = ?", bookingID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	payments := make([]*payment.Payment, 0, len(rows))
	for i := range rows {
		payments = append(payments, r.mapper.ToDomain(&rows[i]))
	}
	return payments, nil
}
