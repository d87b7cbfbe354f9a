package payment

import "context"

type Repository interface {
	Create(ctx context.Context, payment *Payment) error
	Update(ctx context.Context, payment *Payment) error
	GetByID(ctx context.Context, id uint) (*Payment, error)
	GetByProviderPaymentID(ctx context.Context, providerPaymentID string) (*Payment, error)
	ListByBookingID(ctx context.Context, bookingID uint) ([]*Payment, error)
}
