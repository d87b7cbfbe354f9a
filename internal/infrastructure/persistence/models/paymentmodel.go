package models

import "time"

// PaymentModel is the gorm persistence model for checkout attempts.
// Amounts are stored in poisha.
type PaymentModel struct {
	ID                    uint   `gorm:"primaryKey"`
	BookingID             uint   `gorm:"index;not null"`
	PaymentMethod         string `gorm:"size:32;not null"`
	AmountInPoisha        int64  `gorm:"not null"`
	Currency              string `gorm:"size:8;not null;default:BDT"`
	Status                string `gorm:"size:32;not null;index"`
	ProviderPaymentID     string `gorm:"size:128;uniqueIndex"`
	TransactionID         *string `gorm:"size:128"`
	MerchantInvoiceNumber string `gorm:"size:64;index"`
	CustomerName          string `gorm:"size:255;not null"`
	CustomerPhone         string `gorm:"size:32;not null"`
	PaymentDate           *time.Time
	Version               int `gorm:"not null;default:0"`
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

func (PaymentModel) TableName() string {
	return "payments"
}
