package valueobjects

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "Pending"
	PaymentStatusCompleted PaymentStatus = "Completed"
	PaymentStatusFailed    PaymentStatus = "Failed"
	PaymentStatusRefunded  PaymentStatus = "Refunded"
)

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed, PaymentStatusRefunded:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the checkout attempt can still transition.
// Completed, Failed and Refunded are final.
func (s PaymentStatus) IsTerminal() bool {
	return s == PaymentStatusCompleted || s == PaymentStatusFailed || s == PaymentStatusRefunded
}

func (s PaymentStatus) String() string {
	return string(s)
}
