package valueobjects

import "fmt"

type PaymentMethod string

const (
	PaymentMethodBkash PaymentMethod = "bKash"
	PaymentMethodNagad PaymentMethod = "Nagad"
	PaymentMethodBank  PaymentMethod = "Bank"
	PaymentMethodCash  PaymentMethod = "Cash"
)

func NewPaymentMethod(method string) (PaymentMethod, error) {
	pm := PaymentMethod(method)
	if !pm.IsValid() {
		return "", fmt.Errorf("invalid payment method: %s", method)
	}
	return pm, nil
}

func (pm PaymentMethod) IsValid() bool {
	switch pm {
	case PaymentMethodBkash, PaymentMethodNagad, PaymentMethodBank, PaymentMethodCash:
		return true
	default:
		return false
	}
}

// IsOnline returns true when the method settles through the checkout
// gateway rather than at the front desk.
func (pm PaymentMethod) IsOnline() bool {
	return pm == PaymentMethodBkash || pm == PaymentMethodNagad
}

func (pm PaymentMethod) String() string {
	return string(pm)
}
