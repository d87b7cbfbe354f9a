package valueobjects

import "fmt"

// Money stores amounts in poisha (1 BDT = 100 poisha) to avoid floating
// point drift between the local records and the gateway.
type Money struct {
	amountInPoisha int64
	currency       string
}

func NewMoney(amountInPoisha int64, currency string) Money {
	if currency == "" {
		currency = "BDT"
	}
	return Money{
		amountInPoisha: amountInPoisha,
		currency:       currency,
	}
}

// NewMoneyFromTaka converts a decimal taka amount into Money, rounding to
// the nearest poisha.
func NewMoneyFromTaka(amount float64, currency string) Money {
	poisha := int64(amount*100 + 0.5)
	if amount < 0 {
		poisha = int64(amount*100 - 0.5)
	}
	return NewMoney(poisha, currency)
}

func (m Money) AmountInPoisha() int64 {
	return m.amountInPoisha
}

func (m Money) Currency() string {
	return m.currency
}

func (m Money) AmountInTaka() float64 {
	return float64(m.amountInPoisha) / 100.0
}

// FormatAmount renders the amount with exactly two decimal places, the
// shape the checkout gateway requires.
func (m Money) FormatAmount() string {
	return fmt.Sprintf("%.2f", m.AmountInTaka())
}

func (m Money) Equals(other Money) bool {
	return m.amountInPoisha == other.amountInPoisha && m.currency == other.currency
}

func (m Money) IsPositive() bool {
	return m.amountInPoisha > 0
}

func (m Money) String() string {
	return fmt.Sprintf("%.2f %s", m.AmountInTaka(), m.currency)
}
