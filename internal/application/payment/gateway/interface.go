// Package gateway defines the tokenized checkout contract the payment
// use cases depend on. The bKash implementation lives in
// infrastructure/bkash.
package gateway

import "context"

// CreateCheckoutRequest starts a checkout session with the provider.
type CreateCheckoutRequest struct {
	// Amount is already formatted with two decimal places.
	Amount                string
	Currency              string
	MerchantInvoiceNumber string
	PayerReference        string
}

// CreateCheckoutResponse carries the provider-assigned session. Both
// fields are mandatory; the client rejects responses missing either.
type CreateCheckoutResponse struct {
	PaymentID string
	BkashURL  string
}

// ExecuteCheckoutResponse is the settlement result of a checkout session.
// TransactionStatus is always "Completed" here, anything else is an error.
type ExecuteCheckoutResponse struct {
	PaymentID         string
	TrxID             string
	TransactionStatus string
	Amount            string
	CustomerMsisdn    string
}

// StatusResponse carries the provider's view of a session. Raw holds the
// full response body and is returned to callers unchanged.
type StatusResponse struct {
	PaymentID         string
	TrxID             string
	TransactionStatus string
	Raw               map[string]interface{}
}

// CheckoutGateway is the three-call tokenized checkout surface.
type CheckoutGateway interface {
	CreateCheckout(ctx context.Context, req CreateCheckoutRequest) (*CreateCheckoutResponse, error)
	ExecuteCheckout(ctx context.Context, paymentID string) (*ExecuteCheckoutResponse, error)
	QueryStatus(ctx context.Context, paymentID string) (*StatusResponse, error)
}
