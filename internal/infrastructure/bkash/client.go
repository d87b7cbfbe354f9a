package bkash

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/anisurarzu/FTB-Server-Demo/internal/application/payment/gateway"
	"github.com/anisurarzu/FTB-Server-Demo/internal/shared/config"
	"github.com/anisurarzu/FTB-Server-Demo/internal/shared/errors"
	"github.com/anisurarzu/FTB-Server-Demo/internal/shared/logger"
)

const defaultCheckoutTimeout = 15 * time.Second

// Client implements gateway.CheckoutGateway against the bKash tokenized
// checkout API.
type Client struct {
	cfg    config.BkashConfig
	tokens *TokenProvider
	client *http.Client
	logger logger.Interface
}

var _ gateway.CheckoutGateway = (*Client)(nil)

func NewClient(cfg config.BkashConfig, tokens *TokenProvider, log logger.Interface) *Client {
	timeout := defaultCheckoutTimeout
	if cfg.CheckoutTimeoutSeconds > 0 {
		timeout = time.Duration(cfg.CheckoutTimeoutSeconds) * time.Second
	}
	return &Client{
		cfg:    cfg,
		tokens: tokens,
		client: &http.Client{Timeout: timeout},
		logger: log,
	}
}

type createResponse struct {
	PaymentID    string `json:"paymentID"`
	BkashURL     string `json:"bkashURL"`
	StatusCode   string `json:"statusCode"`
	ErrorMessage string `json:"errorMessage"`
}

func (c *Client) CreateCheckout(ctx context.Context, req gateway.CreateCheckoutRequest) (*gateway.CreateCheckoutResponse, error) {
	payload := map[string]string{
		"mode":                    "0011",
		"payerReference":          req.PayerReference,
		"callbackURL":             c.cfg.CallbackURL,
		"amount":                  req.Amount,
		"currency":                req.Currency,
		"intent":                  "sale",
		"merchantInvoiceNumber":   req.MerchantInvoiceNumber,
		"merchantAssociationInfo": "Hotel Booking",
	}

	var resp createResponse
	if err := c.post(ctx, "/tokenized/checkout/create", payload, &resp); err != nil {
		return nil, err
	}

	if resp.BkashURL == "" || resp.PaymentID == "" {
		c.logger.Errorw("bKash create response incomplete",
			"invoiceNo", req.MerchantInvoiceNumber,
			"errorMessage", resp.ErrorMessage)
		return nil, errors.NewGatewayError("payment initiation failed", resp.ErrorMessage)
	}

	return &gateway.CreateCheckoutResponse{
		PaymentID: resp.PaymentID,
		BkashURL:  resp.BkashURL,
	}, nil
}

type executeResponse struct {
	PaymentID         string `json:"paymentID"`
	TrxID             string `json:"trxID"`
	TransactionStatus string `json:"transactionStatus"`
	Amount            string `json:"amount"`
	CustomerMsisdn    string `json:"customerMsisdn"`
	ErrorMessage      string `json:"errorMessage"`
}

func (c *Client) ExecuteCheckout(ctx context.Context, paymentID string) (*gateway.ExecuteCheckoutResponse, error) {
	var resp executeResponse
	if err := c.post(ctx, "/tokenized/checkout/execute", map[string]string{"paymentID": paymentID}, &resp); err != nil {
		return nil, err
	}

	if resp.TransactionStatus != "Completed" {
		msg := resp.ErrorMessage
		if msg == "" {
			msg = "payment not completed"
		}
		c.logger.Warnw("bKash execute not completed",
			"paymentID", paymentID,
			"transactionStatus", resp.TransactionStatus,
			"errorMessage", resp.ErrorMessage)
		return nil, errors.NewGatewayError("payment execution failed", msg)
	}

	return &gateway.ExecuteCheckoutResponse{
		PaymentID:         resp.PaymentID,
		TrxID:             resp.TrxID,
		TransactionStatus: resp.TransactionStatus,
		Amount:            resp.Amount,
		CustomerMsisdn:    resp.CustomerMsisdn,
	}, nil
}

func (c *Client) QueryStatus(ctx context.Context, paymentID string) (*gateway.StatusResponse, error) {
	var raw map[string]interface{}
	if err := c.post(ctx, "/tokenized/checkout/payment/status", map[string]string{"paymentID": paymentID}, &raw); err != nil {
		return nil, err
	}

	status, _ := raw["transactionStatus"].(string)
	if status == "" {
		return nil, errors.NewGatewayError("payment verification failed", "response missing transactionStatus")
	}

	trxID, _ := raw["trxID"].(string)
	respPaymentID, _ := raw["paymentID"].(string)
	return &gateway.StatusResponse{
		PaymentID:         respPaymentID,
		TrxID:             trxID,
		TransactionStatus: status,
		Raw:               raw,
	}, nil
}

// post runs one authenticated checkout call and decodes the body into
// out. Non-2xx responses are still decoded first so the provider's
// errorMessage can be surfaced.
func (c *Client) post(ctx context.Context, path string, payload interface{}, out interface{}) error {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return errors.NewGatewayError("gateway request failed", err.Error())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return errors.NewGatewayError("gateway request failed", err.Error())
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("authorization", token)
	req.Header.Set("x-app-key", c.cfg.AppKey)

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Errorw("bKash request failed", "path", path, "error", err)
		return errors.NewGatewayError("gateway request failed")
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.NewGatewayError("gateway request failed",
			fmt.Sprintf("malformed response from %s", path))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Errorw("bKash request rejected", "path", path, "status", resp.StatusCode)
		return errors.NewGatewayError("gateway request failed",
			fmt.Sprintf("%s returned status %d", path, resp.StatusCode))
	}

	return nil
}
