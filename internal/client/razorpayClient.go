package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"newspulse-payments/internal/config"
	"time"

	"github.com/cenkalti/backoff/v4"
)

type RazorpayClient interface {
	CreateOrder(ctx context.Context, req *GatewayOrderRequest) (*GatewayOrder, error)
	FetchPayment(ctx context.Context, paymentID string) (*GatewayPayment, error)
}

type razorpayClientImpl struct {
	httpClient *http.Client
	baseApiURL string
	keyID      string
	keySecret  string
}

type GatewayOrderRequest struct {
	Amount   int64             `json:"amount"` // minor currency units
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt"`
	Notes    map[string]string `json:"notes,omitempty"`
}

type GatewayOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

type GatewayPayment struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"` // minor currency units
	Currency string `json:"currency"`
	Status   string `json:"status"`
	Method   string `json:"method"`
	Email    string `json:"email"`
	Contact  string `json:"contact"`
}

const maxGatewayRetries = 2 // 3 attempts total

func NewRazorpayClient(razorpayCfg *config.Razorpay) RazorpayClient {
	return &razorpayClientImpl{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		baseApiURL: razorpayCfg.BaseApiURL,
		keyID:      razorpayCfg.KeyID,
		keySecret:  razorpayCfg.KeySecret,
	}
}

func (c *razorpayClientImpl) CreateOrder(ctx context.Context, orderReq *GatewayOrderRequest) (*GatewayOrder, error) {
	body, err := json.Marshal(orderReq)
	if err != nil {
		return nil, fmt.Errorf("marshal order payload: %w", err)
	}

	var order GatewayOrder
	err = c.doWithRetry(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost,
			c.baseApiURL+"/v1/orders", bytes.NewReader(body))
		if err != nil {
			return backoff.Permanent(fmt.Errorf("http new request: %w", err))
		}
		req.Header.Set("Content-Type", "application/json")
		req.SetBasicAuth(c.keyID, c.keySecret)

		return c.send(req, &order)
	})
	if err != nil {
		return nil, fmt.Errorf("razorpay create order: %w", err)
	}

	return &order, nil
}

func (c *razorpayClientImpl) FetchPayment(ctx context.Context, paymentID string) (*GatewayPayment, error) {
	var payment GatewayPayment
	err := c.doWithRetry(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet,
			fmt.Sprintf("%s/v1/payments/%s", c.baseApiURL, paymentID), nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("http new request: %w", err))
		}
		req.SetBasicAuth(c.keyID, c.keySecret)

		return c.send(req, &payment)
	})
	if err != nil {
		return nil, fmt.Errorf("razorpay fetch payment %s: %w", paymentID, err)
	}

	return &payment, nil
}

// doWithRetry runs op with bounded exponential backoff. Transport errors and
// 5xx responses are transient; op wraps authoritative rejections in
// backoff.Permanent so they surface immediately.
func (c *razorpayClientImpl) doWithRetry(ctx context.Context, op func() error) error {
	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxGatewayRetries),
		ctx,
	)
	return backoff.Retry(op, policy)
}

func (c *razorpayClientImpl) send(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		err := fmt.Errorf("razorpay error %d: %s", resp.StatusCode, gatewayErrorMessage(b))
		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			// the gateway rejected the request; retrying will not help
			return backoff.Permanent(err)
		}
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return backoff.Permanent(fmt.Errorf("decode razorpay response: %w", err))
	}
	return nil
}

// gatewayErrorMessage pulls the description out of Razorpay's error envelope,
// falling back to the raw body.
func gatewayErrorMessage(body []byte) string {
	var envelope struct {
		Error struct {
			Description string `json:"description"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Description != "" {
		return envelope.Error.Description
	}
	return string(body)
}
