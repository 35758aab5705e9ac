package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"restaurant-booking/pkg/utils"
)

// Client talks to the external payment gateway. Both endpoints take the full
// PAN and an amount and answer 200 on success; any other status (or a
// transport error) is a gateway failure. Calls carry a deadline so a hung
// gateway cannot pin a request forever.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

type chargeRequest struct {
	PAN    string  `json:"pan"`
	Amount float64 `json:"amount"`
}

func NewClient(config utils.GatewayConfig, log *zap.Logger) *Client {
	return &Client{
		baseURL: config.BaseURL,
		http: &http.Client{
			Timeout: time.Duration(config.TimeoutSeconds) * time.Second,
		},
		log: log.With(zap.String("component", "gateway")),
	}
}

// ReceiveMoney charges the card.
func (c *Client) ReceiveMoney(ctx context.Context, pan string, amount float64) error {
	return c.post(ctx, "/api/v1/receive-money/", pan, amount)
}

// ReturnMoney refunds the (already fined) amount to the card.
func (c *Client) ReturnMoney(ctx context.Context, pan string, amount float64) error {
	return c.post(ctx, "/api/v1/return-money/", pan, amount)
}

func (c *Client) post(ctx context.Context, path, pan string, amount float64) error {
	body, err := json.Marshal(chargeRequest{PAN: pan, Amount: amount})
	if err != nil {
		return fmt.Errorf("marshal gateway request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build gateway request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error("Gateway call failed",
			zap.Error(err),
			zap.String("path", path),
			zap.Float64("amount", amount),
		)
		return fmt.Errorf("gateway call %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Warn("Gateway rejected request",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.Float64("amount", amount),
		)
		return fmt.Errorf("gateway call %s: unexpected status %d", path, resp.StatusCode)
	}

	return nil
}
