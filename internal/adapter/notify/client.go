package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/shopline/storefront/internal/domain/model"
)

// TooManyRequestsError represents rate limiting signal from the
// receiving endpoint.
type TooManyRequestsError struct {
	RetryAfter time.Duration
}

func (e TooManyRequestsError) Error() string {
	return fmt.Sprintf("too many requests, retry after %s", e.RetryAfter)
}

// Sender delivers order events to an external endpoint.
type Sender interface {
	Send(ctx context.Context, event model.OrderEvent) error
}

// HTTPSender implements Sender via an HTTP webhook.
type HTTPSender struct {
	endpoint   *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// payload mirrors the JSON body posted to the webhook.
type payload struct {
	OrderID     string `json:"orderId"`
	OrderNumber string `json:"orderNumber"`
	Action      string `json:"action"`
	Status      string `json:"status"`
	ActorID     string `json:"actorId"`
	OccurredAt  string `json:"occurredAt"`
}

// NewHTTPSender creates an HTTP webhook sender with default timeout.
func NewHTTPSender(endpoint string, logger *slog.Logger) (*HTTPSender, error) {
	parsed, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse webhook url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("webhook url must be absolute")
	}
	return &HTTPSender{
		endpoint: parsed,
		logger:   logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// Send posts the event as JSON. Any 2xx response counts as delivered.
func (c *HTTPSender) Send(ctx context.Context, event model.OrderEvent) error {
	body, err := json.Marshal(payload{
		OrderID:     event.OrderID,
		OrderNumber: event.OrderNumber,
		Action:      string(event.Action),
		Status:      string(event.Status),
		ActorID:     event.ActorID,
		OccurredAt:  event.OccurredAt.Format(time.RFC3339),
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusTooManyRequests:
		retryAfter := parseRetryAfter(resp.Header.Get("Retry-After"))
		return TooManyRequestsError{RetryAfter: retryAfter}
	default:
		respBody, _ := io.ReadAll(resp.Body)
		c.logger.Error("webhook request failed", slog.Int("status", resp.StatusCode), slog.String("body", string(respBody)))
		return fmt.Errorf("webhook error: %s", resp.Status)
	}
}

// NoopSender drops events. Used when no webhook endpoint is configured.
type NoopSender struct{}

func (NoopSender) Send(context.Context, model.OrderEvent) error { return nil }

func parseRetryAfter(header string) time.Duration {
	if header == "" {
		return 5 * time.Second
	}
	if seconds, err := strconv.Atoi(header); err == nil {
		return time.Duration(seconds) * time.Second
	}
	if t, err := http.ParseTime(header); err == nil {
		return time.Until(t)
	}
	return 5 * time.Second
}
