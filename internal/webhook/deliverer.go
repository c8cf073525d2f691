package webhook

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/feral-file/ff-propfi-ledger/internal/adapter"
	"github.com/feral-file/ff-propfi-ledger/internal/logger"
)

// UserAgent is sent with every delivery
const UserAgent = "FF-PropFi-Webhook/1.0"

// DelivererConfig holds the retry policy of webhook deliveries
type DelivererConfig struct {
	MaxRetries      uint64
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// Deliverer posts signed webhook events to endpoints
//
//go:generate mockgen -source=deliverer.go -destination=../mocks/webhook.go -package=mocks -mock_names=Deliverer=MockDeliverer
type Deliverer interface {
	// Deliver posts event to endpoint, retrying transient failures.
	// An error is returned only when every attempt failed or the failure is permanent.
	Deliver(ctx context.Context, endpoint Endpoint, event WebhookEvent) (DeliveryResult, error)
}

type deliverer struct {
	httpClient adapter.HTTPClient
	json       adapter.JSON
	clock      adapter.Clock
	cfg        DelivererConfig
}

// NewDeliverer creates a new webhook deliverer
func NewDeliverer(httpClient adapter.HTTPClient, json adapter.JSON, clock adapter.Clock, cfg DelivererConfig) Deliverer {
	if cfg.InitialInterval <= 0 {
		cfg.InitialInterval = 500 * time.Millisecond
	}
	if cfg.MaxInterval <= 0 {
		cfg.MaxInterval = 30 * time.Second
	}
	return &deliverer{
		httpClient: httpClient,
		json:       json,
		clock:      clock,
		cfg:        cfg,
	}
}

func (d *deliverer) Deliver(ctx context.Context, endpoint Endpoint, event WebhookEvent) (DeliveryResult, error) {
	var result DeliveryResult

	operation := func() error {
		result.Attempts++
		timestamp := d.clock.Now().Unix()

		// Re-signed per attempt so the timestamp stays fresh
		payload, signature, err := GenerateSignedPayload(d.json, endpoint.Secret, event, timestamp)
		if err != nil {
			return backoff.Permanent(err)
		}

		headers := map[string]string{
			"Content-Type":         "application/json",
			"X-Webhook-Signature":  signature,
			"X-Webhook-Event-ID":   event.EventID,
			"X-Webhook-Event-Type": event.EventType,
			"X-Webhook-Timestamp":  strconv.FormatInt(timestamp, 10),
			"User-Agent":           UserAgent,
		}

		resp, err := d.httpClient.Post(ctx, endpoint.URL, headers, payload)
		if err != nil {
			return err
		}
		result.StatusCode = resp.StatusCode
		result.Body = string(resp.Body)

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return nil
		}

		err = fmt.Errorf("HTTP %d", resp.StatusCode)
		if !retryableStatus(resp.StatusCode) {
			return backoff.Permanent(err)
		}
		return err
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = d.cfg.InitialInterval
	bo.MaxInterval = d.cfg.MaxInterval
	bo.MaxElapsedTime = 0

	notify := func(err error, next time.Duration) {
		logger.WarnCtx(ctx, "Webhook delivery failed, retrying",
			zap.Error(err),
			zap.String("url", endpoint.URL),
			zap.String("eventID", event.EventID),
			zap.Int("attempt", result.Attempts),
			zap.Duration("retryIn", next))
	}

	err := backoff.RetryNotify(operation, backoff.WithContext(backoff.WithMaxRetries(bo, d.cfg.MaxRetries), ctx), notify)
	if err != nil {
		result.Error = err.Error()
		logger.ErrorCtx(ctx, errors.New("webhook delivery failed"),
			zap.Error(err),
			zap.String("url", endpoint.URL),
			zap.String("eventID", event.EventID),
			zap.Int("statusCode", result.StatusCode),
			zap.Int("attempts", result.Attempts))
		return result, err
	}

	result.Success = true
	logger.InfoCtx(ctx, "Webhook delivered",
		zap.String("url", endpoint.URL),
		zap.String("eventID", event.EventID),
		zap.Int("statusCode", result.StatusCode),
		zap.Int("attempts", result.Attempts))

	return result, nil
}

// retryableStatus reports whether a non-2xx status may succeed on a later attempt
func retryableStatus(status int) bool {
	switch {
	case status == http.StatusRequestTimeout, status == http.StatusTooManyRequests:
		return true
	case status >= 400 && status < 500:
		return false
	default:
		return true
	}
}
