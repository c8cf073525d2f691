package notifier

import (
	"context"
	"errors"
	"fmt"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/feral-file/ff-propfi-ledger/internal/domain"
	"github.com/feral-file/ff-propfi-ledger/internal/logger"
	"github.com/feral-file/ff-propfi-ledger/internal/messaging"
	"github.com/feral-file/ff-propfi-ledger/internal/webhook"
)

// Config holds the configuration for the event notifier
type Config struct {
	Endpoints []webhook.Endpoint
	// Workers bounds concurrent deliveries across endpoints
	Workers int
}

// Notifier defines the interface for the event notifier
//
//go:generate mockgen -source=notifier.go -destination=../mocks/notifier.go -package=mocks -mock_names=Notifier=MockNotifier
type Notifier interface {
	// Run consumes ledger events until ctx is cancelled
	Run(ctx context.Context) error
	// HandleEvent delivers one ledger event to every matching endpoint
	HandleEvent(ctx context.Context, event *domain.LedgerEvent) error
	// Close stops the worker pool and the subscriber
	Close()
}

type notifier struct {
	subscriber messaging.Subscriber
	deliverer  webhook.Deliverer
	pool       pond.Pool
	config     Config
}

// NewNotifier creates a new event notifier
func NewNotifier(cfg Config, sub messaging.Subscriber, deliverer webhook.Deliverer) Notifier {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	return &notifier{
		subscriber: sub,
		deliverer:  deliverer,
		pool:       pond.NewPool(cfg.Workers),
		config:     cfg,
	}
}

// Run starts the event notifier
func (n *notifier) Run(ctx context.Context) error {
	logger.InfoCtx(ctx, "Starting event notifier", zap.Int("endpoints", len(n.config.Endpoints)))

	err := n.subscriber.SubscribeEvents(ctx, n.HandleEvent)
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("subscription failed: %w", err)
	}

	logger.InfoCtx(ctx, "Event notifier stopped")
	return nil
}

// HandleEvent fans the event out to the matching endpoints and waits for all of them.
// Any failed delivery fails the event so the broker redelivers it.
func (n *notifier) HandleEvent(ctx context.Context, event *domain.LedgerEvent) error {
	webhookEvent := webhook.NewWebhookEvent(event)

	var endpoints []webhook.Endpoint
	for _, endpoint := range n.config.Endpoints {
		if endpoint.Matches(webhookEvent.EventType) {
			endpoints = append(endpoints, endpoint)
		}
	}
	if len(endpoints) == 0 {
		logger.DebugCtx(ctx, "No endpoint subscribed to event",
			zap.String("eventID", event.EventID),
			zap.String("eventType", webhookEvent.EventType))
		return nil
	}

	errs := make([]error, len(endpoints))
	group := n.pool.NewGroup()
	for i, endpoint := range endpoints {
		i, endpoint := i, endpoint
		group.Submit(func() {
			if _, err := n.deliverer.Deliver(ctx, endpoint, webhookEvent); err != nil {
				errs[i] = fmt.Errorf("%s: %w", endpoint.URL, err)
			}
		})
	}
	if err := group.Wait(); err != nil {
		return fmt.Errorf("failed to wait for deliveries: %w", err)
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("failed to deliver event %s: %w", event.EventID, err)
	}

	logger.InfoCtx(ctx, "Event delivered",
		zap.String("eventID", event.EventID),
		zap.Uint64("sequence", event.Sequence),
		zap.Int("endpoints", len(endpoints)))
	return nil
}

// Close stops the worker pool and the subscriber
func (n *notifier) Close() {
	n.pool.StopAndWait()
	n.subscriber.Close()
}
