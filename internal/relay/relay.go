package relay

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/feral-file/ff-propfi-ledger/internal/adapter"
	"github.com/feral-file/ff-propfi-ledger/internal/logger"
	"github.com/feral-file/ff-propfi-ledger/internal/messaging"
	"github.com/feral-file/ff-propfi-ledger/internal/store"
)

// Config holds the configuration for the event relay
type Config struct {
	Name         string        // cursor name, one per relay deployment
	PollInterval time.Duration // wait between polls once the outbox is drained
	BatchSize    int
}

// Relay defines the interface for the outbox relay
//
//go:generate mockgen -source=relay.go -destination=../mocks/relay.go -package=mocks -mock_names=Relay=MockRelay
type Relay interface {
	// Run relays events until ctx is cancelled
	Run(ctx context.Context) error
	// RelayOnce publishes one batch of pending events and returns how many were published
	RelayOnce(ctx context.Context) (int, error)
	// Close closes the relay and cleans up resources
	Close()
}

// relay moves committed events from the store outbox to the message broker in sequence order
type relay struct {
	publisher messaging.Publisher
	store     store.Store
	config    Config
	clock     adapter.Clock
}

// NewRelay creates a new event relay
func NewRelay(
	pub messaging.Publisher,
	st store.Store,
	cfg Config,
	clock adapter.Clock,
) Relay {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = store.DefaultQueryLimit
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = time.Second
	}
	return &relay{
		publisher: pub,
		store:     st,
		config:    cfg,
		clock:     clock,
	}
}

// Run starts the event relay
func (r *relay) Run(ctx context.Context) error {
	ctx = logger.WithFields(ctx, zap.String("relay", r.config.Name))
	logger.InfoCtx(ctx, "Starting event relay",
		zap.Duration("pollInterval", r.config.PollInterval),
		zap.Int("batchSize", r.config.BatchSize))

	for {
		published, err := r.RelayOnce(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return ctx.Err()
			}
			logger.ErrorCtx(ctx, err, zap.Int("published", published))
		}

		// A full batch means more events are likely pending
		if err == nil && published >= r.config.BatchSize {
			continue
		}

		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Shutting down event relay")
			return ctx.Err()
		case <-r.clock.After(r.config.PollInterval):
		}
	}
}

// RelayOnce publishes pending events after the saved cursor. It stops at the first publish
// failure so that events are never published out of order; the cursor then points at the
// last published event and the next call resumes from there.
func (r *relay) RelayOnce(ctx context.Context) (int, error) {
	cursor, err := r.store.GetRelayCursor(ctx, r.config.Name)
	if err != nil {
		return 0, fmt.Errorf("failed to get relay cursor: %w", err)
	}

	events, err := r.store.GetLedgerEvents(ctx, store.LedgerEventQueryFilter{
		After: cursor,
		Limit: r.config.BatchSize,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to get ledger events: %w", err)
	}
	if len(events) == 0 {
		return 0, nil
	}

	published := 0
	last := cursor
	var publishErr error
	for _, event := range events {
		if err := r.publisher.PublishEvent(ctx, event); err != nil {
			publishErr = fmt.Errorf("failed to publish event %d: %w", event.Sequence, err)
			break
		}
		published++
		last = event.Sequence
	}

	if last != cursor {
		if err := r.store.SetRelayCursor(ctx, r.config.Name, last); err != nil {
			// Events after the stored cursor are republished and deduplicated by the broker
			return published, fmt.Errorf("failed to save relay cursor: %w", err)
		}
		logger.DebugCtx(ctx, "Relayed events", zap.Int("count", published), zap.Uint64("cursor", last))
	}

	return published, publishErr
}

// Close closes the relay and cleans up resources
func (r *relay) Close() {
	r.publisher.Close()
}
