package jetstream

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/feral-file/ff-propfi-ledger/internal/adapter"
	"github.com/feral-file/ff-propfi-ledger/internal/domain"
	"github.com/feral-file/ff-propfi-ledger/internal/logger"
	"github.com/feral-file/ff-propfi-ledger/internal/messaging"
)

// SubscriberConfig holds the configuration of a durable event consumer
type SubscriberConfig struct {
	Config
	ConsumerName string
	AckWait      time.Duration
	MaxDeliver   int
}

type subscriber struct {
	nc     adapter.NatsConn
	js     adapter.JetStream
	json   adapter.JSON
	config SubscriberConfig
}

// NewSubscriber connects to NATS for consuming ledger events
func NewSubscriber(cfg SubscriberConfig, natsJS adapter.NatsJetStream, jsonAdapter adapter.JSON) (messaging.Subscriber, error) {
	nc, js, err := natsJS.Connect(cfg.URL, connectOptions(cfg.Config)...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	return &subscriber{
		nc:     nc,
		js:     js,
		json:   jsonAdapter,
		config: cfg,
	}, nil
}

// SubscribeEvents consumes the stream through a durable consumer. Only one message is
// outstanding at a time, so a redelivered event is handled before any later one.
func (s *subscriber) SubscribeEvents(ctx context.Context, handler messaging.EventHandler) error {
	logger.InfoCtx(ctx, "Starting event subscription",
		zap.String("stream", s.config.StreamName),
		zap.String("consumer", s.config.ConsumerName))

	consumerConfig := jetstream.ConsumerConfig{
		Durable:       s.config.ConsumerName,
		AckPolicy:     jetstream.AckExplicitPolicy,
		AckWait:       s.config.AckWait,
		MaxDeliver:    s.config.MaxDeliver,
		MaxAckPending: 1,
		FilterSubject: SubjectWildcard,
	}

	consumer, err := s.js.CreateOrUpdateConsumer(ctx, s.config.StreamName, consumerConfig)
	if err != nil {
		return fmt.Errorf("failed to create/update consumer: %w", err)
	}

	consumerInfo, err := consumer.Info(ctx)
	if err != nil {
		return fmt.Errorf("failed to get consumer info: %w", err)
	}
	logger.InfoCtx(ctx, "Consumer created/retrieved",
		zap.String("consumer", consumerInfo.Name),
		zap.Uint64("pending", consumerInfo.NumPending))

	msgChan := make(chan adapter.Message, 1)
	sub, err := consumer.Consume(func(msg adapter.Message) {
		select {
		case msgChan <- msg:
		case <-ctx.Done():
		}
	})
	if err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}
	defer sub.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Stopping event subscription")
			return ctx.Err()
		case msg := <-msgChan:
			s.handleMessage(ctx, msg, handler)
		}
	}
}

// handleMessage runs handler for one message and settles it
func (s *subscriber) handleMessage(ctx context.Context, msg adapter.Message, handler messaging.EventHandler) {
	var deliveries uint64
	if metadata, err := msg.Metadata(); err == nil {
		deliveries = metadata.NumDelivered
	}

	var event domain.LedgerEvent
	if err := s.json.Unmarshal(msg.Data(), &event); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("message", "Failed to unmarshal event"), zap.String("subject", msg.Subject()))
		// Unparseable data never becomes valid
		if err := msg.Term(); err != nil {
			logger.ErrorCtx(ctx, err, zap.String("message", "Failed to terminate message"))
		}
		return
	}

	ctx = logger.WithFields(ctx,
		zap.String("eventID", event.EventID),
		zap.Uint64("sequence", event.Sequence),
		zap.Uint64("deliveryCount", deliveries))

	err := handler(ctx, &event)
	switch {
	case err == nil:
		if err := msg.Ack(); err != nil {
			logger.ErrorCtx(ctx, err, zap.String("message", "Failed to ACK message"))
		}
	case errors.Is(err, messaging.ErrPermanent):
		logger.ErrorCtx(ctx, err, zap.String("message", "Dropping event"))
		if err := msg.Term(); err != nil {
			logger.ErrorCtx(ctx, err, zap.String("message", "Failed to terminate message"))
		}
	default:
		logger.WarnCtx(ctx, "Event handling failed, requesting redelivery", zap.Error(err))
		if err := msg.Nak(); err != nil {
			logger.ErrorCtx(ctx, err, zap.String("message", "Failed to NAK message"))
		}
	}
}

// Close drains and closes the NATS connection
func (s *subscriber) Close() {
	if s.nc == nil {
		return
	}

	if err := s.nc.Drain(); err != nil {
		logger.Warn("Failed to drain NATS connection", zap.Error(err))
		s.nc.Close()
	}
}
