package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/feral-file/ff-propfi-ledger/internal/adapter"
	"github.com/feral-file/ff-propfi-ledger/internal/config"
	"github.com/feral-file/ff-propfi-ledger/internal/logger"
	"github.com/feral-file/ff-propfi-ledger/internal/notifier"
	jsprovider "github.com/feral-file/ff-propfi-ledger/internal/providers/jetstream"
	"github.com/feral-file/ff-propfi-ledger/internal/webhook"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadEventNotifierConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "event-notifier",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.Info("Starting Event Notifier")

	if len(cfg.Webhooks.Endpoints) == 0 {
		logger.Warn("No webhook endpoints configured, events will be acknowledged without delivery")
	}

	// Initialize adapters
	jsonAdapter := adapter.NewJSON()

	subscriber, err := jsprovider.NewSubscriber(jsprovider.SubscriberConfig{
		Config: jsprovider.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
		},
		ConsumerName: cfg.NATS.ConsumerName,
		AckWait:      cfg.NATS.AckWait,
		MaxDeliver:   cfg.NATS.MaxDeliver,
	}, adapter.NewNatsJetStream(), jsonAdapter)
	if err != nil {
		logger.Fatal("Failed to create subscriber", zap.Error(err))
	}

	deliverer := webhook.NewDeliverer(
		adapter.NewHTTPClient(cfg.Webhooks.Timeout),
		jsonAdapter,
		adapter.NewClock(),
		webhook.DelivererConfig{MaxRetries: cfg.Webhooks.MaxRetries},
	)

	endpoints := make([]webhook.Endpoint, 0, len(cfg.Webhooks.Endpoints))
	for _, e := range cfg.Webhooks.Endpoints {
		endpoints = append(endpoints, webhook.Endpoint{
			URL:        e.URL,
			Secret:     e.Secret,
			EventTypes: e.EventTypes,
		})
	}

	eventNotifier := notifier.NewNotifier(notifier.Config{
		Endpoints: endpoints,
		Workers:   cfg.Webhooks.Workers,
	}, subscriber, deliverer)
	defer eventNotifier.Close()
	logger.Info("Event notifier created",
		zap.String("consumer", cfg.NATS.ConsumerName),
		zap.Int("endpoints", len(endpoints)))

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Setup signal handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		if err := eventNotifier.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			errCh <- err
		}
	}()

	// Wait for shutdown signal or error
	select {
	case sig := <-sigCh:
		logger.Info("Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.Error(err, zap.String("component", "notifier"))
		cancel()
	}

	// Give some time for in-flight deliveries
	time.Sleep(time.Second)

	logger.Info("Event Notifier stopped")
}
