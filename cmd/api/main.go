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
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/feral-file/ff-propfi-ledger/internal/adapter"
	"github.com/feral-file/ff-propfi-ledger/internal/api/middleware"
	"github.com/feral-file/ff-propfi-ledger/internal/api/server"
	"github.com/feral-file/ff-propfi-ledger/internal/api/shared/executor"
	"github.com/feral-file/ff-propfi-ledger/internal/config"
	"github.com/feral-file/ff-propfi-ledger/internal/currency"
	"github.com/feral-file/ff-propfi-ledger/internal/derivation"
	"github.com/feral-file/ff-propfi-ledger/internal/ledger"
	"github.com/feral-file/ff-propfi-ledger/internal/logger"
	jsprovider "github.com/feral-file/ff-propfi-ledger/internal/providers/jetstream"
	"github.com/feral-file/ff-propfi-ledger/internal/relay"
	"github.com/feral-file/ff-propfi-ledger/internal/shareunit"
	"github.com/feral-file/ff-propfi-ledger/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "api-server",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting PropFi ledger API")

	dataStore := openStore(ctx, cfg.Database)

	programID, err := cfg.Ledger.Program()
	if err != nil {
		logger.FatalCtx(ctx, "Invalid program id", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Ledger program", zap.String("program_id", programID.String()))

	// Initialize adapters
	clock := adapter.NewClock()
	jsonAdapter := adapter.NewJSON()

	// Wire the ledger
	deriver := derivation.NewDeriver(programID)
	shareUnits := shareunit.NewLedger(dataStore, deriver)
	bank := currency.NewBank(dataStore)
	propertyLedger := ledger.NewLedger(dataStore, deriver, shareUnits, bank, clock, jsonAdapter)
	exec := executor.NewExecutor(propertyLedger, shareUnits, bank, dataStore)

	errCh := make(chan error, 2)

	// An embedded relay publishes the outbox from this process, the only option for the memory store
	if cfg.Relay.Embedded && cfg.NATS.URL != "" {
		publisher, err := jsprovider.NewPublisher(ctx, jsprovider.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
		}, adapter.NewNatsJetStream(), jsonAdapter)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to create publisher", zap.Error(err))
		}

		eventRelay := relay.NewRelay(publisher, dataStore, relay.Config{
			Name:         cfg.Relay.Name,
			PollInterval: cfg.Relay.PollInterval,
			BatchSize:    cfg.Relay.BatchSize,
		}, clock)
		defer eventRelay.Close()

		go func() {
			if err := eventRelay.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				errCh <- err
			}
		}()
		logger.InfoCtx(ctx, "Embedded event relay started", zap.String("stream", cfg.NATS.StreamName))
	}

	rateLimit := middleware.RateLimitConfig{
		RequestsPerSecond: cfg.Auth.RateLimit.RequestsPerSecond,
		Burst:             cfg.Auth.RateLimit.Burst,
	}
	var replayGuard middleware.ReplayGuard
	if cfg.Auth.RateLimit.RedisAddr != "" {
		redisClient := adapter.NewRedisClient(adapter.RedisOptions{
			Addr:     cfg.Auth.RateLimit.RedisAddr,
			Password: cfg.Auth.RateLimit.RedisPassword,
			DB:       cfg.Auth.RateLimit.RedisDB,
		})
		defer func() {
			if err := redisClient.Close(); err != nil {
				logger.Warn("Failed to close redis client", zap.Error(err))
			}
		}()

		// An unreachable redis is not fatal, the limiter falls back to local buckets per request
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.WarnCtx(ctx, "Redis unreachable at startup", zap.Error(err), zap.String("addr", cfg.Auth.RateLimit.RedisAddr))
		}
		rateLimit.Distributed = redisClient.NewRateLimiter()
		rateLimit.KeyPrefix = cfg.Auth.RateLimit.RedisKeyPrefix
		replayGuard = middleware.NewRedisReplayGuard(redisClient, cfg.Auth.ReplayKeyPrefix, clock)
		logger.InfoCtx(ctx, "Using shared rate limit and replay guard", zap.String("addr", cfg.Auth.RateLimit.RedisAddr))
	}

	// Create server config
	serverConfig := server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
			APIKeys:      cfg.Auth.APIKeys,
		},
		SignerMaxSkew: cfg.Auth.SignerMaxSkew,
		SignerReplay:  replayGuard,
		RateLimit:     rateLimit,
	}

	srv := server.New(serverConfig, exec, clock)

	// Start server in a goroutine
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.FatalCtx(shutdownCtx, "Server forced to shutdown", zap.Error(err))
	}

	logger.Info("API server stopped")
}

// openStore returns the configured store. The memory driver keeps everything in process.
func openStore(ctx context.Context, cfg config.DatabaseConfig) store.Store {
	if cfg.Driver == config.DatabaseDriverMemory {
		logger.WarnCtx(ctx, "Using in-memory store, state is lost on restart")
		return store.NewMemoryStore()
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Host))
	}

	if err := store.ConfigureConnectionPool(db, cfg.MaxOpenConns, cfg.MaxIdleConns, cfg.ConnMaxLifetime, cfg.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.MaxIdleConns),
	)

	return store.NewPGStore(db)
}
