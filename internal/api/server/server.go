package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/feral-file/ff-propfi-ledger/internal/adapter"
	"github.com/feral-file/ff-propfi-ledger/internal/api/middleware"
	"github.com/feral-file/ff-propfi-ledger/internal/api/rest"
	"github.com/feral-file/ff-propfi-ledger/internal/api/shared/executor"
	"github.com/feral-file/ff-propfi-ledger/internal/logger"
)

// Config holds the server configuration
type Config struct {
	Debug         bool
	Host          string
	Port          int
	ReadTimeout   time.Duration
	WriteTimeout  time.Duration
	IdleTimeout   time.Duration
	Auth          middleware.AuthConfig
	SignerMaxSkew time.Duration
	// SignerReplay is shared between replicas when set; nil keeps used signatures in process
	SignerReplay  middleware.ReplayGuard
	RateLimit     middleware.RateLimitConfig
}

// Server wraps the HTTP server
type Server struct {
	config     Config
	executor   executor.Executor
	clock      adapter.Clock
	httpServer *http.Server
}

// New creates a new API server
func New(cfg Config, exec executor.Executor, clock adapter.Clock) *Server {
	return &Server{
		config:   cfg,
		executor: exec,
		clock:    clock,
	}
}

// Router builds the gin engine with middlewares and routes
func (s *Server) Router() (*gin.Engine, error) {
	if s.config.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	authenticator, err := middleware.NewAuthenticator(s.config.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create authenticator: %w", err)
	}

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.SetupCORS())

	restHandler := rest.NewHandler(s.config.Debug, s.executor)
	rest.SetupRoutes(router, restHandler, rest.DefaultRouteConfig(
		middleware.SignerConfig{MaxSkew: s.config.SignerMaxSkew, Clock: s.clock, Replay: s.config.SignerReplay},
		middleware.NewRateLimiter(s.config.RateLimit),
		authenticator,
	))

	return router, nil
}

// Start initializes and starts the HTTP server
func (s *Server) Start() error {
	router, err := s.Router()
	if err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	logger.Info("Starting API server",
		zap.String("address", addr),
	)

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Info("Shutting down API server")

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
	}

	return nil
}
