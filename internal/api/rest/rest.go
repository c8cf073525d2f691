package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-propfi-ledger/internal/api/middleware"
)

// RouteConfig holds the middlewares protecting REST routes
type RouteConfig struct {
	// Signer authenticates ledger operation callers
	Signer gin.HandlerFunc
	// RateLimit is applied after signer authentication
	RateLimit gin.HandlerFunc
	// Admin protects administrative routes
	Admin gin.HandlerFunc
}

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, cfg RouteConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	v1 := router.Group("/api/v1")
	{
		// Public read access
		v1.GET("/properties", handler.ListProperties)
		v1.GET("/properties/:address", handler.GetProperty)
		v1.GET("/properties/:address/record", handler.GetPropertyRecord)
		v1.GET("/accounts/:address/balances", handler.GetBalances)
		v1.GET("/events", handler.GetEvents)

		// Ledger operations (signed by the caller)
		signed := v1.Group("", cfg.Signer, cfg.RateLimit)
		signed.POST("/properties", handler.InitializeProperty)
		signed.PATCH("/properties/:address", handler.UpdateProperty)
		signed.POST("/properties/:address/listing", handler.ListProperty)
		signed.POST("/properties/:address/purchases", handler.BuyProperty)
		signed.POST("/properties/:address/rent/deposits", handler.DepositRent)
		signed.POST("/properties/:address/rent/distributions", handler.DistributeRent)

		// Administration (JWT or API key)
		admin := v1.Group("/admin", cfg.Admin)
		admin.POST("/properties/:address/shares", handler.BuyShares)
		admin.POST("/accounts/:address/fund", handler.FundAccount)
	}
}

// DefaultRouteConfig builds the route middlewares from their configurations
func DefaultRouteConfig(signer middleware.SignerConfig, limiter *middleware.RateLimiter, admin *middleware.Authenticator) RouteConfig {
	return RouteConfig{
		Signer:    middleware.Signer(signer),
		RateLimit: middleware.RateLimit(limiter),
		Admin:     middleware.Auth(admin),
	}
}
