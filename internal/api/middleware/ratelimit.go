package middleware

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis_rate/v10"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/feral-file/ff-propfi-ledger/internal/adapter"
	apierrors "github.com/feral-file/ff-propfi-ledger/internal/api/shared/errors"
	"github.com/feral-file/ff-propfi-ledger/internal/logger"
)

// RateLimitConfig holds the token bucket applied per caller
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
	// Distributed shares the budget across API replicas. Nil keeps buckets in process.
	Distributed adapter.RedisRateLimiter
	KeyPrefix   string
}

// RateLimiter keeps one token bucket per caller key
type RateLimiter struct {
	mu          sync.Mutex
	limiters    map[string]*rate.Limiter
	limit       rate.Limit
	burst       int
	distributed adapter.RedisRateLimiter
	redisLimit  redis_rate.Limit
	keyPrefix   string
}

// NewRateLimiter creates a per-caller rate limiter
func NewRateLimiter(cfg RateLimitConfig) *RateLimiter {
	r := &RateLimiter{
		limiters:    make(map[string]*rate.Limiter),
		limit:       rate.Limit(cfg.RequestsPerSecond),
		burst:       cfg.Burst,
		distributed: cfg.Distributed,
		keyPrefix:   cfg.KeyPrefix,
	}
	if cfg.RequestsPerSecond > 0 && cfg.Burst > 0 {
		// burst tokens refill over burst/rps seconds, the same rate as the local bucket
		r.redisLimit = redis_rate.Limit{
			Rate:   cfg.Burst,
			Burst:  cfg.Burst,
			Period: time.Duration(float64(cfg.Burst) / cfg.RequestsPerSecond * float64(time.Second)),
		}
	} else {
		r.distributed = nil
	}
	return r
}

// Reserve takes one token for key. It returns false and the seconds to wait when the bucket is empty.
// A failing distributed limiter falls back to the local bucket.
func (r *RateLimiter) Reserve(ctx context.Context, key string) (bool, int) {
	if r.distributed != nil {
		res, err := r.distributed.Allow(ctx, r.keyPrefix+key, r.redisLimit)
		if err == nil {
			if res.Allowed > 0 {
				return true, 0
			}
			return false, max(int(math.Ceil(res.RetryAfter.Seconds())), 1)
		}
		logger.WarnCtx(ctx, "Distributed rate limiter unavailable, using local bucket", zap.Error(err))
	}

	r.mu.Lock()
	limiter, ok := r.limiters[key]
	if !ok {
		limiter = rate.NewLimiter(r.limit, r.burst)
		r.limiters[key] = limiter
	}
	r.mu.Unlock()

	reservation := limiter.Reserve()
	if !reservation.OK() {
		return false, 1
	}
	delay := reservation.Delay()
	if delay == 0 {
		return true, 0
	}
	// Return the token so a rejected request does not drain the bucket
	reservation.Cancel()
	return false, int(math.Ceil(delay.Seconds()))
}

// RateLimit returns a gin middleware limiting each signer, or each client IP before signer
// authentication has run
func RateLimit(r *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		if signer, ok := SignerFromContext(c); ok {
			key = signer.String()
		}

		allowed, retryAfter := r.Reserve(c.Request.Context(), key)
		if !allowed {
			logger.WarnCtx(c.Request.Context(), "Rate limit exceeded",
				zap.String("key", key),
				zap.String("path", c.Request.URL.Path),
			)
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": apierrors.NewRateLimitedError("Too many requests"),
			})
			return
		}

		c.Next()
	}
}
