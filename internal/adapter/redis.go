package adapter

import (
	"context"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/redis/go-redis/v9"
)

// RedisOptions holds the connection settings of the shared rate limit backend
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
}

// RedisClient defines the Redis operations shared between API replicas: the rate limit and
// the record of used request signatures
//
//go:generate mockgen -source=redis.go -destination=../mocks/redis.go -package=mocks -mock_names=RedisClient=MockRedisClient,RedisRateLimiter=MockRedisRateLimiter
type RedisClient interface {
	// Ping checks if Redis is reachable
	Ping(ctx context.Context) *redis.StatusCmd
	// SetNX sets key only when it does not exist yet
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	// NewRateLimiter returns a GCRA limiter stored in this Redis
	NewRateLimiter() RedisRateLimiter
	Close() error
}

// RedisRateLimiter defines the interface for rate limits shared between API replicas
type RedisRateLimiter interface {
	// Allow takes one request from the bucket at key. The result carries the retry delay when
	// the bucket is empty.
	Allow(ctx context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error)
}

type redisClient struct {
	client *redis.Client
}

// NewRedisClient creates a Redis client. No connection is made until the first command.
func NewRedisClient(opts RedisOptions) RedisClient {
	return &redisClient{
		client: redis.NewClient(&redis.Options{
			Addr:     opts.Addr,
			Password: opts.Password,
			DB:       opts.DB,
		}),
	}
}

func (r *redisClient) Ping(ctx context.Context) *redis.StatusCmd {
	return r.client.Ping(ctx)
}

func (r *redisClient) SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd {
	return r.client.SetNX(ctx, key, value, expiration)
}

func (r *redisClient) NewRateLimiter() RedisRateLimiter {
	return redis_rate.NewLimiter(r.client)
}

func (r *redisClient) Close() error {
	return r.client.Close()
}
