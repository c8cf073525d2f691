package middleware

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/feral-file/ff-propfi-ledger/internal/adapter"
	"github.com/feral-file/ff-propfi-ledger/internal/logger"
)

// ReplayGuard remembers signed requests that were already accepted
type ReplayGuard interface {
	// Claim records key for ttl. It returns false when key was claimed before and has not expired.
	Claim(ctx context.Context, key string, ttl time.Duration) (bool, error)
}

type memoryReplayGuard struct {
	mu        sync.Mutex
	clock     adapter.Clock
	seen      map[string]time.Time // key -> expiry
	nextPrune time.Time
}

// NewMemoryReplayGuard keeps claimed keys in process
func NewMemoryReplayGuard(clock adapter.Clock) ReplayGuard {
	return &memoryReplayGuard{
		clock: clock,
		seen:  make(map[string]time.Time),
	}
}

func (g *memoryReplayGuard) Claim(_ context.Context, key string, ttl time.Duration) (bool, error) {
	now := g.clock.Now()

	g.mu.Lock()
	defer g.mu.Unlock()

	if now.After(g.nextPrune) {
		for k, expiry := range g.seen {
			if !now.Before(expiry) {
				delete(g.seen, k)
			}
		}
		g.nextPrune = now.Add(ttl)
	}

	if expiry, ok := g.seen[key]; ok && now.Before(expiry) {
		return false, nil
	}
	g.seen[key] = now.Add(ttl)
	return true, nil
}

type redisReplayGuard struct {
	client    adapter.RedisClient
	keyPrefix string
	fallback  ReplayGuard
}

// NewRedisReplayGuard shares claimed keys between API replicas with SET NX. When Redis fails
// the claim is made in process instead.
func NewRedisReplayGuard(client adapter.RedisClient, keyPrefix string, clock adapter.Clock) ReplayGuard {
	return &redisReplayGuard{
		client:    client,
		keyPrefix: keyPrefix,
		fallback:  NewMemoryReplayGuard(clock),
	}
}

func (g *redisReplayGuard) Claim(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	claimed, err := g.client.SetNX(ctx, g.keyPrefix+key, 1, ttl).Result()
	if err != nil {
		logger.WarnCtx(ctx, "Redis replay guard unavailable, claiming in process", zap.Error(err))
		return g.fallback.Claim(ctx, key, ttl)
	}
	return claimed, nil
}
