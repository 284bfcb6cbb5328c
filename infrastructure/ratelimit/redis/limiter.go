// ABOUTME: Redis-backed fixed-window rate limiter using go-redis
// ABOUTME: Shares request counts between API instances with INCR and EXPIRE in one transaction

package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"telescout-api/pkg/config"
)

// keyPrefix namespaces limiter keys
const keyPrefix = "telescout:ratelimit"

// Limiter allows up to limit requests per fixed window for each key
type Limiter struct {
	client *redis.Client
	limit  int
	window time.Duration
	now    func() time.Time
}

// NewLimiter creates a new Redis limiter and checks the connection
func NewLimiter(cfg config.RedisConfig, limit int, window time.Duration) (*Limiter, error) {
	if cfg.Address == "" {
		return nil, errors.New("redis address cannot be empty")
	}
	if limit <= 0 {
		return nil, errors.New("rate limit must be positive")
	}
	if window < time.Second {
		return nil, errors.New("rate window must be at least one second")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}

	return &Limiter{
		client: client,
		limit:  limit,
		window: window,
		now:    time.Now,
	}, nil
}

// windowKey returns the counter key for key in the current window
func (l *Limiter) windowKey(key string) string {
	slot := l.now().UnixNano() / int64(l.window)
	return fmt.Sprintf("%s:%s:%d", keyPrefix, key, slot)
}

// Allow reports whether a request for key may proceed
func (l *Limiter) Allow(ctx context.Context, key string) (bool, error) {
	k := l.windowKey(key)

	var incr *redis.IntCmd
	_, err := l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, k)
		pipe.Expire(ctx, k, l.window)
		return nil
	})
	if err != nil {
		return false, err
	}

	return incr.Val() <= int64(l.limit), nil
}

// Limit returns the number of requests allowed per window
func (l *Limiter) Limit() int {
	return l.limit
}

// Window returns the limiting window
func (l *Limiter) Window() time.Duration {
	return l.window
}

// Close closes the Redis connection
func (l *Limiter) Close() error {
	return l.client.Close()
}
