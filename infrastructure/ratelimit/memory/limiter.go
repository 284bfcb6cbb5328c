// ABOUTME: In-memory per-key rate limiter using token buckets from golang.org/x/time/rate
// ABOUTME: Idle buckets are held in go-cache and expire automatically after the window

package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// Limiter allows up to limit requests per window for each key
type Limiter struct {
	buckets *gocache.Cache
	mu      sync.Mutex
	limit   int
	window  time.Duration
	every   rate.Limit
}

// NewLimiter creates a new in-memory limiter
func NewLimiter(limit int, window time.Duration) (*Limiter, error) {
	if limit <= 0 {
		return nil, errors.New("rate limit must be positive")
	}
	if window <= 0 {
		return nil, errors.New("rate window must be positive")
	}

	return &Limiter{
		buckets: gocache.New(window, 2*window),
		limit:   limit,
		window:  window,
		every:   rate.Every(window / time.Duration(limit)),
	}, nil
}

// Allow reports whether a request for key may proceed
func (l *Limiter) Allow(ctx context.Context, key string) (bool, error) {
	select {
	case <-ctx.Done():
		return false, ctx.Err()
	default:
	}

	return l.bucket(key).Allow(), nil
}

// bucket returns the token bucket for key, creating it on first use.
// Each access pushes the bucket's expiry a window further out.
func (l *Limiter) bucket(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if v, ok := l.buckets.Get(key); ok {
		b := v.(*rate.Limiter)
		l.buckets.SetDefault(key, b)
		return b
	}

	b := rate.NewLimiter(l.every, l.limit)
	l.buckets.SetDefault(key, b)
	return b
}

// Limit returns the number of requests allowed per window
func (l *Limiter) Limit() int {
	return l.limit
}

// Window returns the limiting window
func (l *Limiter) Window() time.Duration {
	return l.window
}

// Keys returns the number of tracked keys
func (l *Limiter) Keys() int {
	return l.buckets.ItemCount()
}
