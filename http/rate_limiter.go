package http

import (
	"sync"
	"time"
)

const (
	bucketIdleThreshold = 1 * time.Hour
	sweepInterval       = 30 * time.Minute
)

type bucket struct {
	tokens     int
	lastRefill time.Time
}

// RateLimiter hands out capacity requests per client every refill window.
type RateLimiter struct {
	mu       sync.Mutex
	capacity int
	refill   time.Duration
	buckets  map[string]*bucket
	now      func() time.Time
	stop     chan struct{}
	stopOnce sync.Once
}

func NewRateLimiter(capacity int, refill time.Duration) *RateLimiter {
	rl := newRateLimiter(capacity, refill, time.Now)
	go rl.sweepLoop()
	return rl
}

func newRateLimiter(capacity int, refill time.Duration, now func() time.Time) *RateLimiter {
	if capacity < 1 {
		capacity = 1
	}
	return &RateLimiter{
		capacity: capacity,
		refill:   refill,
		buckets:  make(map[string]*bucket),
		now:      now,
		stop:     make(chan struct{}),
	}
}

func (rl *RateLimiter) sweepLoop() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.sweep()
		case <-rl.stop:
			return
		}
	}
}

// sweep forgets clients idle for longer than bucketIdleThreshold.
func (rl *RateLimiter) sweep() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for client, b := range rl.buckets {
		if now.Sub(b.lastRefill) > bucketIdleThreshold {
			delete(rl.buckets, client)
		}
	}
}

func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

// Allow takes a token for client. When none is left it returns false and the
// time until the bucket refills.
func (rl *RateLimiter) Allow(client string) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	b, ok := rl.buckets[client]
	if !ok {
		rl.buckets[client] = &bucket{tokens: rl.capacity - 1, lastRefill: now}
		return true, 0
	}

	if elapsed := now.Sub(b.lastRefill); elapsed >= rl.refill {
		b.tokens = rl.capacity
		b.lastRefill = now
	}

	if b.tokens <= 0 {
		return false, rl.refill - now.Sub(b.lastRefill)
	}
	b.tokens--
	return true, 0
}
