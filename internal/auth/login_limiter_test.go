package auth

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type memoryAttemptStore struct {
	mu     sync.Mutex
	vals   map[string][]byte
	counts map[string]int64
	ttls   map[string]time.Duration
}

func newMemoryAttemptStore() *memoryAttemptStore {
	return &memoryAttemptStore{
		vals:   make(map[string][]byte),
		counts: make(map[string]int64),
		ttls:   make(map[string]time.Duration),
	}
}

func (s *memoryAttemptStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.vals[key], nil
}

func (s *memoryAttemptStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vals[key] = value
	s.ttls[key] = ttl
	return nil
}

func (s *memoryAttemptStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.vals, key)
	delete(s.counts, key)
	delete(s.ttls, key)
	return nil
}

func (s *memoryAttemptStore) Incr(_ context.Context, key string, ttl time.Duration) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts[key]++
	if s.counts[key] == 1 {
		s.ttls[key] = ttl
	}
	return s.counts[key]
}

func (s *memoryAttemptStore) TTL(_ context.Context, key string) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ttls[key]
}

func TestLoginLimiter_LocksOutAfterMaxFailures(t *testing.T) {
	limiter := NewLoginLimiter(newMemoryAttemptStore())
	ctx := context.Background()
	ip := "203.0.113.1"

	for i := 0; i < maxLoginAttempts-1; i++ {
		limiter.RecordFailure(ctx, ip)
		assert.Zero(t, limiter.RetryAfter(ctx, ip), "attempt %d should still be allowed", i+1)
	}

	limiter.RecordFailure(ctx, ip)
	assert.Equal(t, lockDuration, limiter.RetryAfter(ctx, ip))

	// Other clients are unaffected.
	assert.Zero(t, limiter.RetryAfter(ctx, "203.0.113.9"))
}

func TestLoginLimiter_ResetClearsLockout(t *testing.T) {
	limiter := NewLoginLimiter(newMemoryAttemptStore())
	ctx := context.Background()
	ip := "203.0.113.1"

	for i := 0; i < maxLoginAttempts; i++ {
		limiter.RecordFailure(ctx, ip)
	}
	assert.NotZero(t, limiter.RetryAfter(ctx, ip))

	limiter.Reset(ctx, ip)
	assert.Zero(t, limiter.RetryAfter(ctx, ip))

	// The counter starts over after a reset.
	limiter.RecordFailure(ctx, ip)
	assert.Zero(t, limiter.RetryAfter(ctx, ip))
}

func TestLoginLimiter_FailsOpenWithoutRedis(t *testing.T) {
	limiter := NewLoginLimiter(nil)
	ctx := context.Background()

	assert.Zero(t, limiter.RetryAfter(ctx, "203.0.113.1"))

	// With no redis backing, failures are not counted and logins are
	// never throttled.
	for i := 0; i < maxLoginAttempts*2; i++ {
		limiter.RecordFailure(ctx, "203.0.113.1")
	}
	assert.Zero(t, limiter.RetryAfter(ctx, "203.0.113.1"))

	limiter.Reset(ctx, "203.0.113.1")
	assert.Zero(t, limiter.RetryAfter(ctx, "203.0.113.1"))
}
