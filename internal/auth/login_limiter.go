package auth

import (
	"context"
	"time"
)

const (
	loginWindow      = 15 * time.Minute
	lockDuration     = 10 * time.Minute
	maxLoginAttempts = 5

	attemptKeyPrefix = "login_attempts:"
	lockKeyPrefix    = "login_lock:"
)

// AttemptStore is the counter backend behind the login throttle.
// *cache.Client satisfies it.
type AttemptStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Incr(ctx context.Context, key string, ttl time.Duration) int64
	TTL(ctx context.Context, key string) time.Duration
}

// LoginLimiter throttles repeated failed logins per client IP. It rides
// on the fail-safe cache client: with redis unavailable (or a nil store)
// every attempt is allowed, so the login path never depends on redis
// being up.
type LoginLimiter struct {
	store AttemptStore
}

// NewLoginLimiter creates a login throttle backed by the given store.
func NewLoginLimiter(store AttemptStore) *LoginLimiter {
	return &LoginLimiter{store: store}
}

// RetryAfter reports how long the client must wait before another
// attempt, or zero when the attempt is allowed.
func (l *LoginLimiter) RetryAfter(ctx context.Context, ip string) time.Duration {
	if l.store == nil {
		return 0
	}
	data, _ := l.store.Get(ctx, lockKeyPrefix+ip)
	if data == nil {
		return 0
	}
	if d := l.store.TTL(ctx, lockKeyPrefix+ip); d > 0 {
		return d
	}
	return lockDuration
}

// RecordFailure counts a failed attempt and locks the client out once the
// window limit is reached.
func (l *LoginLimiter) RecordFailure(ctx context.Context, ip string) {
	if l.store == nil {
		return
	}
	if l.store.Incr(ctx, attemptKeyPrefix+ip, loginWindow) >= maxLoginAttempts {
		_ = l.store.Set(ctx, lockKeyPrefix+ip, []byte("1"), lockDuration)
	}
}

// Reset clears the attempt counter after a successful login.
func (l *LoginLimiter) Reset(ctx context.Context, ip string) {
	if l.store == nil {
		return
	}
	_ = l.store.Delete(ctx, attemptKeyPrefix+ip)
	_ = l.store.Delete(ctx, lockKeyPrefix+ip)
}
