package auth

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// AttemptCounter is the subset of redis used by LoginThrottle.
type AttemptCounter interface {
	TxPipelined(ctx context.Context, fn func(redis.Pipeliner) error) ([]redis.Cmder, error)
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// LoginThrottle counts failed logins per email in a fixed window.
type LoginThrottle struct {
	store       AttemptCounter
	maxAttempts int
	window      time.Duration
	logger      *zap.Logger
}

// NewLoginThrottle builds a throttle. A nil store disables throttling.
func NewLoginThrottle(store AttemptCounter, maxAttempts int, window time.Duration, logger *zap.Logger) *LoginThrottle {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LoginThrottle{store: store, maxAttempts: maxAttempts, window: window, logger: logger}
}

// Blocked reports whether email exhausted its attempts. Store failures fail open.
func (t *LoginThrottle) Blocked(ctx context.Context, email string) bool {
	if t == nil || t.store == nil || t.maxAttempts <= 0 {
		return false
	}
	count, err := t.store.Get(ctx, throttleKey(email)).Int()
	if err != nil {
		if err != redis.Nil {
			t.logger.Warn("login throttle unavailable", zap.Error(err))
		}
		return false
	}
	return count >= t.maxAttempts
}

// RecordFailure counts a failed attempt. INCR and EXPIRE NX run in one MULTI/EXEC, so
// a counter never exists without a TTL and the window starts at the first failure.
func (t *LoginThrottle) RecordFailure(ctx context.Context, email string) {
	if t == nil || t.store == nil || t.maxAttempts <= 0 {
		return
	}
	key := throttleKey(email)
	_, err := t.store.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, key)
		pipe.ExpireNX(ctx, key, t.window)
		return nil
	})
	if err != nil {
		t.logger.Warn("login throttle unavailable", zap.Error(err))
	}
}

// Reset clears the counter after a successful login.
func (t *LoginThrottle) Reset(ctx context.Context, email string) {
	if t == nil || t.store == nil {
		return
	}
	if err := t.store.Del(ctx, throttleKey(email)).Err(); err != nil {
		t.logger.Warn("login throttle reset failed", zap.Error(err))
	}
}

func throttleKey(email string) string {
	return "login:failures:" + strings.ToLower(strings.TrimSpace(email))
}
