package auth

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const throttleKeyPrefix = "login_attempts:"

// LoginThrottle counts failed login attempts per subject in Redis. It fails
// open: when Redis is unreachable the login path proceeds unthrottled.
type LoginThrottle struct {
	client *redis.Client
	limit  int64
	window time.Duration
	logger *zap.Logger
}

// NewLoginThrottle builds the throttle. A nil client disables throttling.
func NewLoginThrottle(client *redis.Client, maxAttempts, windowMinutes int, logger *zap.Logger) *LoginThrottle {
	if maxAttempts <= 0 {
		maxAttempts = 10
	}
	if windowMinutes <= 0 {
		windowMinutes = 15
	}
	return &LoginThrottle{
		client: client,
		limit:  int64(maxAttempts),
		window: time.Duration(windowMinutes) * time.Minute,
		logger: logger,
	}
}

// Allow reports whether another login attempt for the subject may proceed.
func (t *LoginThrottle) Allow(ctx context.Context, subject string) bool {
	if t == nil || t.client == nil {
		return true
	}
	count, err := t.client.Get(ctx, throttleKeyPrefix+subject).Int64()
	if err != nil {
		if err != redis.Nil {
			t.logger.Warn("login throttle unavailable", zap.Error(err))
		}
		return true
	}
	return count < t.limit
}

// RecordFailure bumps the failed-attempt counter for the subject.
func (t *LoginThrottle) RecordFailure(ctx context.Context, subject string) {
	if t == nil || t.client == nil {
		return
	}
	key := throttleKeyPrefix + subject
	count, err := t.client.Incr(ctx, key).Result()
	if err != nil {
		t.logger.Warn("login throttle unavailable", zap.Error(err))
		return
	}
	if count == 1 {
		t.client.Expire(ctx, key, t.window)
	}
}

// Reset clears the counter after a successful login.
func (t *LoginThrottle) Reset(ctx context.Context, subject string) {
	if t == nil || t.client == nil {
		return
	}
	t.client.Del(ctx, throttleKeyPrefix+subject)
}
