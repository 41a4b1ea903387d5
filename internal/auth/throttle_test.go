package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLoginThrottleFailsOpen(t *testing.T) {
	ctx := context.Background()

	t.Run("nil client disables throttling", func(t *testing.T) {
		throttle := NewLoginThrottle(nil, 3, 15, zap.NewNop())
		for i := 0; i < 10; i++ {
			throttle.RecordFailure(ctx, "a@x.com")
		}
		assert.True(t, throttle.Allow(ctx, "a@x.com"))
		throttle.Reset(ctx, "a@x.com")
	})

	t.Run("nil throttle is safe", func(t *testing.T) {
		var throttle *LoginThrottle
		assert.True(t, throttle.Allow(ctx, "a@x.com"))
		throttle.RecordFailure(ctx, "a@x.com")
		throttle.Reset(ctx, "a@x.com")
	})
}
