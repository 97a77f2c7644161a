package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlidingWindowLimiter_Allow_UnderLimit(t *testing.T) {
	limiter := NewSlidingWindowLimiter(3, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		allowed, err := limiter.Allow(ctx, "session:a")
		require.NoError(t, err)
		assert.True(t, allowed)
	}
}

func TestSlidingWindowLimiter_Allow_DeniesOverLimit(t *testing.T) {
	limiter := NewSlidingWindowLimiter(2, time.Minute)
	ctx := context.Background()

	limiter.Allow(ctx, "session:a")
	limiter.Allow(ctx, "session:a")

	allowed, err := limiter.Allow(ctx, "session:a")
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestSlidingWindowLimiter_Allow_KeysAreIndependent(t *testing.T) {
	limiter := NewSlidingWindowLimiter(1, time.Minute)
	ctx := context.Background()

	limiter.Allow(ctx, "session:a")

	allowed, err := limiter.Allow(ctx, "session:b")
	require.NoError(t, err)
	assert.True(t, allowed, "session b has its own window")
}

func TestSlidingWindowLimiter_Allow_WindowExpires(t *testing.T) {
	limiter := NewSlidingWindowLimiter(1, 20*time.Millisecond)
	ctx := context.Background()

	limiter.Allow(ctx, "session:a")
	time.Sleep(40 * time.Millisecond)

	allowed, err := limiter.Allow(ctx, "session:a")
	require.NoError(t, err)
	assert.True(t, allowed, "requests outside the window no longer count")
}

func TestSlidingWindowLimiter_Reset(t *testing.T) {
	limiter := NewSlidingWindowLimiter(1, time.Minute)
	ctx := context.Background()

	limiter.Allow(ctx, "session:a")
	require.NoError(t, limiter.Reset(ctx, "session:a"))

	allowed, err := limiter.Allow(ctx, "session:a")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestDeliveryRateLimiter_Allow(t *testing.T) {
	limiter := NewDeliveryRateLimiter(1)
	ctx := context.Background()

	allowed, err := limiter.Allow(ctx, "abc")
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = limiter.Allow(ctx, "abc")
	require.NoError(t, err)
	assert.False(t, allowed)

	allowed, err = limiter.Allow(ctx, "other")
	require.NoError(t, err)
	assert.True(t, allowed, "sessions are limited independently")
}
