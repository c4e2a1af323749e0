package ratelimit

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	redis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/districtclose/districtclose/internal/config"
)

func newBucket(t *testing.T) *TokenBucket {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewTokenBucket(client)
}

func TestAllowDrainsBucket(t *testing.T) {
	bucket := newBucket(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		res, err := bucket.Allow(ctx, "chat:u1", 0.5, 3)
		require.NoError(t, err)
		assert.True(t, res.Allowed, "request %d within burst", i)
	}

	res, err := bucket.Allow(ctx, "chat:u1", 0.5, 3)
	require.NoError(t, err)
	assert.False(t, res.Allowed)
	assert.Greater(t, res.RetryAfter.Seconds(), 0.0)
}

func TestAllowIsolatesKeys(t *testing.T) {
	bucket := newBucket(t)
	ctx := context.Background()

	res, err := bucket.Allow(ctx, "chat:u1", 1, 1)
	require.NoError(t, err)
	assert.True(t, res.Allowed)

	res, err = bucket.Allow(ctx, "chat:u1", 1, 1)
	require.NoError(t, err)
	assert.False(t, res.Allowed)

	res, err = bucket.Allow(ctx, "chat:u2", 1, 1)
	require.NoError(t, err)
	assert.True(t, res.Allowed, "a different user has their own bucket")
}

func TestAllowValidatesInputs(t *testing.T) {
	bucket := newBucket(t)
	ctx := context.Background()

	_, err := bucket.Allow(ctx, "", 1, 1)
	assert.Error(t, err)
	_, err = bucket.Allow(ctx, "k", 0, 1)
	assert.Error(t, err)
	_, err = bucket.Allow(ctx, "k", 1, 0)
	assert.Error(t, err)
}

func TestChatLimiterDisabled(t *testing.T) {
	limiter := NewChatLimiter(config.Config{})
	require.Nil(t, limiter)

	res, err := limiter.Allow(context.Background(), "u1")
	require.NoError(t, err)
	assert.True(t, res.Allowed, "nil limiter allows everything")
}

func TestChatLimiterEnabled(t *testing.T) {
	srv := miniredis.RunT(t)
	limiter := NewChatLimiter(config.Config{
		RateLimit: config.RateLimitConfig{
			Enabled:   true,
			RedisAddr: srv.Addr(),
			ChatRate:  0.5,
			ChatBurst: 2,
		},
	})
	require.NotNil(t, limiter)

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		res, err := limiter.Allow(ctx, "u1")
		require.NoError(t, err)
		assert.True(t, res.Allowed)
	}
	res, err := limiter.Allow(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, res.Allowed)
}
