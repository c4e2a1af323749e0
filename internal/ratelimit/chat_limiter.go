package ratelimit

import (
	"context"

	redis "github.com/redis/go-redis/v9"

	"github.com/districtclose/districtclose/internal/config"
)

// ChatLimiter throttles assistant chat requests per user. A nil limiter
// allows everything, so deployments without redis run unthrottled.
type ChatLimiter struct {
	bucket *TokenBucket
	rate   float64
	burst  int
}

func NewChatLimiter(cfg config.Config) *ChatLimiter {
	if !cfg.RateLimit.Enabled || cfg.RateLimit.RedisAddr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RateLimit.RedisAddr,
		Password: cfg.RateLimit.RedisPassword,
		DB:       cfg.RateLimit.RedisDB,
	})
	return &ChatLimiter{
		bucket: NewTokenBucket(client),
		rate:   cfg.RateLimit.ChatRate,
		burst:  cfg.RateLimit.ChatBurst,
	}
}

func (l *ChatLimiter) Allow(ctx context.Context, userID string) (*Result, error) {
	if l == nil {
		return &Result{Allowed: true}, nil
	}
	return l.bucket.Allow(ctx, "chat:"+userID, l.rate, l.burst)
}
