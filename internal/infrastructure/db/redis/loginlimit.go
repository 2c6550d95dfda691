package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// LoginLimiter caps login attempts per client IP using a fixed window.
// Key format: loginlimit:<ip>
type LoginLimiter struct {
	client *redis.Client
	max    int
	window time.Duration
}

// NewLoginLimiter creates a LoginLimiter allowing max attempts per window.
func NewLoginLimiter(client *redis.Client, max int, window time.Duration) *LoginLimiter {
	if max <= 0 {
		max = 10
	}
	if window <= 0 {
		window = time.Minute
	}
	return &LoginLimiter{client: client, max: max, window: window}
}

// Allow records one attempt for ip and reports whether it is within budget.
// When over budget it also returns how long until the window resets.
func (l *LoginLimiter) Allow(ctx context.Context, ip string) (bool, time.Duration, error) {
	key := l.key(ip)

	n, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return false, 0, fmt.Errorf("login limit incr: %w", err)
	}
	if n == 1 {
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			return false, 0, fmt.Errorf("login limit expire: %w", err)
		}
	}

	if n > int64(l.max) {
		ttl, err := l.client.TTL(ctx, key).Result()
		if err != nil || ttl < 0 {
			ttl = l.window
		}
		return false, ttl, nil
	}
	return true, 0, nil
}

func (l *LoginLimiter) key(ip string) string {
	return "loginlimit:" + ip
}
