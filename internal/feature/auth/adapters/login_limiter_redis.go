package adapters

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"art_backend/internal/feature/auth/usecase"
)

const (
	defaultMaxAttempts = 10
	defaultWindow      = 15 * time.Minute
)

// LoginLimiterRedis throttles login attempts per email with a counter that
// expires after the window. The first attempt in a window sets the TTL, so a
// quiet account costs a single short-lived key.
type LoginLimiterRedis struct {
	client *redis.Client
	max    int64
	window time.Duration
}

var _ usecase.LoginLimiter = (*LoginLimiterRedis)(nil)

// NewLoginLimiterRedis creates a limiter allowing max attempts per window.
// Zero or negative arguments fall back to defaults.
func NewLoginLimiterRedis(client *redis.Client, max int64, window time.Duration) *LoginLimiterRedis {
	if max <= 0 {
		max = defaultMaxAttempts
	}
	if window <= 0 {
		window = defaultWindow
	}
	return &LoginLimiterRedis{client: client, max: max, window: window}
}

func (l *LoginLimiterRedis) key(email string) string {
	return "login_attempts:" + email
}

// Allow counts the attempt and reports whether it is within the limit.
func (l *LoginLimiterRedis) Allow(ctx context.Context, email string) (bool, error) {
	n, err := l.client.Incr(ctx, l.key(email)).Result()
	if err != nil {
		return false, err
	}
	if n == 1 {
		if err := l.client.Expire(ctx, l.key(email), l.window).Err(); err != nil {
			return false, err
		}
	}
	return n <= l.max, nil
}
