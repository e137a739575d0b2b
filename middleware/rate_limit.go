package middleware

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/codexx-academy/config"
	"github.com/codexx-academy/utils"
)

// RateLimiter counts requests per key in fixed windows. Counters live in
// Redis when REDIS_URL is configured so limits hold across instances; a
// local in-process map covers single-instance deploys and Redis outages.
type RateLimiter struct {
	rdb    *redis.Client
	limit  int
	window time.Duration

	mu     sync.Mutex
	local  map[string]int
	starts map[string]time.Time
}

// NewRateLimiter builds a limiter allowing limit requests per window.
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	l := &RateLimiter{
		limit:  limit,
		window: window,
		local:  make(map[string]int),
		starts: make(map[string]time.Time),
	}

	if url := config.GetEnv("REDIS_URL", ""); url != "" {
		opts, err := redis.ParseURL(url)
		if err != nil {
			zap.L().Warn("invalid REDIS_URL, rate limiting falls back to memory", zap.Error(err))
		} else {
			l.rdb = redis.NewClient(opts)
		}
	}
	return l
}

// Allow reports whether one more request under key fits in the current
// window.
func (l *RateLimiter) Allow(ctx context.Context, key string) bool {
	if l.rdb != nil {
		allowed, err := l.allowRedis(ctx, key)
		if err == nil {
			return allowed
		}
		zap.L().Warn("redis rate limit check failed, using local counter", zap.Error(err))
	}
	return l.allowLocal(key)
}

func (l *RateLimiter) allowRedis(ctx context.Context, key string) (bool, error) {
	redisKey := "ratelimit:" + key
	count, err := l.rdb.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		if err := l.rdb.Expire(ctx, redisKey, l.window).Err(); err != nil {
			return false, err
		}
	}
	return count <= int64(l.limit), nil
}

func (l *RateLimiter) allowLocal(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	if start, ok := l.starts[key]; !ok || now.Sub(start) >= l.window {
		l.starts[key] = now
		l.local[key] = 0
	}
	l.local[key]++
	return l.local[key] <= l.limit
}

// RateLimit guards an endpoint with a per-address counter. Contact forms use
// it to keep drive-by spam off the inboxes.
func RateLimit(limiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("%s:%s", utils.ClientIP(c), c.FullPath())
		if !limiter.Allow(c.Request.Context(), key) {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"status":  "error",
				"message": "Too many requests, slow down",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
