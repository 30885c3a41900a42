package middleware

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/mapview-backend/internal/infrastructure/config"
	"github.com/marcos-nsantos/mapview-backend/internal/pkg/httputil"
)

const rateLimitKeyPrefix = "mapview:ratelimit:"

// RateLimiter is a sliding window limiter keyed by client IP and shared
// across instances through a Redis sorted set. Each client may exceed
// RequestsPerMin by BurstSize inside one window. Redis failures let the
// request through.
type RateLimiter struct {
	client redis.Cmdable
	limit  int
	window time.Duration
	logger *zap.Logger
}

func NewRateLimiter(client redis.Cmdable, cfg config.RateLimitConfig, logger *zap.Logger) *RateLimiter {
	window := cfg.Window
	if window <= 0 {
		window = time.Minute
	}
	return &RateLimiter{
		client: client,
		limit:  cfg.RequestsPerMin + max(cfg.BurstSize, 0),
		window: window,
		logger: logger,
	}
}

func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := rateLimitKeyPrefix + c.ClientIP()

		count, oldest, err := rl.record(c.Request.Context(), key)
		if err != nil {
			rl.logger.Warn("rate limiter unavailable", zap.Error(err))
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(max(rl.limit-count, 0)))

		if count > rl.limit {
			c.Header("Retry-After", strconv.Itoa(rl.retryAfter(oldest)))
			httputil.ErrorWithCode(c, http.StatusTooManyRequests, "RATE_LIMITED", "too many requests, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}

// record adds the current request to the window and returns the number of
// requests in it along with the timestamp of the oldest one.
func (rl *RateLimiter) record(ctx context.Context, key string) (int, time.Time, error) {
	now := time.Now()
	windowStart := now.Add(-rl.window).UnixMilli()

	pipe := rl.client.TxPipeline()
	pipe.ZRemRangeByScore(ctx, key, "0", strconv.FormatInt(windowStart, 10))
	pipe.ZAdd(ctx, key, redis.Z{
		Score:  float64(now.UnixMilli()),
		Member: fmt.Sprintf("%d-%s", now.UnixMilli(), uuid.NewString()),
	})
	countCmd := pipe.ZCard(ctx, key)
	oldestCmd := pipe.ZRangeWithScores(ctx, key, 0, 0)
	pipe.Expire(ctx, key, rl.window)

	if _, err := pipe.Exec(ctx); err != nil {
		return 0, time.Time{}, fmt.Errorf("recording request: %w", err)
	}

	oldest := now
	if z := oldestCmd.Val(); len(z) > 0 {
		oldest = time.UnixMilli(int64(z[0].Score))
	}

	return int(countCmd.Val()), oldest, nil
}

func (rl *RateLimiter) retryAfter(oldest time.Time) int {
	wait := time.Until(oldest.Add(rl.window))
	return max(1, int(math.Ceil(wait.Seconds())))
}
