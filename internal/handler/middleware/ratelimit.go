package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"gym-booking/internal/handler/httperr"
	"gym-booking/internal/pkg/config"
	"gym-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

var errRateLimited = errs.New("rate limit exceeded")

// tokenBucketScript refills in whole intervals and consumes one token.
// Returns {allowed, tokens_left, retry_after_ms}.
var tokenBucketScript = redis.NewScript(`
local key = KEYS[1]
local capacity = tonumber(ARGV[1])
local refill_tokens = tonumber(ARGV[2])
local refill_ms = tonumber(ARGV[3])
local now_ms = tonumber(ARGV[4])
local ttl_ms = tonumber(ARGV[5])

local state = redis.call("HMGET", key, "tokens", "last_refill_ms")
local tokens = tonumber(state[1])
local last = tonumber(state[2])
if tokens == nil then
  tokens = capacity
  last = now_ms
end

local elapsed = now_ms - last
if elapsed >= refill_ms then
  local intervals = math.floor(elapsed / refill_ms)
  tokens = math.min(capacity, tokens + intervals * refill_tokens)
  last = last + intervals * refill_ms
end

local allowed = 0
local retry_after = 0
if tokens >= 1 then
  tokens = tokens - 1
  allowed = 1
else
  retry_after = refill_ms - (now_ms - last)
end

redis.call("HSET", key, "tokens", tokens, "last_refill_ms", last)
redis.call("PEXPIRE", key, ttl_ms)
return {allowed, tokens, retry_after}
`)

type RateLimiter struct {
	client *redis.Client
	cfg    config.RateLimitConfig
}

// NewRateLimiter accepts a nil client; the limiter then lets everything through.
func NewRateLimiter(client *redis.Client, cfg config.Config) *RateLimiter {
	return &RateLimiter{client: client, cfg: cfg.RateLimit}
}

// Limit keys the bucket by route name plus the caller (user id when known, otherwise client IP).
func (l *RateLimiter) Limit(name string) gin.HandlerFunc {
	if l.client == nil || !l.cfg.Enabled {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		key := fmt.Sprintf("%s:%s:%s", l.cfg.Prefix, name, callerKey(c))

		ctx, cancel := context.WithTimeout(c.Request.Context(), 200*time.Millisecond)
		defer cancel()

		res, err := tokenBucketScript.Run(ctx, l.client, []string{key},
			l.cfg.Capacity,
			l.cfg.RefillTokens,
			l.cfg.RefillInterval.Milliseconds(),
			time.Now().UnixMilli(),
			l.cfg.TTL.Milliseconds(),
		).Int64Slice()
		if err != nil || len(res) != 3 {
			// Redis trouble must not take booking down with it.
			if err != nil {
				slog.Warn("rate limiter unavailable", "route", name, "error", err.Error())
			}
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(l.cfg.Capacity))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(res[1], 10))

		if res[0] == 0 {
			retryAfter := (time.Duration(res[2])*time.Millisecond + time.Second - 1) / time.Second
			c.Header("Retry-After", strconv.FormatInt(int64(retryAfter), 10))
			httperr.AbortWithError(c, http.StatusTooManyRequests, errRateLimited, "Too many requests", nil)
			return
		}
		c.Next()
	}
}

func callerKey(c *gin.Context) string {
	if id, ok := GetUserID(c); ok {
		return "u:" + id.String()
	}
	return "ip:" + c.ClientIP()
}
