package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	redisx "github.com/oleksiirud/skyport/internal/redis"
)

// rateScript keeps a per-user ZSET of recent hits scored by millisecond
// timestamps. A hit that lands in a full window is rejected along with the
// time until the oldest hit slides out.
// KEYS[1] = user key; ARGV = now_ms, window_ms, limit, hit id.
const rateScript = `
local now = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local max = tonumber(ARGV[3])

redis.call('ZREMRANGEBYSCORE', KEYS[1], 0, now - window)
redis.call('ZADD', KEYS[1], 'NX', now, ARGV[4])
redis.call('PEXPIRE', KEYS[1], window)

local hits = redis.call('ZCARD', KEYS[1])
if hits <= max then
  return {1, hits, 0}
end

local oldest = redis.call('ZRANGE', KEYS[1], 0, 0, 'WITHSCORES')
local oldestAt = tonumber(oldest[2]) or (now - window)
local wait = window - (now - oldestAt)
if wait < 0 then wait = 0 end
return {0, hits, wait}
`

// SlidingWindowLimiter caps how often a single user may perform the scoped
// action within a rolling window.
type SlidingWindowLimiter struct {
	rdb    *redis.Client
	scope  string
	limit  int64
	window time.Duration
	script *redis.Script
}

func NewSlidingWindowLimiter(
	rdb *redis.Client,
	scope string,
	limit int,
	window time.Duration,
) *SlidingWindowLimiter {
	return &SlidingWindowLimiter{
		rdb:    rdb,
		scope:  scope,
		limit:  int64(limit),
		window: window,
		script: redis.NewScript(rateScript),
	}
}

// Allow records a hit for the user and reports whether it fits the window.
// When it does not, retryAfter is how long the user has to wait.
func (l *SlidingWindowLimiter) Allow(ctx context.Context, userID int64) (allowed bool, retryAfter time.Duration, err error) {
	key := redisx.KeyRateLimit(l.scope, strconv.FormatInt(userID, 10))

	res, err := l.script.Run(ctx, l.rdb, []string{key},
		time.Now().UnixMilli(), l.window.Milliseconds(), l.limit, uuid.NewString(),
	).Result()
	if err != nil {
		return false, 0, err
	}

	arr, ok := res.([]any)
	if !ok || len(arr) != 3 {
		return false, 0, fmt.Errorf("unexpected limiter reply: %v", res)
	}

	return scriptInt(arr[0]) == 1, time.Duration(scriptInt(arr[2])) * time.Millisecond, nil
}

func scriptInt(v any) int64 {
	switch t := v.(type) {
	case int64:
		return t
	case string:
		n, _ := strconv.ParseInt(t, 10, 64)
		return n
	default:
		return 0
	}
}
