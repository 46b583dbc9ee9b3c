package limiter

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Token bucket kept in a Redis hash, refilled and drained atomically.
const tokenBucketScript = `
local key = KEYS[1]
local rate = tonumber(ARGV[1])
local capacity = tonumber(ARGV[2])
local now = tonumber(ARGV[3])
local ttl = math.ceil(tonumber(ARGV[4]))

local tokens = tonumber(redis.call("HGET", key, "tokens"))
local last = tonumber(redis.call("HGET", key, "last_refill"))

if tokens == nil then
	tokens = capacity
	last = now
else
	tokens = math.min(capacity, tokens + (now - last) * rate)
	last = now
end

local allowed = 0
if tokens >= 1 then
	tokens = tokens - 1
	allowed = 1
end

redis.call("HSET", key, "tokens", tokens, "last_refill", last)
redis.call("EXPIRE", key, ttl)
return allowed
`

// RedisLimiter shares buckets between every API instance pointed at the
// same Redis.
type RedisLimiter struct {
	client   *redis.Client
	prefix   string
	rate     float64
	capacity float64
	ttl      time.Duration
	script   *redis.Script
	now      func() time.Time
}

// NewRedis allows limit attempts per window for each key.
func NewRedis(client *redis.Client, prefix string, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client:   client,
		prefix:   prefix,
		rate:     float64(limit) / window.Seconds(),
		capacity: float64(limit),
		ttl:      2 * window,
		script:   redis.NewScript(tokenBucketScript),
		now:      time.Now,
	}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	now := float64(l.now().UnixNano()) / 1e9

	res, err := l.script.Run(ctx, l.client,
		[]string{l.prefix + "ratelimit:" + key},
		l.rate, l.capacity, now, l.ttl.Seconds(),
	).Int64()
	if err != nil {
		return false, fmt.Errorf("rate limit script: %w", err)
	}
	return res == 1, nil
}

// NewRedisClient parses a redis:// URL.
func NewRedisClient(url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse REDIS_URL: %w", err)
	}
	return redis.NewClient(opts), nil
}
