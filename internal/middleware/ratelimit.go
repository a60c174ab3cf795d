package middleware

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/BruksfildServices01/table-reservations/internal/config"
	"github.com/BruksfildServices01/table-reservations/internal/httperr"
)

// Decision is the outcome of one rate limit check.
type Decision struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

type Limiter interface {
	Allow(ctx context.Context, key string) (Decision, error)
}

// NewLimiter returns a Redis token bucket shared by every instance, or a
// process-local one when rdb is nil.
func NewLimiter(cfg config.RateLimitConfig, rdb *redis.Client) Limiter {
	if rdb == nil {
		return NewLocalLimiter(cfg)
	}
	return NewRedisLimiter(cfg, rdb)
}

// ======================================================
// REDIS
// ======================================================

var tokenBucketScript = redis.NewScript(`
local key = KEYS[1]
local now_ms = tonumber(ARGV[1])
local capacity = tonumber(ARGV[2])
local refill_tokens = tonumber(ARGV[3])
local interval_ms = tonumber(ARGV[4])
local ttl_seconds = tonumber(ARGV[5])

local state = redis.call('HMGET', key, 'tokens', 'last_refill_ms')
local tokens = tonumber(state[1])
local last_refill = tonumber(state[2])

if tokens == nil or last_refill == nil then
	tokens = capacity
	last_refill = now_ms
end

if interval_ms > 0 and refill_tokens > 0 then
	local elapsed = math.max(0, now_ms - last_refill)
	local intervals = math.floor(elapsed / interval_ms)
	if intervals > 0 then
		tokens = math.min(capacity, tokens + (intervals * refill_tokens))
		last_refill = last_refill + (intervals * interval_ms)
	end
end

local allowed = 0
local retry_after_ms = 0
if tokens > 0 then
	allowed = 1
	tokens = tokens - 1
else
	retry_after_ms = math.max(0, interval_ms - (now_ms - last_refill))
end

redis.call('HSET', key, 'tokens', tokens, 'last_refill_ms', last_refill)
redis.call('EXPIRE', key, ttl_seconds)

return { allowed, tokens, retry_after_ms }
`)

type RedisLimiter struct {
	rdb *redis.Client
	cfg config.RateLimitConfig
	now func() time.Time
}

func NewRedisLimiter(cfg config.RateLimitConfig, rdb *redis.Client) *RedisLimiter {
	return &RedisLimiter{rdb: rdb, cfg: cfg, now: time.Now}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (Decision, error) {
	ttl := int64(l.cfg.TTL / time.Second)
	if ttl < 1 {
		ttl = 1
	}

	vals, err := tokenBucketScript.Run(ctx, l.rdb, []string{key},
		l.now().UnixMilli(),
		l.cfg.Capacity,
		l.cfg.RefillTokens,
		l.cfg.RefillInterval.Milliseconds(),
		ttl,
	).Result()
	if err != nil {
		return Decision{}, err
	}

	arr, ok := vals.([]interface{})
	if !ok || len(arr) != 3 {
		return Decision{}, fmt.Errorf("unexpected rate limit result %#v", vals)
	}

	return Decision{
		Allowed:    asInt64(arr[0]) == 1,
		Remaining:  int(asInt64(arr[1])),
		RetryAfter: time.Duration(asInt64(arr[2])) * time.Millisecond,
	}, nil
}

func asInt64(v interface{}) int64 {
	switch t := v.(type) {
	case int64:
		return t
	case int:
		return int64(t)
	case float64:
		return int64(t)
	case string:
		if n, err := strconv.ParseInt(t, 10, 64); err == nil {
			return n
		}
	}
	return 0
}

// ======================================================
// LOCAL
// ======================================================

type localBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// LocalLimiter keeps one token bucket per key in memory. Buckets idle for
// longer than the configured TTL are dropped.
type LocalLimiter struct {
	cfg   config.RateLimitConfig
	every rate.Limit
	now   func() time.Time

	mu        sync.Mutex
	buckets   map[string]*localBucket
	lastSweep time.Time
}

func NewLocalLimiter(cfg config.RateLimitConfig) *LocalLimiter {
	every := rate.Inf
	if cfg.RefillTokens > 0 && cfg.RefillInterval > 0 {
		every = rate.Every(cfg.RefillInterval / time.Duration(cfg.RefillTokens))
	} else if cfg.RefillTokens <= 0 {
		every = 0
	}

	return &LocalLimiter{
		cfg:     cfg,
		every:   every,
		now:     time.Now,
		buckets: make(map[string]*localBucket),
	}
}

func (l *LocalLimiter) Allow(_ context.Context, key string) (Decision, error) {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	l.sweep(now)

	b, ok := l.buckets[key]
	if !ok {
		b = &localBucket{limiter: rate.NewLimiter(l.every, l.cfg.Capacity)}
		l.buckets[key] = b
	}
	b.lastSeen = now

	r := b.limiter.ReserveN(now, 1)
	if !r.OK() {
		return Decision{Allowed: false, RetryAfter: l.cfg.RefillInterval}, nil
	}
	if delay := r.DelayFrom(now); delay > 0 {
		r.CancelAt(now)
		return Decision{Allowed: false, RetryAfter: delay}, nil
	}

	return Decision{
		Allowed:   true,
		Remaining: int(math.Max(0, math.Floor(b.limiter.TokensAt(now)))),
	}, nil
}

func (l *LocalLimiter) sweep(now time.Time) {
	if l.cfg.TTL <= 0 || now.Sub(l.lastSweep) < l.cfg.TTL {
		return
	}
	for k, b := range l.buckets {
		if now.Sub(b.lastSeen) > l.cfg.TTL {
			delete(l.buckets, k)
		}
	}
	l.lastSweep = now
}

// ======================================================
// MIDDLEWARE
// ======================================================

// RateLimit throttles by client IP within scope. Limiter failures let the
// request through.
func RateLimit(
	cfg config.RateLimitConfig,
	limiter Limiter,
	scope string,
	log zerolog.Logger,
) gin.HandlerFunc {

	if !cfg.Enabled || limiter == nil {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		ip := c.ClientIP()
		if ip == "" {
			ip = "unknown"
		}
		key := strings.Join([]string{cfg.Prefix, scope, ip}, ":")

		d, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			log.Warn().Err(err).Str("key", key).Msg("rate limiter unavailable")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(cfg.Capacity))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(d.Remaining))

		if !d.Allowed {
			secs := int(math.Ceil(d.RetryAfter.Seconds()))
			if secs < 1 {
				secs = 1
			}
			c.Header("Retry-After", strconv.Itoa(secs))
			httperr.Abort(c, http.StatusTooManyRequests, "too_many_requests", "Too many requests, try again later.")
			return
		}

		c.Next()
	}
}
