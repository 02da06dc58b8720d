package service

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const redisRateKeyPrefix = "harmony:rl:"

// Devuelve {conteo, ttl en ms}. Si la clave quedó sin expiración se la vuelve a fijar.
const redisWindowScript = `
local count = redis.call("INCR", KEYS[1])
if count == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
local ttl = redis.call("PTTL", KEYS[1])
if ttl < 0 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
  ttl = tonumber(ARGV[1])
end
return {count, ttl}
`

type redisScripter interface {
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
}

// redisRateLimiter comparte una ventana fija por ruta e IP entre réplicas.
type redisRateLimiter struct {
	client  redisScripter
	logger  *zap.Logger
	window  time.Duration
	max     int
	timeout time.Duration
}

// NewRedisRateLimiter devuelve nil sin cliente. Si Redis falla el pedido pasa y se loguea.
func NewRedisRateLimiter(client *redis.Client, logger *zap.Logger, window time.Duration, max int) RateLimiter {
	if client == nil {
		return nil
	}
	return newRedisRateLimiter(client, logger, window, max)
}

func newRedisRateLimiter(client redisScripter, logger *zap.Logger, window time.Duration, max int) *redisRateLimiter {
	if logger == nil {
		logger = zap.NewNop()
	}
	if window < time.Millisecond {
		window = time.Minute
	}
	if max <= 0 {
		max = 1
	}
	return &redisRateLimiter{
		client:  client,
		logger:  logger,
		window:  window,
		max:     max,
		timeout: 300 * time.Millisecond,
	}
}

func (l *redisRateLimiter) Allow(ctx context.Context, route, clientIP string) RateDecision {
	key, ok := rateKey(route, clientIP)
	if !ok {
		return RateDecision{Limit: l.max, RetryAfter: l.window}
	}

	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	reply, err := l.client.Eval(ctx, redisWindowScript, []string{redisRateKeyPrefix + key}, l.window.Milliseconds()).Int64Slice()
	if err == nil && len(reply) != 2 {
		err = fmt.Errorf("unexpected rate limit reply %v", reply)
	}
	if err != nil {
		l.logger.Warn("redis rate limiter unavailable, allowing request",
			zap.String("route", route),
			zap.String("client_ip", clientIP),
			zap.Error(err),
		)
		return RateDecision{Allowed: true, Limit: l.max, Remaining: l.max}
	}

	count := int(reply[0])
	if count > l.max {
		return RateDecision{
			Limit:      l.max,
			RetryAfter: time.Duration(reply[1]) * time.Millisecond,
		}
	}
	return RateDecision{Allowed: true, Limit: l.max, Remaining: l.max - count}
}
