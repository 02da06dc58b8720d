package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// fakeScripter responde al script de ventana con un conteo y un ttl fijos.
type fakeScripter struct {
	keys  []string
	args  []interface{}
	reply []interface{}
	err   error
}

func (f *fakeScripter) Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd {
	f.keys = keys
	f.args = args
	cmd := redis.NewCmd(ctx)
	if f.err != nil {
		cmd.SetErr(f.err)
		return cmd
	}
	cmd.SetVal(f.reply)
	return cmd
}

func TestNewRedisRateLimiterWithoutClient(t *testing.T) {
	if NewRedisRateLimiter(nil, zap.NewNop(), time.Minute, 3) != nil {
		t.Fatalf("expected nil limiter without client")
	}
}

func TestRedisRateLimiterKeysByRouteAndClient(t *testing.T) {
	fake := &fakeScripter{reply: []interface{}{int64(2), int64(90000)}}
	l := newRedisRateLimiter(fake, nil, 90*time.Second, 5)

	d := l.Allow(context.Background(), "years", " 2001:DB8::1 ")
	if !d.Allowed || d.Remaining != 3 || d.Limit != 5 {
		t.Fatalf("unexpected decision %+v", d)
	}
	if len(fake.keys) != 1 || fake.keys[0] != "harmony:rl:years|2001:db8::1" {
		t.Fatalf("unexpected key %+v", fake.keys)
	}
	if len(fake.args) != 1 || fake.args[0] != int64(90000) {
		t.Fatalf("expected window in milliseconds, got %+v", fake.args)
	}
}

func TestRedisRateLimiterDeniesWithRetryAfter(t *testing.T) {
	fake := &fakeScripter{reply: []interface{}{int64(6), int64(12500)}}
	l := newRedisRateLimiter(fake, nil, time.Minute, 5)

	d := l.Allow(context.Background(), "compatibility", "10.0.0.1")
	if d.Allowed || d.Remaining != 0 {
		t.Fatalf("expected denial, got %+v", d)
	}
	if d.RetryAfter != 12500*time.Millisecond {
		t.Fatalf("expected retry after from key ttl, got %v", d.RetryAfter)
	}
}

func TestRedisRateLimiterRejectsEmptyClient(t *testing.T) {
	fake := &fakeScripter{reply: []interface{}{int64(1), int64(60000)}}
	l := newRedisRateLimiter(fake, nil, time.Minute, 5)

	if d := l.Allow(context.Background(), "profile", "   "); d.Allowed {
		t.Fatalf("expected empty client ip to be rejected")
	}
	if fake.keys != nil {
		t.Fatalf("redis should not be called for an empty key")
	}
}

func TestRedisRateLimiterLogsFailures(t *testing.T) {
	cases := map[string]*fakeScripter{
		"redis error": {err: errors.New("redis down")},
		"short reply": {reply: []interface{}{int64(1)}},
	}
	for name, fake := range cases {
		t.Run(name, func(t *testing.T) {
			core, logs := observer.New(zapcore.WarnLevel)
			l := newRedisRateLimiter(fake, zap.New(core), time.Minute, 5)

			d := l.Allow(context.Background(), "compatibility", "10.0.0.1")
			if !d.Allowed || d.Remaining != 5 {
				t.Fatalf("expected request to pass while redis is unavailable, got %+v", d)
			}
			entries := logs.FilterMessage("redis rate limiter unavailable, allowing request").All()
			if len(entries) != 1 {
				t.Fatalf("expected one warning, got %d", logs.Len())
			}
			if entries[0].ContextMap()["route"] != "compatibility" {
				t.Fatalf("expected route in log context, got %+v", entries[0].ContextMap())
			}
		})
	}
}
