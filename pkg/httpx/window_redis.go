package httpx

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// hitScript increments the counter and starts its expiry on the first hit,
// returning the new count and the remaining TTL in milliseconds.
var hitScript = redis.NewScript(`
local count = redis.call('INCR', KEYS[1])
if count == 1 then
  redis.call('PEXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('PTTL', KEYS[1])
if ttl < 0 then
  redis.call('PEXPIRE', KEYS[1], ARGV[1])
  ttl = tonumber(ARGV[1])
end
return {count, ttl}
`)

// RedisWindow is a WindowCounter shared by every replica talking to the same
// Redis. Keys expire on their own so no sweeping is needed.
type RedisWindow struct {
	client redis.Scripter
	prefix string
	now    func() time.Time
}

func NewRedisWindow(client redis.Scripter, prefix string) *RedisWindow {
	if prefix == "" {
		prefix = "ratelimit:"
	}
	return &RedisWindow{client: client, prefix: prefix, now: time.Now}
}

func (r *RedisWindow) Hit(ctx context.Context, key string, window time.Duration) (WindowHit, error) {
	res, err := hitScript.Run(ctx, r.client, []string{r.prefix + key}, window.Milliseconds()).Int64Slice()
	if err != nil {
		return WindowHit{}, fmt.Errorf("httpx: redis window: %w", err)
	}
	if len(res) != 2 {
		return WindowHit{}, fmt.Errorf("httpx: redis window: unexpected reply %v", res)
	}

	return WindowHit{
		Count:   res[0],
		ResetAt: r.now().Add(time.Duration(res[1]) * time.Millisecond),
	}, nil
}
