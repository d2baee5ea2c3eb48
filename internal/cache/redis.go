package cache

import (
	"context"
	"time"

	"github.com/Domenick1991/missioncontrol/config"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// releaseScript deletes the lock only while it still holds our token, so an
// expired holder cannot release a lock taken over by another instance.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`)

type RedisLocker struct {
	client *redis.Client
}

func NewRedisLocker(cfg config.RedisConfig) *RedisLocker {
	return &RedisLocker{
		client: redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
	}
}

// AcquireLock tries to take name for ttl. On success it returns a token that
// must be passed to ReleaseLock.
func (c *RedisLocker) AcquireLock(ctx context.Context, name string, ttl time.Duration) (string, bool, error) {
	token := uuid.NewString()
	ok, err := c.client.SetNX(ctx, lockKey(name), token, ttl).Result()
	if err != nil || !ok {
		return "", false, err
	}
	return token, true, nil
}

func (c *RedisLocker) ReleaseLock(ctx context.Context, name, token string) error {
	return releaseScript.Run(ctx, c.client, []string{lockKey(name)}, token).Err()
}

func (c *RedisLocker) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisLocker) Close() error {
	return c.client.Close()
}

func lockKey(name string) string {
	return "lock:" + name
}
