package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisRetryInterval = 50 * time.Millisecond

// RedisLocker is the multi-instance implementation: SetNX with a TTL so a
// crashed holder cannot wedge the timeline. Contended acquires poll until
// the caller's context gives up.
type RedisLocker struct {
	client *redis.Client
}

func NewRedisLocker(addr string) (*RedisLocker, error) {
	const op = "lock.NewRedisLocker"

	client := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &RedisLocker{client: client}, nil
}

func (r *RedisLocker) Lock(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	const op = "lock.RedisLocker.Lock"

	lockKey := "lock:" + key
	for {
		ok, err := r.client.SetNX(ctx, lockKey, "1", ttl).Result()
		if err != nil {
			return false, fmt.Errorf("%s: %w", op, err)
		}
		if ok {
			return true, nil
		}
		select {
		case <-time.After(redisRetryInterval):
		case <-ctx.Done():
			return false, ctx.Err()
		}
	}
}

func (r *RedisLocker) Unlock(ctx context.Context, key string) error {
	const op = "lock.RedisLocker.Unlock"

	if err := r.client.Del(ctx, "lock:"+key).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (r *RedisLocker) Close() error {
	return r.client.Close()
}
