package limiter

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/rueidis"
)

type RedisStore struct {
	client rueidis.Client
	prefix string
	now    func() time.Time
}

func NewRedisStore(client rueidis.Client, prefix string) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: prefix,
		now:    time.Now,
	}
}

func (r *RedisStore) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	windowKey := r.windowKey(key, window)

	count, err := r.client.Do(ctx, r.client.B().Incr().Key(windowKey).Build()).AsInt64()
	if err != nil {
		return false, fmt.Errorf("incr rate limit counter: %w", err)
	}

	if count == 1 {
		cmd := r.client.B().Pexpire().Key(windowKey).Milliseconds(window.Milliseconds()).Build()
		if err := r.client.Do(ctx, cmd).Error(); err != nil {
			return false, fmt.Errorf("expire rate limit counter: %w", err)
		}
	}

	return count <= int64(limit), nil
}

// windowKey buckets hits by the window they fall in, so a counter whose
// expiry was lost still stops counting once its window has passed.
func (r *RedisStore) windowKey(key string, window time.Duration) string {
	slot := r.now().UnixMilli() / window.Milliseconds()
	return r.prefix + key + ":" + strconv.FormatInt(slot, 10)
}
