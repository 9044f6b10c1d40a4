package limiter

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_AllowsUpToLimit(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		ok, err := s.Allow(ctx, "10.0.0.1", 3, time.Minute)
		require.NoError(t, err)
		assert.True(t, ok, "hit %d", i+1)
	}

	ok, err := s.Allow(ctx, "10.0.0.1", 3, time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = s.Allow(ctx, "10.0.0.2", 3, time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMemoryStore_WindowResets(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s := NewMemoryStore()
	s.now = func() time.Time { return now }
	ctx := context.Background()

	ok, _ := s.Allow(ctx, "k", 1, time.Minute)
	assert.True(t, ok)
	ok, _ = s.Allow(ctx, "k", 1, time.Minute)
	assert.False(t, ok)

	now = now.Add(time.Minute + time.Second)
	ok, _ = s.Allow(ctx, "k", 1, time.Minute)
	assert.True(t, ok)
}

func TestMemoryStore_Concurrent(t *testing.T) {
	s := NewMemoryStore()
	const limit = 10

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allowed int
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, _ := s.Allow(context.Background(), "k", limit, time.Minute)
			if ok {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, limit, allowed)
}

func TestRedisStore_WindowKey(t *testing.T) {
	r := NewRedisStore(nil, "todo_api:ratelimit:")
	r.now = func() time.Time { return time.UnixMilli(125_000) }

	assert.Equal(t, "todo_api:ratelimit:10.0.0.1:2", r.windowKey("10.0.0.1", time.Minute))
}

func TestMemoryStore_SweepsExpiredBuckets(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s := NewMemoryStore()
	s.now = func() time.Time { return now }
	ctx := context.Background()

	for _, ip := range []string{"10.0.0.1", "10.0.0.2", "10.0.0.3"} {
		_, err := s.Allow(ctx, ip, 5, time.Minute)
		require.NoError(t, err)
	}
	assert.Len(t, s.buckets, 3)

	now = now.Add(2 * time.Minute)
	_, err := s.Allow(ctx, "10.0.0.4", 5, time.Minute)
	require.NoError(t, err)

	assert.Len(t, s.buckets, 1)
	assert.Contains(t, s.buckets, "10.0.0.4")
}
